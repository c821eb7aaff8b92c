package templating

import (
	"strings"
	"time"
)

// Substitute fills content in two passes. The first pass replaces the built-in
// tokens, the second the caller's custom variables. Each pass is a single
// left-to-right scan: replacement text is never scanned again by the same
// pass, so nothing expands recursively. Placeholders that match neither pass
// are left as they are.
func Substitute(content string, c Context, now time.Time, custom CustomVariables) string {
	out := strings.NewReplacer(builtinPairs(c, now)...).Replace(content)
	if len(custom) == 0 {
		return out
	}
	return strings.NewReplacer(custom.pairs()...).Replace(out)
}
