package templating

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var ErrCustomVariablesNotObject = errors.New("customVariables must be a JSON object")

// CustomVariable is one caller supplied name/value pair, already coerced to text.
type CustomVariable struct {
	Key   string
	Value string
}

// Token returns the placeholder this variable fills: the key upper-cased and wrapped in braces.
func (v CustomVariable) Token() string {
	return "{" + strings.ToUpper(v.Key) + "}"
}

// CustomVariables keeps the order in which the caller listed the variables.
// When two keys normalize to the same token the first one wins.
type CustomVariables []CustomVariable

// UnmarshalJSON decodes a JSON object preserving key order and coercing every
// value to text.
func (c *CustomVariables) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = nil
		return nil
	}
	if len(data) == 0 || data[0] != '{' {
		return ErrCustomVariablesNotObject
	}

	raw := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, raw); err != nil {
		return err
	}

	vars := make(CustomVariables, 0, raw.Len())
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		dec := json.NewDecoder(bytes.NewReader(pair.Value))
		dec.UseNumber()

		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("customVariables.%s: %w", pair.Key, err)
		}
		vars = append(vars, CustomVariable{Key: pair.Key, Value: Stringify(value)})
	}

	*c = vars
	return nil
}

// MarshalJSON writes the variables back as an object in their original order.
func (c CustomVariables) MarshalJSON() ([]byte, error) {
	out := orderedmap.New[string, string]()
	for _, v := range c {
		out.Set(v.Key, v.Value)
	}
	return json.Marshal(out)
}

func (c CustomVariables) pairs() []string {
	pairs := make([]string, 0, len(c)*2)
	for _, v := range c {
		pairs = append(pairs, v.Token(), v.Value)
	}
	return pairs
}

// Stringify converts a decoded JSON value to the text substituted into a document.
// Strings are kept verbatim, numbers use their shortest decimal form, arrays
// join their elements with commas and objects become "[object Object]".
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return v.String()
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case []any:
		parts := make([]string, len(v))
		for i, elem := range v {
			if elem == nil {
				continue
			}
			parts[i] = Stringify(elem)
		}
		return strings.Join(parts, ",")
	case map[string]any:
		return "[object Object]"
	default:
		return fmt.Sprint(v)
	}
}
