package templating

import (
	"time"

	"github.com/kingrain94/property-docs-api/internal/domain"
	"github.com/kingrain94/property-docs-api/pkg/utils"
)

// Output is a fully generated document.
type Output struct {
	Title       string
	Body        string
	HTML        string
	GeneratedAt time.Time
}

// Engine turns a template and its resolved context into a document. The clock
// is read once per call so the date tokens and the footer always agree.
type Engine struct {
	clock utils.Clock
}

func NewEngine(clock utils.Clock) *Engine {
	if clock == nil {
		clock = utils.SystemClock()
	}
	return &Engine{clock: clock}
}

func (e *Engine) Generate(tmpl *domain.Template, c Context, title string, custom CustomVariables) (*Output, error) {
	now := e.clock.Now()

	body := Substitute(tmpl.Content, c, now, custom)
	title = DeriveTitle(title, tmpl, c.Property, c.Tenant)

	html, err := RenderHTML(title, body, now)
	if err != nil {
		return nil, err
	}

	return &Output{
		Title:       title,
		Body:        body,
		HTML:        html,
		GeneratedAt: now,
	}, nil
}
