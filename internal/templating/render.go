package templating

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/kingrain94/property-docs-api/internal/domain"
	"github.com/kingrain94/property-docs-api/pkg/utils"
)

const dataURIPrefix = "data:" + domain.FileTypeHTML + ";base64,"

var documentShell = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; max-width: 800px; margin: 0 auto; padding: 20px; color: #333; }
    .header { text-align: center; margin-bottom: 30px; border-bottom: 2px solid #333; padding-bottom: 10px; }
    .content { margin: 20px 0; }
    .footer { margin-top: 50px; padding-top: 20px; border-top: 1px solid #ccc; font-size: 12px; color: #666; }
  </style>
</head>
<body>
  <div class="header">
    <h1>{{.Title}}</h1>
  </div>
  <div class="content">
    {{.Content}}
  </div>
  <div class="footer">
    <p>Generated on {{.GeneratedOn}}</p>
  </div>
</body>
</html>
`))

type shellData struct {
	Title       string
	Content     template.HTML
	GeneratedOn string
}

// DeriveTitle returns explicit when set, otherwise
// "<template name> - <property address>[ - <tenant name>]".
func DeriveTitle(explicit string, tmpl *domain.Template, property *domain.Property, tenant *domain.Tenant) string {
	if explicit != "" {
		return explicit
	}
	title := tmpl.Name + " - " + property.Address
	if tenant != nil {
		title += " - " + tenant.Name
	}
	return title
}

// RenderHTML wraps substituted text in the document shell. Newlines become
// <br> and the body is emitted as markup; the title is escaped.
func RenderHTML(title, body string, now time.Time) (string, error) {
	var buf bytes.Buffer
	err := documentShell.Execute(&buf, shellData{
		Title:       title,
		Content:     template.HTML(strings.ReplaceAll(body, "\n", "<br>")),
		GeneratedOn: utils.FormatLongDate(now),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render document: %w", err)
	}
	return buf.String(), nil
}

// EncodeDataURI inlines a rendered document as a base64 data URI. The returned
// size is the length of the encoded payload.
func EncodeDataURI(html string) (string, int64) {
	encoded := base64.StdEncoding.EncodeToString([]byte(html))
	return dataURIPrefix + encoded, int64(len(encoded))
}

// DecodeDataURI reverses EncodeDataURI.
func DecodeDataURI(uri string) (string, error) {
	if !strings.HasPrefix(uri, dataURIPrefix) {
		return "", fmt.Errorf("not an inline html document")
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, dataURIPrefix))
	if err != nil {
		return "", fmt.Errorf("failed to decode document: %w", err)
	}
	return string(raw), nil
}
