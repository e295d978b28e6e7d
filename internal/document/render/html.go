package render

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/dshowevents/contratia/internal/document"
)

const documentHTMLTemplate = `<!doctype html>
<html lang="es">
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 40px;
      font-family: "Helvetica Neue", Arial, sans-serif;
      font-size: 13px;
      line-height: 1.5;
      color: #111827;
      background: #ffffff;
    }
    .document {
      max-width: 760px;
      margin: 0 auto 48px auto;
    }
    .doc-header {
      text-align: center;
      border-bottom: 2px solid #111827;
      padding-bottom: 12px;
      margin-bottom: 24px;
    }
    .doc-header h1 {
      margin: 0;
      font-size: 22px;
      letter-spacing: 0.06em;
    }
    .doc-header h2 {
      margin: 4px 0 0 0;
      font-size: 14px;
      font-weight: normal;
      color: #6b7280;
    }
    .clause { margin-bottom: 14px; }
    .clause h3 {
      margin: 0 0 6px 0;
      font-size: 13px;
      text-transform: uppercase;
    }
    .clause p { margin: 0 0 6px 0; }
    ul { margin: 6px 0; padding-left: 24px; }
    .summary {
      border: 1px solid #e5e7eb;
      padding: 12px 16px;
      margin-bottom: 16px;
    }
    .summary h3 { margin: 0 0 8px 0; font-size: 13px; }
    .summary table { width: 100%; border-collapse: collapse; }
    .summary td { padding: 3px 0; vertical-align: top; }
    .summary td.label { font-weight: bold; width: 40%; }
    table.items {
      width: 100%;
      border-collapse: collapse;
      margin-bottom: 16px;
      font-size: 13px;
    }
    table.items th, table.items td {
      padding: 8px 10px;
      border-bottom: 1px solid #e5e7eb;
      text-align: left;
      vertical-align: top;
    }
    table.items th {
      text-transform: uppercase;
      font-size: 11px;
      letter-spacing: 0.04em;
      color: #6b7280;
    }
    .signatures {
      display: flex;
      justify-content: space-between;
      gap: 48px;
      margin-top: 56px;
    }
    .signature { flex: 1; text-align: center; font-size: 12px; }
    .signature .line {
      border-bottom: 1px solid #111827;
      margin-bottom: 6px;
      height: 32px;
    }
    .spacer { height: 16px; }
    .page-break { page-break-before: always; }
  </style>
</head>
<body>
  <div class="document">{{template "nodes" .Contract}}</div>
  <div class="document page-break">{{template "nodes" .Invoice}}</div>
</body>
</html>

{{define "nodes"}}{{range .}}{{template "node" .}}{{end}}{{end}}

{{define "node"}}{{if is . "header"}}<div class="doc-header"><h1>{{.Title}}</h1><h2>{{.Subtitle}}</h2></div>
{{else if is . "paragraph"}}<p>{{template "parts" .Parts}}</p>
{{else if is . "list"}}<ul>{{range .Items}}<li>{{template "parts" .Parts}}</li>{{end}}</ul>
{{else if is . "clause"}}<div class="clause"><h3>{{.Number}}. {{.Title}}</h3>{{template "nodes" .Content}}</div>
{{else if is . "summary"}}<div class="summary">{{if .Title}}<h3>{{.Title}}</h3>{{end}}<table>{{range .Details}}<tr><td class="label">{{.Label}}</td><td>{{.Value}}</td></tr>{{end}}</table></div>
{{else if is . "signatures"}}<div class="signatures">{{range .Details}}<div class="signature"><div class="line"></div><div><strong>{{.Label}}</strong></div><div>{{.Value}}</div></div>{{end}}</div>
{{else if is . "spacer"}}<div class="spacer"></div>
{{else if is . "table"}}<table class="items"><thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead><tbody>{{range .Rows}}<tr>{{range .}}<td>{{breaklines .}}</td>{{end}}</tr>{{end}}</tbody></table>
{{end}}{{end}}

{{define "parts"}}{{range .}}{{if .LineBreak}}<br/>{{end}}{{if and .Bold .Italic}}<strong><em>{{.Text}}</em></strong>{{else if .Bold}}<strong>{{.Text}}</strong>{{else if .Italic}}<em>{{.Text}}</em>{{else}}{{.Text}}{{end}}{{end}}{{end}}
`

type htmlData struct {
	Title    string
	Contract []document.Node
	Invoice  []document.Node
}

type HTMLRenderer struct {
	tpl *template.Template
}

func NewHTML() *HTMLRenderer {
	funcs := template.FuncMap{
		"is":         isNodeType,
		"breaklines": breakLines,
	}
	return &HTMLRenderer{
		tpl: template.Must(template.New("document").Funcs(funcs).Parse(documentHTMLTemplate)),
	}
}

func (r *HTMLRenderer) Render(doc document.Document, baseName string) (Artifact, error) {
	title := baseName
	if len(doc.Contract) > 0 && doc.Contract[0].Subtitle != "" {
		title = doc.Contract[0].Subtitle
	}

	var buf bytes.Buffer
	err := r.tpl.Execute(&buf, htmlData{
		Title:    title,
		Contract: doc.Contract,
		Invoice:  doc.Invoice,
	})
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{
		ContentType: "text/html; charset=utf-8",
		FileName:    baseName + ".html",
		Data:        buf.Bytes(),
	}, nil
}

func isNodeType(n document.Node, t string) bool {
	return string(n.Type) == t
}

// breakLines escapes cell text and turns embedded newlines into <br/>.
func breakLines(text string) template.HTML {
	lines := strings.Split(text, "\n")
	escaped := make([]string, len(lines))
	for i, line := range lines {
		escaped[i] = template.HTMLEscapeString(line)
	}
	return template.HTML(strings.Join(escaped, "<br/>"))
}
