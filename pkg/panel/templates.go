package panel

import (
	"bytes"
	"html/template"

	"github.com/matzehuels/dashgrid/pkg/document"
)

type panelData struct {
	ID     string
	Kind   string
	Sizing string
	Style  template.CSS
	Title  string
	Body   template.HTML
}

const viewTemplates = `
{{define "panel"}}<div class="panel panel-{{.Kind}}" data-chart="{{.ID}}" data-sizing="{{.Sizing}}" style="{{.Style}}">{{if .Title}}<div class="panel-title">{{.Title}}</div>{{end}}<div class="panel-body">{{.Body}}</div></div>{{end}}
{{define "image"}}<img src="{{.Src}}" alt="{{.Alt}}" style="max-width:100%;max-height:100%">{{end}}
{{define "dropdown"}}<select name="{{.Name}}">{{range .Choices}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Value}}</option>{{end}}</select>{{end}}
{{define "multi_select"}}<select name="{{.Name}}" multiple>{{range .Choices}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Value}}</option>{{end}}</select>{{end}}
{{define "range_slider"}}<input type="range" name="{{.Name}}" min="{{.Min}}" max="{{.Max}}" step="{{.Step}}" value="{{.Value}}"><output>{{.Value}}</output>{{end}}
{{define "datasize"}}<span class="datasize-rows">{{.Rows}}</span> rows{{end}}
`

var views = template.Must(template.New("views").Parse(viewTemplates))

// execute renders a named view. The templates are fixed and their data
// typed, so a failure here is a programming error and is rendered as an
// HTML comment rather than breaking the document.
func execute(name string, data any) document.Fragment {
	var buf bytes.Buffer
	if err := views.ExecuteTemplate(&buf, name, data); err != nil {
		return document.Fragment("<!-- " + template.HTMLEscapeString(err.Error()) + " -->")
	}
	return document.Fragment(buf.String())
}
