package commonfields

const fileTemplate = `// Code generated by diffenum common-fields. DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	{{with .Alias}}{{.}} {{end}}"{{.Path}}"
{{- end}}
)

{{range .Union.Doc}}{{.}}
{{end}}type {{.Union.Name}} interface {
{{- range .Union.Markers}}
	{{.}}()
{{- end}}
}
{{range .Union.Variants}}{{$v := .}}
{{range .Doc}}{{.}}
{{end}}type {{.Name}} struct {
{{- range .Fields}}
{{- range .Doc}}
	{{.}}
{{- end}}
	{{.Name}} {{.Type}}{{with .Tag}} {{.}}{{end}}{{with .Comment}} {{.}}{{end}}
{{- end}}
}
{{range $.Union.Markers}}
func (*{{$v.Name}}) {{.}}() {}
{{end}}
{{- end}}
{{range .Accessors}}{{$a := .}}
// {{.FuncName}} returns a reference to the {{.FieldName}} field shared by
// every {{.Union}} variant.
func {{.FuncName}}(v {{.Union}}) *{{.FieldType}} {
	switch v := v.(type) {
{{- range .Variants}}
	case *{{.}}:
		return &v.{{$a.FieldName}}
{{- end}}
	default:
		panic(fmt.Sprintf("%T is not a variant of {{.Union}}", v))
	}
}
{{end}}`
