package gen

import "text/template"

// Template for the generated file
var fileTemplate = template.Must(template.New("newtype").Parse(`// Code generated by newtype-generator. DO NOT EDIT.

package {{.PackageName}}

import (
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)
{{range .Types}}
{{- $t := .}}
{{if $.GenerateComments -}}
// {{.Name}} wraps {{.Type}}.{{if .Accessor}} The value is read with Get.{{end}}
//
// Generated from {{.Source}}.
{{end -}}
type {{.Name}} struct {
	{{.Field}} {{.Type}}
}
{{if .Accessor}}
{{if $.GenerateComments -}}
// {{.Constructor}} returns a {{.Name}} holding v.
{{end -}}
func {{.Constructor}}(v {{.Type}}) {{.Name}} {
	return {{.Name}}{{"{"}}{{.Field}}: v}
}

{{if $.GenerateComments -}}
// Get returns a copy of the held value.
{{end -}}
func ({{.Receiver}} {{.Name}}) Get() {{.Type}} {
	return {{.CloneExpr}}
}
{{end}}
{{if $.GenerateComments -}}
// Clone returns a copy of {{.Receiver}}.
{{end -}}
func ({{.Receiver}} {{.Name}}) Clone() {{.Name}} {
	return {{.Name}}{{"{"}}{{.Field}}: {{.CloneExpr}}}
}

{{if $.GenerateComments -}}
// GoString implements fmt.GoStringer.
{{end -}}
func ({{.Receiver}} {{.Name}}) GoString() string {
	return fmt.Sprintf({{printf "%q" .DebugFormat}}, {{$t.Receiver}}.{{$t.Field}})
}
{{end}}`))
