package htmldoc

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2rem auto; max-width: 60rem; padding: 0 1rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; }
th { background: #f4f4f4; }
code { background: #f4f4f4; padding: 0 0.2rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<table>
<tr><th>File</th><th>Description</th></tr>
{{- range .Tables}}
<tr><td><a href="{{.Table}}.html"><code>{{.File}}</code></a></td><td>{{.Description}}</td></tr>
{{- end}}
</table>
</body>
</html>
`

const tableTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} - {{.SiteTitle}}</title>
<style>
body { font-family: sans-serif; margin: 2rem auto; max-width: 60rem; padding: 0 1rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; }
th { background: #f4f4f4; }
code { background: #f4f4f4; padding: 0 0.2rem; }
</style>
</head>
<body>
<p><a href="index.html">{{.SiteTitle}}</a></p>
<h1>{{.Title}} (<code>{{.File}}</code>)</h1>
{{- with .Description}}
<p>{{.}}</p>
{{- end}}
<table>
<tr><th>Field</th><th>Type</th><th>Presence</th><th>Description</th></tr>
{{- range .Fields}}
<tr>
<td><code>{{.Name}}</code>{{if .PrimaryKey}} <strong>PK</strong>{{end}}</td>
<td>{{.Type}}{{with .ForeignKey}} (references <code>{{.}}</code>){{end}}</td>
<td>{{.Presence}}</td>
<td>{{.Description}}{{with .Notes}} {{.}}{{end}}</td>
</tr>
{{- end}}
</table>
{{- range .Fields}}
{{- if .Options}}
<h2>Values for <code>{{.Name}}</code></h2>
<ul>
{{- range .Options}}
<li><code>{{.Value}}</code>{{with .Description}}: {{.}}{{end}}</li>
{{- end}}
</ul>
{{- end}}
{{- end}}
</body>
</html>
`
