package site

import "html/template"

// styles follow the original iCloud-Notes look of the site
const commonStyles = `
<style>
*{margin:0;padding:0;box-sizing:border-box}
body{font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,Helvetica,Arial,sans-serif;background:#1c1c1e;color:#fff;min-height:100vh}
.container{max-width:700px;margin:0 auto;padding:20px}
header{display:flex;justify-content:space-between;align-items:center;padding:16px 0;border-bottom:1px solid #38383a}
h1{font-size:28px;font-weight:600}
.btn{background:#ff9f0a;color:#000;border:none;padding:10px 20px;border-radius:8px;font-size:16px;cursor:pointer;text-decoration:none;display:inline-block}
.btn:hover{background:#ffb340}
.btn-secondary{background:#38383a;color:#fff}
.btn-secondary:hover{background:#48484a}
.user-list{margin-top:24px}
.user-card{background:#2c2c2e;border-radius:12px;padding:16px;margin-bottom:12px;cursor:pointer;transition:background .2s}
.user-card:hover{background:#3a3a3c}
.user-card a{text-decoration:none;color:inherit;display:block}
.user-name{font-size:18px;font-weight:500;margin-bottom:4px}
.user-preview{color:#98989f;font-size:14px;white-space:nowrap;overflow:hidden;text-overflow:ellipsis}
.user-date{color:#636366;font-size:12px;margin-top:8px}
.note{background:#2c2c2e;border-radius:12px;padding:16px;margin-bottom:12px}
.note-text{font-size:16px;line-height:1.5;white-space:pre-wrap}
.note-date{color:#636366;font-size:12px;margin-top:12px}
.back{color:#ff9f0a;text-decoration:none;font-size:14px}
.empty{color:#636366;text-align:center;padding:40px}
</style>`

const indexTemplate = `{{define "index"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>NoteMe — Notes</title>
<meta name="description" content="Static notes site">
{{template "styles"}}
</head>
<body>
<div class="container">
  <header>
    <h1>📝 Notes</h1>
    <a href="./admin.html" class="btn">+ New</a>
  </header>
  <div class="user-list">
{{- range .Users}}
    <div class="user-card">
      <a href="./{{.Id}}.html">
        <div class="user-name">{{.Id}}</div>
        <div class="user-preview">{{.Preview}}</div>
        <div class="user-date">{{.Date}} · {{.Count}} notes</div>
      </a>
    </div>
{{- else}}
    <div class="empty">No notes yet</div>
{{- end}}
  </div>
</div>
</body>
</html>{{end}}`

const userTemplate = `{{define "user"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Id}} — NoteMe</title>
<meta name="description" content="Notes by {{.Id}}">
{{template "styles"}}
</head>
<body>
<div class="container">
  <header>
    <a href="./index.html" class="back">← All notes</a>
    <a href="./admin.html?user={{.Id}}" class="btn btn-secondary">Add</a>
  </header>
  <h1 style="margin:24px 0 16px">{{.Id}}</h1>
  <div class="notes">
{{- range .Notes}}
    <div class="note">
      <div class="note-text"><a href="./{{.Href}}" style="color:inherit;text-decoration:none">{{.Text}}</a></div>
      <div class="note-date">{{.Date}}</div>
    </div>
{{- else}}
    <div class="empty">This user has no notes yet</div>
{{- end}}
  </div>
</div>
</body>
</html>{{end}}`

const noteTemplate = `{{define "note"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Note {{.Id}} by {{.User}} — NoteMe</title>
<meta name="description" content="Note {{.Id}} by {{.User}}">
{{template "styles"}}
</head>
<body>
<div class="container">
  <header>
    <a href="./{{.User}}.html" class="back">← {{.User}}</a>
  </header>
  <div class="notes" style="margin-top:24px">
    <div class="note">
      <div class="note-text">{{.Text}}</div>
      <div class="note-date">{{.Date}}</div>
    </div>
  </div>
</div>
</body>
</html>{{end}}`

var pages = template.Must(template.New("site").Parse(
	`{{define "styles"}}` + commonStyles + `{{end}}` + indexTemplate + userTemplate + noteTemplate))
