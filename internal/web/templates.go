package web

import (
	"html/template"

	"magicvilla/internal/model"
)

var pages = template.Must(template.New("pages").Parse(`
{{define "header"}}<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8" /><title>{{.Title}} · Magic Villa</title></head>
<body>
<nav><a href="/">Villas</a> | <a href="/villa-numbers">Villa Numbers</a></nav>
<h1>{{.Title}}</h1>
{{if .Errors}}<ul class="errors">{{range .Errors}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{end}}

{{define "footer"}}</body></html>{{end}}

{{define "villaFields"}}
<label>Name <input name="name" value="{{.Name}}" required maxlength="30" /></label>
<label>Details <input name="details" value="{{.Details}}" /></label>
<label>Rate <input name="rate" type="number" step="0.01" min="0" value="{{.Rate}}" /></label>
<label>Sqft <input name="sqft" type="number" min="0" value="{{.Sqft}}" /></label>
<label>Occupancy <input name="occupancy" type="number" min="0" value="{{.Occupancy}}" /></label>
<label>Image URL <input name="imageUrl" value="{{.ImageURL}}" /></label>
<label>Amenity <input name="amenity" value="{{.Amenity}}" /></label>
{{end}}

{{define "index"}}{{template "header" .}}
<table>
<tr><th>Name</th><th>Occupancy</th><th>Rate</th><th></th></tr>
{{range .Villas}}<tr>
<td><a href="/villas/{{.ID}}">{{.Name}}</a></td><td>{{.Occupancy}}</td><td>{{printf "%.2f" .Rate}}</td>
<td><form method="post" action="/villas/{{.ID}}/delete"><button>Delete</button></form></td>
</tr>{{end}}
</table>
<h2>New villa</h2>
<form method="post" action="/villas">{{template "villaFields" .Form}}<button>Create</button></form>
{{template "footer"}}{{end}}

{{define "villa"}}{{template "header" .}}
{{with .Villa}}
{{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Name}}" width="320" />{{end}}
<p>{{.Details}}</p>
<form method="post" action="/villas/{{.ID}}">{{template "villaFields" .}}<button>Save</button></form>
{{end}}
{{template "footer"}}{{end}}

{{define "villaNumbers"}}{{template "header" .}}
<table>
<tr><th>Villa No</th><th>Villa</th><th>Special details</th><th></th></tr>
{{range .Numbers}}<tr>
<td>{{.VillaNo}}</td><td>{{with .Villa}}{{.Name}}{{end}}</td><td>{{.SpecialDetails}}</td>
<td><form method="post" action="/villa-numbers/{{.VillaNo}}/delete"><button>Delete</button></form></td>
</tr>{{end}}
</table>
<h2>New villa number</h2>
<form method="post" action="/villa-numbers">
<label>Villa No <input name="villaNo" type="number" min="1" required /></label>
<label>Villa <select name="villaID">{{range .Villas}}<option value="{{.ID}}">{{.Name}}</option>{{end}}</select></label>
<label>Special details <input name="specialDetails" /></label>
<button>Create</button>
</form>
{{template "footer"}}{{end}}

{{define "error"}}{{template "header" .}}<p><a href="/">Back</a></p>{{template "footer"}}{{end}}
`))

// page is the data every template receives.
type page struct {
	Title   string
	Errors  []string
	Villas  []model.VillaDTO
	Villa   *model.VillaDTO
	Numbers []model.VillaNumberDTO
	Form    villaForm
}
