package server

import "html/template"

// boardTemplate renders a Board's regions. Element IDs match the
// region identifiers in the display package.
var boardTemplate = template.Must(template.New("board").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="{{.Refresh}}">
<title>{{.Title}}</title>
</head>
<body>
<section class="counters">
  <span id="{{.IDs.Available}}">{{.Regions.Counters.Available}}</span>
  <span id="{{.IDs.Busy}}">{{.Regions.Counters.Busy}}</span>
  <span id="{{.IDs.Away}}">{{.Regions.Counters.Away}}</span>
  <span id="{{.IDs.Total}}">{{.Regions.Counters.Total}}</span>
  <span id="{{.IDs.Uptime}}">{{.Regions.Uptime}}</span>
</section>
<section id="{{.IDs.Slots}}">
{{- range .Regions.Cards}}
  <div class="slot {{.CardClass}}">
    <div class="slot-header">
      <span class="slot-id">{{.Title}}</span>
      <span class="slot-badge {{.Class}}">{{.Label}}</span>
    </div>
    <div class="slot-name">{{.Name}}</div>
    <div class="slot-meta">
      <span>Node: {{.Node}}</span>
      {{- if .Eco}}
      <span class="eco-indicator">{{.Eco}}</span>
      {{- end}}
    </div>
    <div class="slot-meta">{{.LastSeen}}</div>
  </div>
{{- end}}
</section>
<section id="{{.IDs.History}}">
{{- range .Regions.History}}
  <div class="hist-item">
    <span>{{.Text}}</span>
    <span class="hist-time">{{.Time}}</span>
  </div>
{{- end}}
</section>
</body>
</html>
`))

type regionIDs struct {
	Slots, Available, Busy, Away, Total, Uptime, History string
}
