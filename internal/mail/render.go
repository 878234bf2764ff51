package mail

import (
	"html/template"
	"strings"

	"github.com/courtside-labs/courtside/internal/schedule"
)

// CalendarData is everything the weekly calendar email shows.
type CalendarData struct {
	WeekSummary     string
	Recommendations []string
	Lineups         []schedule.TVLineup
	Conflicts       int
}

var calendarTemplate = template.Must(template.New("calendar").Funcs(template.FuncMap{
	"formatDate": schedule.FormatDate,
}).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Your NBA Week</title></head>
<body style="font-family: Arial, sans-serif; color: #1a1a2e; max-width: 680px; margin: 0 auto;">
  <h1 style="background: #1d428a; color: #fff; padding: 16px; border-radius: 6px;">Your NBA Week</h1>
  {{- if .WeekSummary}}
  <p style="font-size: 15px;">{{.WeekSummary}}</p>
  {{- end}}
  {{- range .Lineups}}
  <h2 style="border-bottom: 2px solid #c8102e; padding-bottom: 4px;">TV {{.TVNumber}}</h2>
  {{- if not .Dates}}
  <p style="color: #666;">Nothing scheduled this week.</p>
  {{- end}}
  {{- range .Dates}}
  <h3 style="margin-bottom: 4px;">{{formatDate .Date}}</h3>
  <table style="width: 100%; border-collapse: collapse;">
    {{- range .Listings}}
    <tr>
      <td style="padding: 6px 8px; border-bottom: 1px solid #eee; white-space: nowrap;">{{.TimeSlot}}</td>
      <td style="padding: 6px 8px; border-bottom: 1px solid #eee;"><strong>{{.Game.Away.Tricode}} @ {{.Game.Home.Tricode}}</strong> &middot; {{.Game.Arena}}</td>
      <td style="padding: 6px 8px; border-bottom: 1px solid #eee; color: #666; font-size: 13px;">{{.Reasoning}}</td>
    </tr>
    {{- end}}
  </table>
  {{- end}}
  {{- end}}
  {{- if .Recommendations}}
  <h2 style="border-bottom: 2px solid #c8102e; padding-bottom: 4px;">Tips</h2>
  <ul>
    {{- range .Recommendations}}
    <li style="margin-bottom: 4px;">{{.}}</li>
    {{- end}}
  </ul>
  {{- end}}
  <p style="color: #999; font-size: 12px; margin-top: 24px;">Sent by Courtside. Game times shown as reported by the league schedule.</p>
</body>
</html>`))

// RenderCalendar produces the HTML document for the weekly email and the
// export endpoint.
func RenderCalendar(data CalendarData) (string, error) {
	var b strings.Builder
	if err := calendarTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
