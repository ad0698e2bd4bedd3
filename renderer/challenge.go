package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/gestaopro/bankroll"
)

// ChallengeReport is the render-ready view of one challenge: the day schedule
// plus the projection-versus-reality series the web app plots as a chart.
type ChallengeReport struct {
	Name         string           `json:"name"`
	Status       string           `json:"status"`
	StartDate    bankroll.Date    `json:"startDate"`
	InitialStake bankroll.Money   `json:"initialStake"`
	TargetOdds   string           `json:"targetOdds"`
	TotalDays    int              `json:"totalDays"`
	FinalTarget  bankroll.Money   `json:"finalTarget"`
	Progress     bankroll.Percent `json:"progress"`

	Days       []ChallengeDayRow `json:"days"`
	Projection []ProjectionRow   `json:"projection"`
}

// ChallengeDayRow is one row of the day schedule table.
type ChallengeDayRow struct {
	Day      int                `json:"day"`
	Stake    bankroll.Money     `json:"stake"`
	Expected bankroll.Money     `json:"expected"`
	Result   bankroll.BetResult `json:"result"`
	Doubled  bool               `json:"doubled,omitempty"`
}

// ProjectionRow is one point of the projection series.
type ProjectionRow struct {
	Label    string         `json:"label"`
	Expected bankroll.Money `json:"expected"`
	// Actual is the value actually reached, empty while the day is unsettled.
	Actual string `json:"actual,omitempty"`
}

// NewChallengeReport builds the challenge view.
func NewChallengeReport(c bankroll.Challenge) *ChallengeReport {
	r := &ChallengeReport{
		Name:         c.Name,
		Status:       string(c.Status),
		StartDate:    c.StartDate,
		InitialStake: c.InitialStake,
		TargetOdds:   c.TargetOdds.StringFixed(2),
		TotalDays:    c.TotalDays,
		FinalTarget:  c.FinalTarget(),
		Progress:     c.Progress(),
		Days:         make([]ChallengeDayRow, 0, len(c.Days)),
		Projection:   make([]ProjectionRow, 0, len(c.Days)+1),
	}
	for _, d := range c.Days {
		r.Days = append(r.Days, ChallengeDayRow{
			Day:      d.Day,
			Stake:    d.Stake,
			Expected: d.ExpectedReturn(),
			Result:   d.Result,
			Doubled:  d.Doubled,
		})
	}
	for _, p := range c.Projection() {
		row := ProjectionRow{Label: p.Label, Expected: p.Expected}
		if p.Settled {
			row.Actual = p.Actual.String()
		}
		r.Projection = append(r.Projection, row)
	}
	return r
}

const challengeMarkdownTemplate = `# Challenge {{ .Name }} ({{ .Status }})

Started {{ .StartDate }}: {{ .InitialStake }} at {{ .TargetOdds }} over {{ .TotalDays }} days.
Final Target: **{{ .FinalTarget }}** ({{ .Progress }} done)

## Schedule

| Day | Stake | Expected Return | Result |
|---:|---:|---:|:---|
{{- range .Days }}
| {{ .Day }} | {{ .Stake }} | {{ .Expected }} | {{ .Result }}{{ if .Doubled }} (doubled){{ end }} |
{{- end }}

## Projection

| | Expected | Actual |
|:---|---:|---:|
{{- range .Projection }}
| {{ .Label }} | {{ .Expected }} | {{ .Actual }} |
{{- end }}
`

// RenderChallenge renders the ChallengeReport view to a markdown string.
func RenderChallenge(r *ChallengeReport) string {
	tmpl := template.Must(template.New("challenge").Parse(challengeMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, r); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}

// ChallengeList is the render-ready view of every challenge of a bankroll.
type ChallengeList struct {
	Name       string             `json:"name"`
	Challenges []ChallengeListRow `json:"challenges"`
}

// ChallengeListRow is one row of the challenge list.
type ChallengeListRow struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Status      string           `json:"status"`
	Progress    bankroll.Percent `json:"progress"`
	FinalTarget bankroll.Money   `json:"finalTarget"`
}

// NewChallengeList builds the challenge list view for a bankroll.
func NewChallengeList(b bankroll.Bankroll) *ChallengeList {
	l := &ChallengeList{Name: b.Name, Challenges: make([]ChallengeListRow, 0, len(b.Challenges))}
	for _, c := range b.Challenges {
		l.Challenges = append(l.Challenges, ChallengeListRow{
			ID:          c.ID,
			Name:        c.Name,
			Status:      string(c.Status),
			Progress:    c.Progress(),
			FinalTarget: c.FinalTarget(),
		})
	}
	return l
}

const challengeListMarkdownTemplate = `# Challenges for {{ .Name }}

{{- if .Challenges }}

| Name | Status | Progress | Final Target | ID |
|:---|:---|---:|---:|:---|
{{- range .Challenges }}
| {{ .Name }} | {{ .Status }} | {{ .Progress }} | {{ .FinalTarget }} | {{ .ID }} |
{{- end }}
{{- else }}

No challenges yet.
{{- end }}
`

// RenderChallengeList renders the ChallengeList view to a markdown string.
func RenderChallengeList(l *ChallengeList) string {
	tmpl := template.Must(template.New("challengeList").Parse(challengeListMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, l); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}
