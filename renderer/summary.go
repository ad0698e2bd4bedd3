// Package renderer turns bankroll data into markdown reports. Each report has
// a view struct holding render-ready values and a Render function executing a
// text/template over it.
package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/gestaopro/bankroll"
)

// Summary is the render-ready view of a bankroll's derived metrics.
type Summary struct {
	// Name of the bankroll.
	Name string `json:"name"`
	// Date the summary was computed on.
	Date bankroll.Date `json:"date"`
	// Initial is the starting capital, the baseline for ROI.
	Initial bankroll.Money `json:"initial"`
	// Current is the bankroll after folding the whole ledger.
	Current bankroll.Money `json:"current"`
	// Profit is the net result of settled bets only.
	Profit bankroll.Money `json:"profit"`
	// ROI is the profit relative to the initial capital.
	ROI bankroll.Percent `json:"roi"`
	// WinRate is the share of settled bets that won.
	WinRate bankroll.Percent `json:"winRate"`

	Wins        int `json:"wins"`
	SettledBets int `json:"settledBets"`
	PendingBets int `json:"pendingBets"`
}

// NewSummary builds the summary view for a bankroll.
func NewSummary(b bankroll.Bankroll, on bankroll.Date) *Summary {
	s := b.Summary()
	return &Summary{
		Name:        b.Name,
		Date:        on,
		Initial:     b.Initial,
		Current:     s.CurrentBankroll,
		Profit:      s.TotalProfit,
		ROI:         s.ROI,
		WinRate:     s.WinRate,
		Wins:        s.Wins,
		SettledBets: s.SettledBets,
		PendingBets: s.PendingBets,
	}
}

const summaryMarkdownTemplate = `# {{ .Name }} on {{ .Date }}

Current Bankroll: **{{ .Current }}**

| Metric | Value |
|:---|---:|
| Initial Bankroll | {{ .Initial }} |
| Total Profit | {{ .Profit.SignedString }} |
| ROI | {{ .ROI.SignedString }} |
| Win Rate | {{ .WinRate }} ({{ .Wins }}/{{ .SettledBets }}) |
| Pending Bets | {{ .PendingBets }} |
`

// RenderSummary renders the Summary view to a markdown string.
func RenderSummary(s *Summary) string {
	tmpl := template.Must(template.New("summary").Parse(summaryMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, s); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}
