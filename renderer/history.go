package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/gestaopro/bankroll"
)

// History is the render-ready view of a bankroll's transaction ledger.
type History struct {
	// Name of the bankroll.
	Name string `json:"name"`
	// Entries in chronological order, each carrying the running balance after
	// it was applied.
	Entries []HistoryEntry `json:"entries"`
	// Final is the balance after the whole ledger, i.e. the current bankroll.
	Final bankroll.Money `json:"final"`
}

// HistoryEntry is one ledger row.
type HistoryEntry struct {
	Date        bankroll.Date      `json:"date"`
	Type        bankroll.TxType    `json:"type"`
	Description string             `json:"description"`
	Stake       bankroll.Money     `json:"stake"`
	Odds        string             `json:"odds"`
	Result      bankroll.BetResult `json:"result"`
	Net         bankroll.Money     `json:"net"`
	Balance     bankroll.Money     `json:"balance"`
}

// NewHistory builds the history view by replaying the ledger in chronological
// order, recording the balance after each entry.
func NewHistory(b bankroll.Bankroll) *History {
	h := &History{
		Name:    b.Name,
		Entries: make([]HistoryEntry, 0, len(b.Transactions)),
	}

	balance := b.Initial
	for _, tx := range bankroll.SortedByDate(b.Transactions) {
		e := HistoryEntry{
			Date:        tx.Date,
			Type:        tx.Type,
			Description: tx.Description,
			Stake:       tx.Stake,
		}
		switch tx.Type {
		case bankroll.TxDeposit:
			e.Net = tx.Stake
		case bankroll.TxWithdrawal:
			e.Net = tx.Stake.Neg()
		case bankroll.TxBet:
			e.Odds = tx.Odds.StringFixed(2)
			e.Result = tx.Result
			switch tx.Result {
			case bankroll.ResultPending, bankroll.ResultLoss:
				e.Net = tx.Stake.Neg()
			case bankroll.ResultWin:
				e.Net = tx.Return.Sub(tx.Stake)
			case bankroll.ResultVoid:
				// stake returned, nothing moves
			}
		}
		balance = balance.Add(e.Net)
		e.Balance = balance
		h.Entries = append(h.Entries, e)
	}
	h.Final = balance
	return h
}

const historyMarkdownTemplate = `# History for {{ .Name }}

{{- if .Entries }}

| Date | Type | Description | Stake | Odds | Result | Net | Balance |
|:---|:---|:---|---:|---:|:---|---:|---:|
{{- range .Entries }}
| {{ .Date }} | {{ .Type }} | {{ .Description }} | {{ .Stake }} | {{ .Odds }} | {{ .Result }} | {{ .Net.SignedString }} | {{ .Balance }} |
{{- end }}

Current Bankroll: **{{ .Final }}**
{{- else }}

No transactions recorded.
{{- end }}
`

// RenderHistory renders the History view to a markdown string.
func RenderHistory(h *History) string {
	tmpl := template.Must(template.New("history").Parse(historyMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, h); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}
