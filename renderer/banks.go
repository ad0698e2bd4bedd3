package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/gestaopro/bankroll"
)

// BankList is the render-ready view of every bankroll in the state.
type BankList struct {
	Banks []BankRow `json:"banks"`
}

// BankRow is one row of the bankroll list.
type BankRow struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Initial      bankroll.Money `json:"initial"`
	Current      bankroll.Money `json:"current"`
	Transactions int            `json:"transactions"`
	Active       bool           `json:"active,omitempty"`
}

// NewBankList builds the bankroll list view from the whole state.
func NewBankList(st bankroll.AppState) *BankList {
	active := st.ActiveBankroll().ID
	l := &BankList{Banks: make([]BankRow, 0, len(st.Bankrolls))}
	for _, b := range st.Bankrolls {
		l.Banks = append(l.Banks, BankRow{
			ID:           b.ID,
			Name:         b.Name,
			Initial:      b.Initial,
			Current:      b.Summary().CurrentBankroll,
			Transactions: len(b.Transactions),
			Active:       b.ID == active,
		})
	}
	return l
}

const bankListMarkdownTemplate = `# Bankrolls

| | Name | Initial | Current | Transactions | ID |
|:---|:---|---:|---:|---:|:---|
{{- range .Banks }}
| {{ if .Active }}*{{ end }} | {{ .Name }} | {{ .Initial }} | {{ .Current }} | {{ .Transactions }} | {{ .ID }} |
{{- end }}
`

// RenderBankList renders the BankList view to a markdown string.
func RenderBankList(l *BankList) string {
	tmpl := template.Must(template.New("bankList").Parse(bankListMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, l); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}
