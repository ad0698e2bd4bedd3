package bankroll

// DefaultInitialBankroll is the starting capital of a fresh install.
var DefaultInitialBankroll = M(1000)

// defaultBankrollName matches the label of the web app's single bankroll.
const defaultBankrollName = "Banca Principal"

// AppState is the process-wide root aggregate: every bankroll, the active
// selection, and the presentation preferences carried through unchanged.
//
// The bankrolls collection is never empty; the last bankroll cannot be
// deleted.
type AppState struct {
	ActiveBankrollID string     `json:"activeBankrollId"`
	Bankrolls        []Bankroll `json:"bankrolls"`
	Theme            string     `json:"theme"`
	ColorScheme      string     `json:"colorScheme"`
	DashboardLayout  []string   `json:"dashboardLayout"`
}

// DefaultState is the fresh-install state: one bankroll with the default
// starting capital and empty ledgers.
func DefaultState() AppState {
	b := NewBankroll(defaultBankrollName, DefaultInitialBankroll)
	return AppState{
		ActiveBankrollID: b.ID,
		Bankrolls:        []Bankroll{b},
		Theme:            "dark",
		ColorScheme:      "indigo",
		DashboardLayout:  []string{"stats", "chart", "transactions"},
	}
}

// ActiveBankroll returns the selected bankroll. A stale or missing selection
// falls back to the first bankroll.
func (s AppState) ActiveBankroll() Bankroll {
	if i := s.findBankroll(s.ActiveBankrollID); i >= 0 {
		return s.Bankrolls[i]
	}
	return s.Bankrolls[0]
}

func (s AppState) findBankroll(id string) int {
	for i, b := range s.Bankrolls {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// activeIndex returns the index of the active bankroll, with the same
// first-bankroll fallback as ActiveBankroll.
func (s AppState) activeIndex() int {
	if i := s.findBankroll(s.ActiveBankrollID); i >= 0 {
		return i
	}
	return 0
}

// clone returns a deep copy of the state so mutations observe copy-on-write
// semantics: the previous snapshot is never modified.
func (s AppState) clone() AppState {
	banks := make([]Bankroll, len(s.Bankrolls))
	for i, b := range s.Bankrolls {
		banks[i] = b.clone()
	}
	s.Bankrolls = banks

	layout := make([]string, len(s.DashboardLayout))
	copy(layout, s.DashboardLayout)
	s.DashboardLayout = layout
	return s
}
