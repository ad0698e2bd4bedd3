package bankroll

import (
	"io"
	"log"
)

// Persister writes a state snapshot to durable storage.
type Persister interface {
	Save(AppState) error
}

// Store owns the single AppState snapshot and exposes the mutation operations
// the UI drives. Every mutation produces a whole new snapshot (copy-on-write)
// and triggers a synchronous persist; there is no partially applied state to
// observe.
//
// Operations referencing an unknown transaction, challenge or bankroll id are
// silent no-ops: the UI can retry them idempotently.
type Store struct {
	state     AppState
	persister Persister
}

// NewStore creates a store over an initial snapshot. persister may be nil
// (e.g. in tests), in which case mutations are kept in memory only.
func NewStore(initial AppState, persister Persister) *Store {
	return &Store{state: initial, persister: persister}
}

// State returns the current snapshot.
func (s *Store) State() AppState { return s.state }

// ActiveBankroll returns the currently selected bankroll.
func (s *Store) ActiveBankroll() Bankroll { return s.state.ActiveBankroll() }

// Summary derives the active bankroll's metrics from the current snapshot.
func (s *Store) Summary() Summary { return s.state.ActiveBankroll().Summary() }

// mutate builds the next snapshot from a deep copy of the current one,
// replaces it wholesale and persists it. The persist is fire-and-forget: a
// write failure loses nothing in memory and the slot keeps the last
// successfully persisted snapshot.
func (s *Store) mutate(fn func(*AppState)) {
	next := s.state.clone()
	fn(&next)
	s.state = next
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(s.state); err != nil {
		log.Printf("could not persist state: %v", err)
	}
}

// active applies fn to the active bankroll of the next snapshot.
func (s *Store) active(fn func(*Bankroll)) {
	s.mutate(func(st *AppState) {
		fn(&st.Bankrolls[st.activeIndex()])
	})
}

// AddTransaction appends a ledger entry to the active bankroll.
func (s *Store) AddTransaction(tx Transaction) {
	s.active(func(b *Bankroll) {
		b.Transactions = append(b.Transactions, tx)
	})
}

// UpdateTransaction edits the identified transaction of the active bankroll,
// re-deriving the cached return amount when stake, odds or result change.
func (s *Store) UpdateTransaction(id string, u TransactionUpdate) {
	s.active(func(b *Bankroll) {
		if i := b.findTransaction(id); i >= 0 {
			b.Transactions[i] = b.Transactions[i].apply(u)
		}
	})
}

// DeleteTransaction removes the identified transaction from the active bankroll.
func (s *Store) DeleteTransaction(id string) {
	s.active(func(b *Bankroll) {
		if i := b.findTransaction(id); i >= 0 {
			b.Transactions = append(b.Transactions[:i], b.Transactions[i+1:]...)
		}
	})
}

// AddChallenge appends a challenge to the active bankroll.
func (s *Store) AddChallenge(c Challenge) {
	s.active(func(b *Bankroll) {
		b.Challenges = append(b.Challenges, c)
	})
}

// UpdateChallengeDay records a day outcome and replays the challenge schedule.
func (s *Store) UpdateChallengeDay(challengeID string, day int, result BetResult, doubleOnLoss bool) {
	s.active(func(b *Bankroll) {
		if i := b.findChallenge(challengeID); i >= 0 {
			b.Challenges[i] = b.Challenges[i].Recompute(day, result, doubleOnLoss)
		}
	})
}

// RestartChallenge resets the identified challenge to day 1.
func (s *Store) RestartChallenge(challengeID string) {
	s.active(func(b *Bankroll) {
		if i := b.findChallenge(challengeID); i >= 0 {
			b.Challenges[i] = b.Challenges[i].Restart()
		}
	})
}

// DeleteChallenge removes the identified challenge from the active bankroll.
func (s *Store) DeleteChallenge(challengeID string) {
	s.active(func(b *Bankroll) {
		if i := b.findChallenge(challengeID); i >= 0 {
			b.Challenges = append(b.Challenges[:i], b.Challenges[i+1:]...)
		}
	})
}

// CreateBankroll appends a new bankroll and switches the active selection to it.
func (s *Store) CreateBankroll(name string, initial Money) {
	s.mutate(func(st *AppState) {
		b := NewBankroll(name, initial)
		st.Bankrolls = append(st.Bankrolls, b)
		st.ActiveBankrollID = b.ID
	})
}

// DeleteBankroll removes a bankroll. Deleting the last remaining bankroll is
// refused: the system never reaches a zero-bankroll state. If the deleted
// bankroll was active, the selection moves to the first remaining one.
func (s *Store) DeleteBankroll(id string) {
	if len(s.state.Bankrolls) <= 1 {
		return
	}
	s.mutate(func(st *AppState) {
		i := st.findBankroll(id)
		if i < 0 {
			return
		}
		st.Bankrolls = append(st.Bankrolls[:i], st.Bankrolls[i+1:]...)
		if st.ActiveBankrollID == id {
			st.ActiveBankrollID = st.Bankrolls[0].ID
		}
	})
}

// SwitchBankroll changes the active selection.
func (s *Store) SwitchBankroll(id string) {
	if s.state.findBankroll(id) < 0 {
		return
	}
	s.mutate(func(st *AppState) {
		st.ActiveBankrollID = id
	})
}

// SetInitialBankroll changes the starting capital of the active bankroll,
// the baseline for ROI.
func (s *Store) SetInitialBankroll(amount Money) {
	s.active(func(b *Bankroll) {
		b.Initial = amount
	})
}

// SetTheme stores the presentation theme. No derived state depends on it.
func (s *Store) SetTheme(theme string) {
	s.mutate(func(st *AppState) { st.Theme = theme })
}

// SetColorScheme stores the accent color. No derived state depends on it.
func (s *Store) SetColorScheme(scheme string) {
	s.mutate(func(st *AppState) { st.ColorScheme = scheme })
}

// SetDashboardLayout stores the dashboard section order. No derived state
// depends on it.
func (s *Store) SetDashboardLayout(layout []string) {
	s.mutate(func(st *AppState) {
		st.DashboardLayout = make([]string, len(layout))
		copy(st.DashboardLayout, layout)
	})
}

// Reset restores the fresh-install state, discarding every ledger.
func (s *Store) Reset() {
	s.mutate(func(st *AppState) { *st = DefaultState() })
}

// ImportFrom replaces the whole state with the document read from r. The
// import is destructive: nothing is merged. On error no state changes.
func (s *Store) ImportFrom(r io.Reader) error {
	st, err := Import(r)
	if err != nil {
		return err
	}
	s.mutate(func(next *AppState) { *next = st })
	return nil
}

// ExportTo writes the full current snapshot to w as pretty-printed JSON.
func (s *Store) ExportTo(w io.Writer) error {
	return EncodeState(w, s.state)
}
