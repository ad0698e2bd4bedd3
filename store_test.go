package bankroll

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

// countingPersister records how many snapshots were saved.
type countingPersister struct {
	saves int
	last  AppState
}

func (p *countingPersister) Save(st AppState) error {
	p.saves++
	p.last = st
	return nil
}

func TestStoreAddAndSettleTransaction(t *testing.T) {
	s := NewStore(DefaultState(), nil)
	tx := NewBet(MustParseDate("2025-03-01"), "", M(100), decimal.NewFromFloat(2.0), ResultPending)
	s.AddTransaction(tx)

	if want := M(900); !s.Summary().CurrentBankroll.Equal(want) {
		t.Fatalf("after pending bet, CurrentBankroll = %v, want %v", s.Summary().CurrentBankroll, want)
	}

	win := ResultWin
	s.UpdateTransaction(tx.ID, TransactionUpdate{Result: &win})
	sum := s.Summary()
	if want := M(1100); !sum.CurrentBankroll.Equal(want) {
		t.Errorf("after win, CurrentBankroll = %v, want %v", sum.CurrentBankroll, want)
	}
	if want := M(100); !sum.TotalProfit.Equal(want) {
		t.Errorf("after win, TotalProfit = %v, want %v", sum.TotalProfit, want)
	}

	s.DeleteTransaction(tx.ID)
	if got := len(s.ActiveBankroll().Transactions); got != 0 {
		t.Errorf("after delete, %d transactions left, want 0", got)
	}
}

func TestStoreUnknownIDsAreNoops(t *testing.T) {
	s := NewStore(DefaultState(), nil)
	before := s.State()

	win := ResultWin
	s.UpdateTransaction("missing", TransactionUpdate{Result: &win})
	s.DeleteTransaction("missing")
	s.UpdateChallengeDay("missing", 1, ResultWin, false)
	s.RestartChallenge("missing")
	s.DeleteChallenge("missing")
	s.SwitchBankroll("missing")

	if !reflect.DeepEqual(s.State(), before) {
		t.Error("operations on unknown ids changed the state")
	}
}

func TestStoreLastBankrollProtection(t *testing.T) {
	s := NewStore(DefaultState(), nil)
	only := s.ActiveBankroll().ID

	s.DeleteBankroll(only)

	if got := len(s.State().Bankrolls); got != 1 {
		t.Fatalf("%d bankrolls left, want the last one protected", got)
	}
	if s.ActiveBankroll().ID != only {
		t.Error("active bankroll changed on a refused delete")
	}
}

func TestStoreBankrollLifecycle(t *testing.T) {
	s := NewStore(DefaultState(), nil)
	first := s.ActiveBankroll().ID

	s.CreateBankroll("Bet365", M(500))
	if got := len(s.State().Bankrolls); got != 2 {
		t.Fatalf("%d bankrolls, want 2", got)
	}
	second := s.ActiveBankroll()
	if second.Name != "Bet365" {
		t.Errorf("creating a bankroll did not switch to it, active is %q", second.Name)
	}
	if !second.Initial.Equal(M(500)) {
		t.Errorf("Initial = %v, want %v", second.Initial, M(500))
	}

	s.SwitchBankroll(first)
	if s.ActiveBankroll().ID != first {
		t.Error("SwitchBankroll did not change the selection")
	}

	// deleting the active bankroll falls back to the first remaining one
	s.SwitchBankroll(second.ID)
	s.DeleteBankroll(second.ID)
	if got := len(s.State().Bankrolls); got != 1 {
		t.Fatalf("%d bankrolls left, want 1", got)
	}
	if s.ActiveBankroll().ID != first {
		t.Error("active selection did not fall back after deleting the active bankroll")
	}
}

func TestStoreSetInitialBankroll(t *testing.T) {
	s := NewStore(DefaultState(), nil)
	s.SetInitialBankroll(M(2500))
	if got := s.ActiveBankroll().Initial; !got.Equal(M(2500)) {
		t.Errorf("Initial = %v, want %v", got, M(2500))
	}
}

func TestStoreChallengeOperations(t *testing.T) {
	s := NewStore(DefaultState(), nil)
	c := NewChallenge("alavancagem", M(10), decimal.NewFromFloat(1.1), 5, MustParseDate("2025-03-01"))
	s.AddChallenge(c)

	s.UpdateChallengeDay(c.ID, 1, ResultWin, false)
	got := s.ActiveBankroll().Challenge(c.ID)
	if got == nil {
		t.Fatal("challenge not found after add")
	}
	if got.Days[0].Result != ResultWin {
		t.Errorf("day 1 result = %v, want win", got.Days[0].Result)
	}
	if want := M(11); !got.Days[1].Stake.Equal(want) {
		t.Errorf("day 2 stake = %v, want %v", got.Days[1].Stake, want)
	}

	s.RestartChallenge(c.ID)
	got = s.ActiveBankroll().Challenge(c.ID)
	if got.Days[0].Result != ResultPending {
		t.Error("restart did not clear day results")
	}

	s.DeleteChallenge(c.ID)
	if s.ActiveBankroll().Challenge(c.ID) != nil {
		t.Error("challenge still present after delete")
	}
}

// Mutations are copy-on-write: a snapshot taken before a mutation never
// changes.
func TestStoreCopyOnWrite(t *testing.T) {
	s := NewStore(DefaultState(), nil)
	tx := NewBet(MustParseDate("2025-03-01"), "", M(100), decimal.NewFromFloat(2.0), ResultPending)
	s.AddTransaction(tx)

	before := s.State()
	beforeTxs := before.ActiveBankroll().Transactions

	win := ResultWin
	s.UpdateTransaction(tx.ID, TransactionUpdate{Result: &win})

	if beforeTxs[0].Result != ResultPending {
		t.Error("mutation modified a previously observed snapshot")
	}
	if s.State().ActiveBankroll().Transactions[0].Result != ResultWin {
		t.Error("mutation not visible in the new snapshot")
	}
}

func TestStorePersistsAfterEveryMutation(t *testing.T) {
	p := &countingPersister{}
	s := NewStore(DefaultState(), p)

	s.AddTransaction(NewDeposit(MustParseDate("2025-03-01"), "", M(10)))
	s.SetTheme("light")
	s.SetColorScheme("emerald")
	s.SetDashboardLayout([]string{"chart", "stats"})

	if p.saves != 4 {
		t.Errorf("persisted %d times, want 4", p.saves)
	}
	if p.last.Theme != "light" || p.last.ColorScheme != "emerald" {
		t.Errorf("last persisted snapshot = {%q %q}, want the latest settings", p.last.Theme, p.last.ColorScheme)
	}
}

func TestStoreReset(t *testing.T) {
	s := NewStore(DefaultState(), nil)
	s.CreateBankroll("extra", M(50))
	s.AddTransaction(NewDeposit(MustParseDate("2025-03-01"), "", M(10)))

	s.Reset()

	st := s.State()
	if len(st.Bankrolls) != 1 {
		t.Fatalf("%d bankrolls after reset, want 1", len(st.Bankrolls))
	}
	b := st.ActiveBankroll()
	if !b.Initial.Equal(DefaultInitialBankroll) || len(b.Transactions) != 0 {
		t.Errorf("reset state = initial %v with %d transactions, want defaults", b.Initial, len(b.Transactions))
	}
}

func TestActiveBankrollFallback(t *testing.T) {
	st := DefaultState()
	st.ActiveBankrollID = "stale"
	s := NewStore(st, nil)
	if s.ActiveBankroll().Name != "Banca Principal" {
		t.Error("stale active id did not fall back to the first bankroll")
	}
}
