package bankroll

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeSummary(t *testing.T) {
	on := MustParseDate("2025-03-01")

	testCases := []struct {
		name        string
		initial     Money
		txs         []Transaction
		wantCurrent Money
		wantProfit  Money
		wantROI     Percent
		wantWinRate Percent
	}{
		{
			name:        "empty ledger",
			initial:     M(1000),
			wantCurrent: M(1000),
			wantProfit:  M(0),
		},
		{
			name:    "deposit and withdrawal",
			initial: M(1000),
			txs: []Transaction{
				NewDeposit(on, "", M(500)),
				NewWithdrawal(on.Add(1), "", M(200)),
			},
			wantCurrent: M(1300),
			wantProfit:  M(0),
		},
		{
			name:    "pending bet commits the stake",
			initial: M(1000),
			txs: []Transaction{
				NewBet(on, "", M(100), decimal.NewFromFloat(2.0), ResultPending),
			},
			wantCurrent: M(900),
			wantProfit:  M(0),
		},
		{
			name:    "won bet adds the net profit",
			initial: M(1000),
			txs: []Transaction{
				NewBet(on, "", M(100), decimal.NewFromFloat(2.0), ResultWin),
			},
			wantCurrent: M(1100),
			wantProfit:  M(100),
			wantROI:     10,
			wantWinRate: 100,
		},
		{
			name:    "lost bet subtracts the stake",
			initial: M(1000),
			txs: []Transaction{
				NewBet(on, "", M(100), decimal.NewFromFloat(2.0), ResultLoss),
			},
			wantCurrent: M(900),
			wantProfit:  M(-100),
			wantROI:     -10,
			wantWinRate: 0,
		},
		{
			name:    "void bet is settled but profit-neutral",
			initial: M(1000),
			txs: []Transaction{
				NewBet(on, "", M(100), decimal.NewFromFloat(2.0), ResultVoid),
			},
			wantCurrent: M(1000),
			wantProfit:  M(0),
			wantROI:     0,
			wantWinRate: 0,
		},
		{
			name:    "mixed ledger",
			initial: M(500),
			txs: []Transaction{
				NewDeposit(on, "", M(100)),
				NewBet(on.Add(1), "", M(50), decimal.NewFromFloat(1.5), ResultWin),
				NewBet(on.Add(2), "", M(40), decimal.NewFromFloat(2.0), ResultLoss),
				NewBet(on.Add(3), "", M(25), decimal.NewFromFloat(3.0), ResultPending),
			},
			wantCurrent: M(560), // 500 +100 +25 -40 -25
			wantProfit:  M(-15), // +25 -40
			wantROI:     -3,
			wantWinRate: 50,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeSummary(tc.initial, tc.txs)
			if !got.CurrentBankroll.Equal(tc.wantCurrent) {
				t.Errorf("CurrentBankroll = %v, want %v", got.CurrentBankroll, tc.wantCurrent)
			}
			if !got.TotalProfit.Equal(tc.wantProfit) {
				t.Errorf("TotalProfit = %v, want %v", got.TotalProfit, tc.wantProfit)
			}
			if !got.ROI.Equal(tc.wantROI) {
				t.Errorf("ROI = %v, want %v", got.ROI, tc.wantROI)
			}
			if !got.WinRate.Equal(tc.wantWinRate) {
				t.Errorf("WinRate = %v, want %v", got.WinRate, tc.wantWinRate)
			}
		})
	}
}

// Recomputing twice on the same ledger must yield identical results: the fold
// has no hidden mutation.
func TestComputeSummaryIdempotent(t *testing.T) {
	on := MustParseDate("2025-03-01")
	txs := []Transaction{
		NewDeposit(on, "", M(100)),
		NewBet(on.Add(1), "", M(50), decimal.NewFromFloat(1.8), ResultWin),
		NewBet(on.Add(2), "", M(20), decimal.NewFromFloat(2.2), ResultLoss),
	}

	first := ComputeSummary(M(1000), txs)
	second := ComputeSummary(M(1000), txs)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("summaries differ between runs:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestSortedByDateIsStable(t *testing.T) {
	on := MustParseDate("2025-03-01")
	a := NewDeposit(on, "first", M(1))
	b := NewDeposit(on, "second", M(2))
	c := NewDeposit(on.Add(-1), "earlier", M(3))

	input := []Transaction{a, b, c}
	sorted := SortedByDate(input)
	want := []string{"earlier", "first", "second"}
	for i, d := range want {
		if sorted[i].Description != d {
			t.Fatalf("position %d = %q, want %q", i, sorted[i].Description, d)
		}
	}

	// the input slice keeps its insertion order
	if input[0].Description != "first" || input[2].Description != "earlier" {
		t.Error("SortedByDate mutated its input")
	}
}

// Full bet lifecycle: record a pending bet, then settle it as a win.
func TestBetLifecycle(t *testing.T) {
	on := MustParseDate("2025-03-01")
	tx := NewBet(on, "", M(100), decimal.NewFromFloat(2.0), ResultPending)

	s := ComputeSummary(M(1000), []Transaction{tx})
	if want := M(900); !s.CurrentBankroll.Equal(want) {
		t.Fatalf("pending: CurrentBankroll = %v, want %v", s.CurrentBankroll, want)
	}

	win := ResultWin
	settled := tx.apply(TransactionUpdate{Result: &win})
	s = ComputeSummary(M(1000), []Transaction{settled})
	if want := M(1100); !s.CurrentBankroll.Equal(want) {
		t.Errorf("won: CurrentBankroll = %v, want %v", s.CurrentBankroll, want)
	}
	if want := M(100); !s.TotalProfit.Equal(want) {
		t.Errorf("won: TotalProfit = %v, want %v", s.TotalProfit, want)
	}
	if !s.WinRate.Equal(100) {
		t.Errorf("won: WinRate = %v, want 100%%", s.WinRate)
	}
}
