package bankroll

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCalculateReturn(t *testing.T) {
	odds := decimal.NewFromFloat(1.8)

	testCases := []struct {
		name   string
		stake  Money
		result BetResult
		want   Money
	}{
		{name: "win pays stake times odds", stake: M(100), result: ResultWin, want: M(180)},
		{name: "void returns the stake", stake: M(100), result: ResultVoid, want: M(100)},
		{name: "loss returns nothing", stake: M(100), result: ResultLoss, want: M(0)},
		{name: "pending returns nothing", stake: M(100), result: ResultPending, want: M(0)},
		{name: "zero stake win", stake: M(0), result: ResultWin, want: M(0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateReturn(tc.stake, odds, tc.result)
			if !got.Equal(tc.want) {
				t.Errorf("CalculateReturn(%v, %v, %v) = %v, want %v", tc.stake, odds, tc.result, got, tc.want)
			}
		})
	}
}

func TestNewBetDerivesReturn(t *testing.T) {
	tx := NewBet(MustParseDate("2025-03-01"), "Flamengo ML", M(50), decimal.NewFromFloat(2.5), ResultWin)
	if tx.ID == "" {
		t.Error("NewBet did not assign an id")
	}
	if want := M(125); !tx.Return.Equal(want) {
		t.Errorf("Return = %v, want %v", tx.Return, want)
	}
}

func TestNewDepositIsInert(t *testing.T) {
	tx := NewDeposit(MustParseDate("2025-03-01"), "top up", M(200))
	if tx.Result != ResultVoid {
		t.Errorf("deposit result = %v, want %v", tx.Result, ResultVoid)
	}
	if !tx.Odds.Equal(decimal.NewFromInt(1)) {
		t.Errorf("deposit odds = %v, want 1", tx.Odds)
	}
}

func TestApplyRederivesReturn(t *testing.T) {
	tx := NewBet(MustParseDate("2025-03-01"), "", M(100), decimal.NewFromFloat(2.0), ResultPending)

	win := ResultWin
	updated := tx.apply(TransactionUpdate{Result: &win})
	if want := M(200); !updated.Return.Equal(want) {
		t.Errorf("after settling to win, Return = %v, want %v", updated.Return, want)
	}

	stake := M(30)
	updated = updated.apply(TransactionUpdate{Stake: &stake})
	if want := M(60); !updated.Return.Equal(want) {
		t.Errorf("after changing stake, Return = %v, want %v", updated.Return, want)
	}

	// an edit not touching stake/odds/result keeps the cached return
	desc := "late edit"
	final := updated.apply(TransactionUpdate{Description: &desc})
	if !final.Return.Equal(updated.Return) {
		t.Errorf("description edit changed Return from %v to %v", updated.Return, final.Return)
	}
	if final.Description != "late edit" {
		t.Errorf("Description = %q, want %q", final.Description, "late edit")
	}
}

func TestParseTxType(t *testing.T) {
	if _, err := ParseTxType("bet"); err != nil {
		t.Errorf("ParseTxType(bet) unexpected error: %v", err)
	}
	if _, err := ParseTxType("jackpot"); err == nil {
		t.Error("ParseTxType(jackpot) expected an error")
	}
}

func TestParseBetResult(t *testing.T) {
	if _, err := ParseBetResult("void"); err != nil {
		t.Errorf("ParseBetResult(void) unexpected error: %v", err)
	}
	if _, err := ParseBetResult("push"); err == nil {
		t.Error("ParseBetResult(push) expected an error")
	}
}
