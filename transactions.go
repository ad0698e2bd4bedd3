package bankroll

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TxType is a typed string identifying the kind of ledger entry.
type TxType string

// Transaction types recorded in a bankroll ledger.
const (
	TxBet        TxType = "bet"
	TxDeposit    TxType = "deposit"
	TxWithdrawal TxType = "withdrawal"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(s) {
	case TxBet, TxDeposit, TxWithdrawal:
		return TxType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// BetResult is the settlement state of a bet.
type BetResult string

// Possible settlement states. Non-bet transactions carry ResultVoid as an
// inert sentinel.
const (
	ResultPending BetResult = "pending"
	ResultWin     BetResult = "win"
	ResultLoss    BetResult = "loss"
	ResultVoid    BetResult = "void"
)

// ParseBetResult parses a string into a BetResult.
func ParseBetResult(s string) (BetResult, error) {
	switch BetResult(s) {
	case ResultPending, ResultWin, ResultLoss, ResultVoid:
		return BetResult(s), nil
	default:
		return "", fmt.Errorf("unknown bet result: %q", s)
	}
}

// Settled reports whether the result fixes the bet's outcome.
func (r BetResult) Settled() bool { return r == ResultWin || r == ResultLoss || r == ResultVoid }

// CalculateReturn derives the settlement return of a bet: the full payout on a
// win, the stake back on a void, nothing on a loss or while pending.
func CalculateReturn(stake Money, odds decimal.Decimal, result BetResult) Money {
	switch result {
	case ResultWin:
		return stake.Mul(odds)
	case ResultVoid:
		return stake
	default:
		return Money{}
	}
}

// Transaction is one ledger entry: a bet, a deposit or a withdrawal.
//
// Return is derived and cached on the entity: it must always equal
// CalculateReturn(Stake, Odds, Result), and any edit touching Stake, Odds or
// Result re-derives it.
type Transaction struct {
	ID          string          `json:"id"`
	Date        Date            `json:"date"`
	Type        TxType          `json:"type"`
	Description string          `json:"description"`
	Stake       Money           `json:"stake"`
	Odds        decimal.Decimal `json:"odds"`
	Result      BetResult       `json:"result"`
	Return      Money           `json:"returnAmount"`
	Sport       string          `json:"sport,omitempty"`
	Market      string          `json:"market,omitempty"`
}

// NewBet records a wager. The return amount is derived from the result.
func NewBet(day Date, description string, stake Money, odds decimal.Decimal, result BetResult) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Date:        day,
		Type:        TxBet,
		Description: description,
		Stake:       stake,
		Odds:        odds,
		Result:      result,
		Return:      CalculateReturn(stake, odds, result),
	}
}

// NewDeposit records funds added to the bankroll.
func NewDeposit(day Date, description string, amount Money) Transaction {
	return newMovement(day, TxDeposit, description, amount)
}

// NewWithdrawal records funds taken out of the bankroll.
func NewWithdrawal(day Date, description string, amount Money) Transaction {
	return newMovement(day, TxWithdrawal, description, amount)
}

func newMovement(day Date, typ TxType, description string, amount Money) Transaction {
	// Non-bet entries store odds 1 and the inert void result.
	return Transaction{
		ID:          uuid.NewString(),
		Date:        day,
		Type:        typ,
		Description: description,
		Stake:       amount,
		Odds:        decimal.NewFromInt(1),
		Result:      ResultVoid,
		Return:      amount,
	}
}

// TransactionUpdate carries the fields of a partial edit. Nil fields are left
// untouched.
type TransactionUpdate struct {
	Date        *Date
	Description *string
	Stake       *Money
	Odds        *decimal.Decimal
	Result      *BetResult
	Sport       *string
	Market      *string
}

// apply returns a copy of the transaction with the update applied. Whenever
// stake, odds or result change, the cached return amount is re-derived.
func (t Transaction) apply(u TransactionUpdate) Transaction {
	if u.Date != nil {
		t.Date = *u.Date
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Sport != nil {
		t.Sport = *u.Sport
	}
	if u.Market != nil {
		t.Market = *u.Market
	}
	rederive := false
	if u.Stake != nil {
		t.Stake = *u.Stake
		rederive = true
	}
	if u.Odds != nil {
		t.Odds = *u.Odds
		rederive = true
	}
	if u.Result != nil {
		t.Result = *u.Result
		rederive = true
	}
	if rederive {
		t.Return = CalculateReturn(t.Stake, t.Odds, t.Result)
	}
	return t
}

func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Date == o.Date &&
		t.Type == o.Type &&
		t.Description == o.Description &&
		t.Stake.Equal(o.Stake) &&
		t.Odds.Equal(o.Odds) &&
		t.Result == o.Result &&
		t.Return.Equal(o.Return) &&
		t.Sport == o.Sport &&
		t.Market == o.Market
}

// MarshalJSON writes the transaction with a stable field order matching the
// documents persisted by the web app, omitting the optional fields when empty.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("type", t.Type)
	w.Append("description", t.Description)
	w.Append("stake", t.Stake)
	w.Append("odds", t.Odds)
	w.Append("result", t.Result)
	w.Append("returnAmount", t.Return)
	w.Optional("sport", t.Sport)
	w.Optional("market", t.Market)
	return w.MarshalJSON()
}

var _ json.Marshaler = Transaction{}
