package bankroll

import (
	"github.com/google/uuid"
)

// Bankroll is a named pool of betting capital with its own transaction and
// challenge history.
type Bankroll struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Initial      Money         `json:"initialBankroll"`
	Transactions []Transaction `json:"transactions"`
	Challenges   []Challenge   `json:"challenges"`
}

// NewBankroll creates an empty bankroll with the given starting capital.
func NewBankroll(name string, initial Money) Bankroll {
	return Bankroll{
		ID:           uuid.NewString(),
		Name:         name,
		Initial:      initial,
		Transactions: []Transaction{},
		Challenges:   []Challenge{},
	}
}

// Summary derives the bankroll metrics from the current ledger snapshot.
func (b Bankroll) Summary() Summary {
	return ComputeSummary(b.Initial, b.Transactions)
}

// Challenge returns the challenge with the given id, or nil if unknown.
func (b Bankroll) Challenge(id string) *Challenge {
	if i := b.findChallenge(id); i >= 0 {
		c := b.Challenges[i]
		return &c
	}
	return nil
}

// Transaction returns the transaction with the given id, or nil if unknown.
func (b Bankroll) Transaction(id string) *Transaction {
	if i := b.findTransaction(id); i >= 0 {
		t := b.Transactions[i]
		return &t
	}
	return nil
}

func (b Bankroll) findTransaction(id string) int {
	for i, t := range b.Transactions {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (b Bankroll) findChallenge(id string) int {
	for i, c := range b.Challenges {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// clone returns a deep copy of the bankroll, so a mutation never touches the
// slices of a previous snapshot.
func (b Bankroll) clone() Bankroll {
	txs := make([]Transaction, len(b.Transactions))
	copy(txs, b.Transactions)
	b.Transactions = txs

	chs := make([]Challenge, len(b.Challenges))
	for i, c := range b.Challenges {
		chs[i] = c.clone()
	}
	b.Challenges = chs
	return b
}
