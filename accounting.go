package bankroll

import (
	"sort"
)

// This file is the ledger arithmetic: the stateless fold that derives every
// financial figure from a transaction snapshot. Nothing here mutates state;
// callers recompute on every read so derived values can never go stale.

// Summary holds the figures derived from a bankroll's transaction ledger.
type Summary struct {
	CurrentBankroll Money   // running balance after replaying the ledger
	TotalProfit     Money   // realized profit from settled bets
	ROI             Percent // realized profit over the starting capital
	WinRate         Percent // wins over settled bets
	Wins            int
	SettledBets     int
	PendingBets     int
}

// SortedByDate returns a copy of the transactions in chronological order.
// The sort is stable: entries on the same day keep their insertion order.
func SortedByDate(txs []Transaction) []Transaction {
	sorted := make([]Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// ComputeSummary replays the ledger in chronological order and derives the
// bankroll metrics. It is a pure function of its inputs.
//
// The running balance starts at the initial bankroll. Deposits add, withdrawals
// subtract. A pending bet commits its stake (at risk), a win adds the net
// profit, a loss subtracts the stake, a void leaves the balance unchanged with
// the stake returned.
func ComputeSummary(initial Money, txs []Transaction) Summary {
	s := Summary{CurrentBankroll: initial}

	for _, tx := range SortedByDate(txs) {
		switch tx.Type {
		case TxDeposit:
			s.CurrentBankroll = s.CurrentBankroll.Add(tx.Stake)
		case TxWithdrawal:
			s.CurrentBankroll = s.CurrentBankroll.Sub(tx.Stake)
		case TxBet:
			switch tx.Result {
			case ResultPending:
				s.CurrentBankroll = s.CurrentBankroll.Sub(tx.Stake)
				s.PendingBets++
			case ResultWin:
				profit := tx.Return.Sub(tx.Stake)
				s.CurrentBankroll = s.CurrentBankroll.Add(profit)
				s.TotalProfit = s.TotalProfit.Add(profit)
				s.Wins++
				s.SettledBets++
			case ResultLoss:
				s.CurrentBankroll = s.CurrentBankroll.Sub(tx.Stake)
				s.TotalProfit = s.TotalProfit.Sub(tx.Stake)
				s.SettledBets++
			case ResultVoid:
				// stake returned, settled but profit-neutral
				s.SettledBets++
			}
		}
	}

	if s.SettledBets > 0 && !initial.IsZero() {
		s.ROI = percentOf(s.TotalProfit.Decimal(), initial.Decimal())
	}
	if s.SettledBets > 0 {
		s.WinRate = Percent(float64(s.Wins) / float64(s.SettledBets) * 100)
	}
	return s
}
