package bankroll

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChallengeStatus is the lifecycle state of a staking challenge.
type ChallengeStatus string

const (
	ChallengeActive    ChallengeStatus = "active"
	ChallengeCompleted ChallengeStatus = "completed"
	ChallengeFailed    ChallengeStatus = "failed"
)

// ChallengeDay is one scheduled day within a challenge.
//
// The stake is derived: once the results and doubling choices of the days
// before it are known, the stake is fully determined by the replay in
// Recompute and is never an independent source of truth.
type ChallengeDay struct {
	Day        int             `json:"day"`
	Stake      Money           `json:"stake"`
	TargetOdds decimal.Decimal `json:"targetOdds"`
	Result     BetResult       `json:"result"`
	Doubled    bool            `json:"doubled,omitempty"`
}

// ExpectedReturn is the payout if the day's bet wins.
func (d ChallengeDay) ExpectedReturn() Money { return d.Stake.Mul(d.TargetOdds) }

// MarshalJSON writes the day with a stable field order, omitting the doubled
// flag unless set.
func (d ChallengeDay) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("day", d.Day)
	w.Append("stake", d.Stake)
	w.Append("targetOdds", d.TargetOdds)
	w.Append("result", d.Result)
	w.Optional("doubled", d.Doubled)
	return w.MarshalJSON()
}

// Challenge is a fixed-length compounding-stake plan: bet the day's stake at
// the target odds every day, rolling the payout into the next day's stake.
type Challenge struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	InitialStake Money           `json:"initialStake"`
	TargetOdds   decimal.Decimal `json:"targetOdds"`
	TotalDays    int             `json:"totalDays"`
	StartDate    Date            `json:"startDate"`
	Status       ChallengeStatus `json:"status"`
	Days         []ChallengeDay  `json:"days"`
}

// ValidateChallengeParams checks the creation constraints: at least one day,
// odds above 1, a positive initial stake. NewChallenge assumes they hold.
func ValidateChallengeParams(initialStake Money, targetOdds decimal.Decimal, totalDays int) error {
	if totalDays < 1 {
		return fmt.Errorf("challenge must run for at least 1 day, got %d", totalDays)
	}
	if targetOdds.LessThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("target odds must be greater than 1, got %s", targetOdds)
	}
	if !initialStake.IsPositive() {
		return fmt.Errorf("initial stake must be positive, got %s", initialStake)
	}
	return nil
}

// NewChallenge builds an active challenge of totalDays pending days, day i
// staking initialStake*targetOdds^(i-1).
func NewChallenge(name string, initialStake Money, targetOdds decimal.Decimal, totalDays int, start Date) Challenge {
	c := Challenge{
		ID:           uuid.NewString(),
		Name:         name,
		InitialStake: initialStake,
		TargetOdds:   targetOdds,
		TotalDays:    totalDays,
		StartDate:    start,
		Status:       ChallengeActive,
	}
	c.Days = pendingDays(initialStake, targetOdds, totalDays)
	return c
}

// pendingDays builds the pure compounding sequence with every day pending.
func pendingDays(initialStake Money, targetOdds decimal.Decimal, totalDays int) []ChallengeDay {
	days := make([]ChallengeDay, totalDays)
	stake := initialStake
	for i := range days {
		days[i] = ChallengeDay{
			Day:        i + 1,
			Stake:      stake,
			TargetOdds: targetOdds,
			Result:     ResultPending,
		}
		stake = stake.Mul(targetOdds)
	}
	return days
}

// FinalTarget is the payout after winning every day: initialStake*targetOdds^totalDays.
func (c Challenge) FinalTarget() Money {
	factor, _ := c.TargetOdds.PowInt32(int32(c.TotalDays))
	return c.InitialStake.Mul(factor)
}

// SettledDays counts the days with a recorded outcome.
func (c Challenge) SettledDays() int {
	n := 0
	for _, d := range c.Days {
		if d.Result != ResultPending {
			n++
		}
	}
	return n
}

// Progress is the share of days with a recorded outcome.
func (c Challenge) Progress() Percent {
	if c.TotalDays == 0 {
		return 0
	}
	return Percent(float64(c.SettledDays()) / float64(c.TotalDays) * 100)
}

// failurePoint returns the 1-based day of the first unrecovered loss, or 0.
func (c Challenge) failurePoint() int {
	for _, d := range c.Days {
		if d.Result == ResultLoss && !d.Doubled {
			return d.Day
		}
	}
	return 0
}

// clone returns a deep copy of the challenge.
func (c Challenge) clone() Challenge {
	days := make([]ChallengeDay, len(c.Days))
	copy(days, c.Days)
	c.Days = days
	return c
}

// Recompute applies a result to one day and replays the whole chain from day 1,
// regenerating every stake and the overall status. Replaying from the start
// (rather than patching forward) keeps the schedule consistent when an earlier
// day is corrected after later days were already filled.
//
// A failed challenge is sticky: edits to days after the failure point are
// no-ops until the failing day itself is corrected or the challenge is
// restarted.
//
// The replay walks days 1..totalDays carrying the current stake:
//   - win: next stake is stake*targetOdds
//   - void: stake unchanged
//   - loss with doubling: next stake is stake*2 (martingale continuation)
//   - loss without doubling: the challenge is failed; remaining stakes keep
//     compounding as a cosmetic projection
//   - pending: stake compounds, projecting a future win for display
func (c Challenge) Recompute(day int, result BetResult, doubleOnLoss bool) Challenge {
	if day < 1 || day > len(c.Days) {
		return c
	}
	if fp := c.failurePoint(); fp != 0 && day > fp {
		return c
	}

	next := c.clone()
	next.Days[day-1].Result = result
	next.Days[day-1].Doubled = result == ResultLoss && doubleOnLoss

	stake := next.InitialStake
	failed := false
	for i := range next.Days {
		next.Days[i].Stake = stake
		switch next.Days[i].Result {
		case ResultWin:
			stake = stake.Mul(next.TargetOdds)
		case ResultVoid:
			// stake carries over unchanged
		case ResultLoss:
			if next.Days[i].Doubled {
				stake = stake.Mul(decimal.NewFromInt(2))
			} else {
				failed = true
				stake = stake.Mul(next.TargetOdds)
			}
		case ResultPending:
			stake = stake.Mul(next.TargetOdds)
		}
	}

	switch {
	case failed:
		next.Status = ChallengeFailed
	case next.SettledDays() == next.TotalDays:
		next.Status = ChallengeCompleted
	default:
		next.Status = ChallengeActive
	}
	return next
}

// Restart resets every day to pending, clears doubling choices, restores the
// pure compounding stakes and returns the challenge to the active state.
func (c Challenge) Restart() Challenge {
	next := c
	next.Days = pendingDays(c.InitialStake, c.TargetOdds, c.TotalDays)
	next.Status = ChallengeActive
	return next
}

// ChallengePoint is one point of the projection-vs-reality series: the
// expected compounded value after each day next to the value actually reached.
type ChallengePoint struct {
	Label    string
	Expected Money
	Actual   Money
	Settled  bool // Actual is meaningful only once the day is settled
}

// Projection builds the series the challenge chart plots: a starting point at
// the initial stake, then one point per day. The expected value after day i is
// initialStake*targetOdds^i; the actual value is the day's payout (stake*odds
// on a win, the stake on a void, zero on a loss).
func (c Challenge) Projection() []ChallengePoint {
	points := make([]ChallengePoint, 0, len(c.Days)+1)
	points = append(points, ChallengePoint{
		Label:    "Start",
		Expected: c.InitialStake,
		Actual:   c.InitialStake,
		Settled:  true,
	})
	expected := c.InitialStake
	for _, d := range c.Days {
		expected = expected.Mul(c.TargetOdds)
		p := ChallengePoint{Label: fmt.Sprintf("Day %d", d.Day), Expected: expected}
		switch d.Result {
		case ResultWin:
			p.Actual, p.Settled = d.ExpectedReturn(), true
		case ResultVoid:
			p.Actual, p.Settled = d.Stake, true
		case ResultLoss:
			p.Actual, p.Settled = Money{}, true
		}
		points = append(points, p)
	}
	return points
}
