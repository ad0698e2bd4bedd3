package bankroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a display-oriented percentage (e.g. ROI, win rate).
type Percent float64

// percentOf returns num/den expressed as a percentage. It is the caller's
// responsibility to guard against a zero denominator.
func percentOf(num, den decimal.Decimal) Percent {
	return Percent(num.Div(den).InexactFloat64() * 100)
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
