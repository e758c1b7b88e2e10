package progression

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Progress returns current as percentage of target. A goal without a
// positive target has no progress.
func Progress(current, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() {
		return decimal.Zero
	}

	return current.Div(target).Mul(hundred)
}

// AcceptDeposit returns ErrGoalAlreadyMet when a goal that reached its target
// receives a deposit that does not come from a challenge.
func AcceptDeposit(progress decimal.Decimal, fromChallenge bool) error {
	if fromChallenge || progress.LessThan(hundred) {
		return nil
	}

	return ErrGoalAlreadyMet
}
