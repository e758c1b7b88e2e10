// Package progression implements the arithmetic of savings challenges:
// validating a challenge definition, advancing it period by period and
// deciding which milestone achievements a goal unlocks.
//
// Nothing in here touches storage.
package progression

import (
	"github.com/shopspring/decimal"
)

type ChallengeType string

const (
	FixedDaily     ChallengeType = "FixedDaily"     // the same value every day
	FixedWeekly    ChallengeType = "FixedWeekly"    // the same value once per week
	DailyIncrement ChallengeType = "DailyIncrement" // the value grows by the increment every day
)

// Valid reports if t is a known challenge type.
func (t ChallengeType) Valid() bool {
	switch t {
	case FixedDaily, FixedWeekly, DailyIncrement:
		return true
	}
	return false
}

// step is the number of days one completed period covers.
func (t ChallengeType) step() int {
	if t == FixedWeekly {
		return 7
	}
	return 1
}

// MaxDurationDays is the longest challenge that can be configured, about a hundred years.
const MaxDurationDays = 36500

// Definition is what a user configures when starting a challenge.
type Definition struct {
	Type           ChallengeType
	InitialValue   decimal.Decimal
	IncrementValue decimal.Decimal // Only used by DailyIncrement
	DurationDays   int
}

// Validate checks the definition for consistency.
func (d Definition) Validate() error {
	if !d.Type.Valid() {
		return ErrChallengeTypeUnknown
	}

	if !d.InitialValue.IsPositive() {
		return ErrInitialValueNotPositive
	}

	if d.DurationDays <= 0 {
		return ErrDurationNotPositive
	}

	if d.DurationDays > MaxDurationDays {
		return ErrDurationTooLong
	}

	if d.Type == DailyIncrement && !d.IncrementValue.IsPositive() {
		return ErrIncrementValueNotPositive
	}

	return nil
}

// Periods is the number of deposits needed to complete the challenge.
func (d Definition) Periods() int {
	if d.Type == FixedWeekly {
		return (d.DurationDays + 6) / 7
	}
	return d.DurationDays
}

// ExpectedTotal is the sum of all period values over the full duration.
func (d Definition) ExpectedTotal() decimal.Decimal {
	return d.SavedAfter(d.DurationDays)
}

// SavedAfter is the sum of the period values completed once elapsedDays
// days of the challenge have passed.
func (d Definition) SavedAfter(elapsedDays int) decimal.Decimal {
	if elapsedDays <= 0 {
		return decimal.Zero
	}

	n := decimal.NewFromInt(int64(elapsedDays))

	switch d.Type {
	case FixedWeekly:
		weeks := decimal.NewFromInt(int64((elapsedDays + 6) / 7))
		return d.InitialValue.Mul(weeks)
	case DailyIncrement:
		triangle := n.Mul(n.Sub(decimal.NewFromInt(1))).Div(decimal.NewFromInt(2))
		return n.Mul(d.InitialValue).Add(d.IncrementValue.Mul(triangle))
	default:
		return d.InitialValue.Mul(n)
	}
}

// PeriodValue returns the deposit due for the period that ends on elapsedDays.
func (d Definition) PeriodValue(elapsedDays int) decimal.Decimal {
	if d.Type != DailyIncrement || elapsedDays < 1 {
		return d.InitialValue
	}

	return d.InitialValue.Add(d.IncrementValue.Mul(decimal.NewFromInt(int64(elapsedDays - 1))))
}

// Plan is a validated Definition together with its precomputed values.
type Plan struct {
	Definition
	ExpectedTotal    decimal.Decimal
	FirstPeriodValue decimal.Decimal
}

// Configure validates d and computes the values stored with a new challenge.
//
// The increment is dropped for challenge types that do not use it.
func Configure(d Definition) (Plan, error) {
	if err := d.Validate(); err != nil {
		return Plan{}, err
	}

	if d.Type != DailyIncrement {
		d.IncrementValue = decimal.Zero
	}

	return Plan{
		Definition:       d,
		ExpectedTotal:    d.ExpectedTotal(),
		FirstPeriodValue: d.InitialValue,
	}, nil
}

// State is the progress of a challenge.
type State struct {
	Definition
	ElapsedDays int
	Active      bool
}

// Step is the result of completing one period.
type Step struct {
	ElapsedDays int
	PeriodValue decimal.Decimal
	StillActive bool
}

// Advance completes one period of the challenge.
//
// Weekly challenges are clamped to their duration on the last week so that
// the elapsed days never exceed the duration.
func Advance(s State) (Step, error) {
	if s.ElapsedDays >= s.DurationDays {
		return Step{}, ErrChallengeAtMaxDuration
	}

	if !s.Active {
		return Step{}, ErrChallengeNotActive
	}

	if !s.Type.Valid() {
		return Step{}, ErrChallengeTypeUnknown
	}

	elapsed := min(s.ElapsedDays+s.Type.step(), s.DurationDays)

	return Step{
		ElapsedDays: elapsed,
		PeriodValue: s.PeriodValue(elapsed),
		StillActive: elapsed < s.DurationDays,
	}, nil
}
