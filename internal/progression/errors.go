package progression

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps one of them.
var (
	ErrValidation = errors.New("the request is not valid")
	ErrDomain     = errors.New("the operation is not permitted")
)

var (
	ErrChallengeTypeUnknown      = fmt.Errorf("%w: the challenge type must be one of FixedDaily, FixedWeekly, DailyIncrement", ErrValidation)
	ErrInitialValueNotPositive   = fmt.Errorf("%w: the initial value of a challenge must be larger than zero", ErrValidation)
	ErrIncrementValueNotPositive = fmt.Errorf("%w: the increment value of a DailyIncrement challenge must be larger than zero", ErrValidation)
	ErrDurationNotPositive       = fmt.Errorf("%w: the duration of a challenge must be at least one day", ErrValidation)
	ErrDurationTooLong           = fmt.Errorf("%w: the duration of a challenge must not exceed %d days", ErrValidation, MaxDurationDays)
)

var (
	ErrChallengeNotActive     = fmt.Errorf("%w: challenge not active", ErrDomain)
	ErrChallengeAtMaxDuration = fmt.Errorf("%w: challenge already at max duration", ErrDomain)
	ErrGoalAlreadyMet         = fmt.Errorf("%w: goal already met, only challenge deposits are accepted", ErrDomain)
)
