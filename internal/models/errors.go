package models

import (
	"errors"
	"fmt"

	"github.com/poupix/backend/internal/progression"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrUserEmailNotUnique   = errors.New("this email address is already registered")
	ErrUserEmailInvalid     = errors.New("the email address is not valid")
	ErrAchievementNotUnique = fmt.Errorf("%w: the achievement has already been unlocked", progression.ErrDomain)
)

var (
	ErrGoalNameEmpty         = errors.New("the goal name must not be empty")
	ErrGoalTargetNegative    = errors.New("the target amount of a goal must not be negative")
	ErrGoalAmountNegative    = errors.New("the current amount of a goal must not be negative")
	ErrGoalCategoryUnknown   = errors.New("the goal category is not valid")
	ErrNoActiveChallenge     = fmt.Errorf("%w: the goal has no active challenge", progression.ErrDomain)
	ErrChallengeAlreadyExist = fmt.Errorf("%w: the goal already has an active challenge", progression.ErrDomain)
	ErrChallengeElapsed      = errors.New("the elapsed days of a challenge must be between 0 and its duration")
)

var (
	ErrDepositAmountNotPositive = errors.New("the deposit amount must be positive")
	ErrDepositMethodUnknown     = errors.New("the deposit method is not valid")
	ErrSuggestionAlreadyApplied = fmt.Errorf("%w: the suggestion has already been applied", progression.ErrDomain)
	ErrSuggestionAmount         = errors.New("the suggested amount must be positive")
	ErrSuggestionKindUnknown    = errors.New("the suggestion kind is not valid")
	ErrRulePercent              = errors.New("the percentage of a suggestion rule must be greater than 0 and at most 100")
	ErrRuleMatchEmpty           = errors.New("the match pattern of a suggestion rule must not be empty")
	ErrAcknowledgementKind      = errors.New("the notification kind is not valid")
	ErrAcknowledgementKeyEmpty  = errors.New("the notification key must not be empty")
)

var (
	ErrIncomeNotPositive          = errors.New("the monthly salary must be positive")
	ErrExpenseAmountNotPositive   = errors.New("the expense amount must be positive")
	ErrExpenseNameEmpty           = errors.New("the expense name must not be empty")
	ErrDebtAmountNotPositive      = errors.New("the total amount of a debt must be positive")
	ErrDebtInstallmentCount       = errors.New("the installment count of a debt must be positive")
	ErrDebtPaidInstallments       = errors.New("the paid installments must be between 0 and the installment count")
	ErrDebtCountBelowPaid         = errors.New("the installment count of a debt must not be lower than the number of its last paid installment")
	ErrInstallmentNotUpdatableDue = errors.New("only the paid state of an installment can be changed")
)
