package progression

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type AchievementType string

const (
	ValueReached       AchievementType = "ValueReached"
	PercentOfGoal      AchievementType = "PercentOfGoal"
	ChallengeStarted   AchievementType = "ChallengeStarted"
	ChallengeCompleted AchievementType = "ChallengeCompleted"
	FirstDeposit       AchievementType = "FirstDeposit"
)

var (
	// ValueThresholds are the saved amounts that unlock a ValueReached achievement.
	ValueThresholds = []decimal.Decimal{
		decimal.NewFromInt(100),
		decimal.NewFromInt(500),
		decimal.NewFromInt(1000),
		decimal.NewFromInt(5000),
		decimal.NewFromInt(10000),
	}

	// PercentThresholds are the progress percentages that unlock a PercentOfGoal achievement.
	PercentThresholds = []decimal.Decimal{
		decimal.NewFromInt(25),
		decimal.NewFromInt(50),
		decimal.NewFromInt(75),
		decimal.NewFromInt(100),
	}
)

// Milestone identifies an achievement within a goal. Key holds the threshold
// for ValueReached and PercentOfGoal and the challenge ID for ChallengeStarted
// and ChallengeCompleted.
type Milestone struct {
	Type AchievementType
	Key  string
}

// ThresholdMilestone returns the milestone for a threshold table entry.
func ThresholdMilestone(t AchievementType, threshold decimal.Decimal) Milestone {
	return Milestone{Type: t, Key: threshold.String()}
}

// Unlock is an achievement that has been earned and needs to be recorded.
type Unlock struct {
	Milestone
	Description string
	Icon        string
}

// Evaluator renders and evaluates achievements. Amounts in descriptions
// are formatted for the configured currency and language.
type Evaluator struct {
	unit    currency.Unit
	printer *message.Printer
}

func NewEvaluator(unit currency.Unit, lang language.Tag) Evaluator {
	return Evaluator{
		unit:    unit,
		printer: message.NewPrinter(lang),
	}
}

// DefaultEvaluator formats amounts in Brazilian Real.
var DefaultEvaluator = NewEvaluator(currency.BRL, language.BrazilianPortuguese)

func (e Evaluator) money(v decimal.Decimal) string {
	return e.printer.Sprint(currency.Symbol(e.unit.Amount(v.InexactFloat64())))
}

// Evaluate returns the threshold achievements earned by a goal with the given
// saved amount and progress that are not in existing yet.
//
// Value thresholds come first, then percent thresholds, each in ascending order.
func (e Evaluator) Evaluate(current, progress decimal.Decimal, existing []Milestone) []Unlock {
	have := make(map[Milestone]bool, len(existing))
	for _, m := range existing {
		have[m] = true
	}

	var unlocks []Unlock
	for _, threshold := range ValueThresholds {
		m := ThresholdMilestone(ValueReached, threshold)
		if current.LessThan(threshold) || have[m] {
			continue
		}

		unlocks = append(unlocks, Unlock{
			Milestone:   m,
			Description: fmt.Sprintf("You saved %s!", e.money(threshold)),
			Icon:        "💰",
		})
	}

	for _, threshold := range PercentThresholds {
		m := ThresholdMilestone(PercentOfGoal, threshold)
		if progress.LessThan(threshold) || have[m] {
			continue
		}

		icon := "🎯"
		if threshold.Equal(decimal.NewFromInt(100)) {
			icon = "🎉"
		}

		unlocks = append(unlocks, Unlock{
			Milestone:   m,
			Description: fmt.Sprintf("You reached %s%% of your goal!", threshold),
			Icon:        icon,
		})
	}

	return unlocks
}

// FirstDepositUnlock is the achievement for the first deposit into a goal.
func (e Evaluator) FirstDepositUnlock() Unlock {
	return Unlock{
		Milestone:   Milestone{Type: FirstDeposit, Key: "first"},
		Description: "You made the first deposit into this piggy bank!",
		Icon:        "🏆",
	}
}

// ChallengeStartedUnlock is the achievement for starting the challenge with the given ID.
func (e Evaluator) ChallengeStartedUnlock(challengeID string, t ChallengeType, expected decimal.Decimal) Unlock {
	return Unlock{
		Milestone:   Milestone{Type: ChallengeStarted, Key: challengeID},
		Description: fmt.Sprintf("You started a %s challenge to save %s!", t, e.money(expected)),
		Icon:        "🚀",
	}
}

// ChallengeCompletedUnlock is the achievement for completing the challenge with the given ID.
func (e Evaluator) ChallengeCompletedUnlock(challengeID string, t ChallengeType, total decimal.Decimal) Unlock {
	return Unlock{
		Milestone:   Milestone{Type: ChallengeCompleted, Key: challengeID},
		Description: fmt.Sprintf("You completed the %s challenge and saved %s!", t, e.money(total)),
		Icon:        "🏆",
	}
}
