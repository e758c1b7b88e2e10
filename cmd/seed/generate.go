package main

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/poupix/backend/internal/auth"
	"github.com/poupix/backend/internal/models"
	"github.com/poupix/backend/internal/progression"
	"github.com/poupix/backend/internal/types"
	"github.com/shopspring/decimal"
)

var categories = []models.GoalCategory{
	models.CategoryTravel,
	models.CategoryPurchase,
	models.CategoryEmergencyFund,
	models.CategoryInvestment,
	models.CategoryEducation,
}

var methods = []models.DepositMethod{
	models.MethodManual,
	models.MethodPix,
	models.MethodTransfer,
}

// generate creates n users with fake data and returns their email addresses.
func generate(f *gofakeit.Faker, n int) ([]string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	emails := make([]string, 0, n)
	for range n {
		user := models.User{
			Email:        f.Email(),
			PasswordHash: hash,
		}

		if err := models.DB.Create(&user).Error; err != nil {
			return nil, err
		}

		if err := generateSavings(f, user); err != nil {
			return nil, err
		}

		if err := generateFinances(f, user); err != nil {
			return nil, err
		}

		emails = append(emails, user.Email)
	}

	return emails, nil
}

func price(f *gofakeit.Faker, min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(f.Price(min, max)).Round(2)
}

// generateSavings creates goals with deposits and one challenge.
func generateSavings(f *gofakeit.Faker, user models.User) error {
	for i := range f.Number(2, 4) {
		goal := models.Goal{
			UserID:       user.ID,
			Name:         f.Sentence(2),
			Note:         f.Sentence(6),
			Category:     categories[f.Number(0, len(categories)-1)],
			TargetAmount: price(f, 500, 10000),
			StartDate:    time.Now().AddDate(0, -f.Number(1, 6), 0),
		}

		var definition *progression.Definition
		if i == 0 {
			goal.Category = models.CategorySavingsChallenge
			definition = &progression.Definition{
				Type:           progression.DailyIncrement,
				InitialValue:   decimal.NewFromInt(1),
				IncrementValue: decimal.NewFromInt(1),
				DurationDays:   30,
			}
		}

		if _, err := models.CreateGoal(&goal, definition); err != nil {
			return err
		}

		if definition != nil {
			for range f.Number(1, 10) {
				if _, err := models.CompleteChallengePeriod(user.ID, goal.ID); err != nil {
					return err
				}
			}
			continue
		}

		// At most 8 deposits of a tenth of the target keep the goal open
		limit := goal.TargetAmount.Div(decimal.NewFromInt(10)).InexactFloat64()
		for range f.Number(1, 8) {
			_, err := models.AddDeposit(user.ID, models.Deposit{
				GoalID: goal.ID,
				Amount: price(f, 10, limit),
				Date:   f.DateRange(goal.StartDate, time.Now()),
				Note:   f.Sentence(3),
				Method: methods[f.Number(0, len(methods)-1)],
			})
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// generateFinances creates an income, a suggestion rule, expenses and a debt.
func generateFinances(f *gofakeit.Faker, user models.User) error {
	income := models.Income{
		UserID:        user.ID,
		MonthlySalary: price(f, 2000, 12000),
	}
	if err := models.DB.Create(&income).Error; err != nil {
		return err
	}

	rule := models.SuggestionRule{
		UserID:  user.ID,
		Match:   "*streaming*",
		Kind:    models.SuggestionSubscription,
		Percent: decimal.NewFromInt(50),
	}
	if err := models.DB.Create(&rule).Error; err != nil {
		return err
	}

	names := []string{"Rent", "Groceries", "Streaming service", f.Company()}
	for _, name := range names {
		expense := models.Expense{
			UserID: user.ID,
			Name:   name,
			Amount: price(f, 20, 1500),
		}
		if _, err := models.CreateExpense(&expense); err != nil {
			return err
		}
	}

	debt := models.Debt{
		UserID:           user.ID,
		Name:             f.ProductName(),
		TotalAmount:      price(f, 300, 5000),
		InstallmentCount: f.Number(3, 12),
		FirstDueMonth:    types.MonthOf(time.Now()).AddDate(0, -1),
	}

	return models.CreateDebt(&debt)
}
