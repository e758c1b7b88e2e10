// Package advisor asks a generative model where a user could save money
// on their monthly expenses.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/poupix/backend/internal/config"
	"github.com/poupix/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

var (
	ErrNotConfigured = errors.New("the savings advisor is not configured on this server")
	ErrEmptyResponse = errors.New("the savings advisor did not return any suggestions")
	ErrUnparseable   = errors.New("the response of the savings advisor could not be parsed")
)

// maxExpenses limits the expenses sent in a single prompt.
const maxExpenses = 50

// Generator produces the text completion for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type gemini struct {
	client *genai.Client
	model  string
}

func (g gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	return text.String(), nil
}

// Advisor turns monthly expenses into saving proposals.
type Advisor struct {
	generator Generator
}

// New creates an advisor backed by Gemini. Without an API key, the
// advisor is created but every analysis fails with ErrNotConfigured.
func New(ctx context.Context, c config.Gemini) (*Advisor, error) {
	if c.APIKey == "" {
		return &Advisor{}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: c.APIKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("creating the Gemini client: %w", err)
	}

	return NewWithGenerator(gemini{client: client, model: c.Model}), nil
}

// NewWithGenerator creates an advisor using the generator.
func NewWithGenerator(g Generator) *Advisor {
	return &Advisor{generator: g}
}

// Configured reports if the advisor can analyze expenses.
func (a *Advisor) Configured() bool {
	return a != nil && a.generator != nil
}

// Proposal is a suggestion to save on an expense.
type Proposal struct {
	ExpenseID uuid.UUID
	Kind      models.SuggestionKind
	Message   string
	Amount    decimal.Decimal
}

type response struct {
	ExpenseID string          `json:"expense_id"`
	Kind      string          `json:"kind"`
	Message   string          `json:"message"`
	Amount    decimal.Decimal `json:"amount"`
}

type promptExpense struct {
	ExpenseID string          `json:"expense_id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

func prompt(expenses []models.Expense) (string, error) {
	var b strings.Builder
	b.WriteString("You are a personal finance coach helping someone fill their savings goals.\n")
	b.WriteString("Analyze these monthly expenses and propose where money could be saved.\n")
	b.WriteString("Return a RAW JSON ARRAY of objects. Do NOT use markdown formatting.\n")
	b.WriteString("Each object must have: 'expense_id', 'kind' (one of Delivery, Subscription, ImpulsePurchase, Leisure, Other), ")
	b.WriteString("'message' (one short sentence addressed to the user) and 'amount' (the amount that could be saved per month, at most the expense amount).\n")
	b.WriteString("Skip expenses that cannot be reduced.\n\n")

	for _, e := range expenses {
		line, err := json.Marshal(promptExpense{ExpenseID: e.ID.String(), Name: e.Name, Amount: e.Amount})
		if err != nil {
			return "", err
		}
		b.Write(line)
		b.WriteString("\n")
	}

	return b.String(), nil
}

// clean removes the markdown code fences models like to add around JSON.
func clean(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// Analyze proposes savings for the expenses. Proposals for unknown
// expenses or with amounts that are not positive or exceed the expense are dropped.
func (a *Advisor) Analyze(ctx context.Context, expenses []models.Expense) ([]Proposal, error) {
	if !a.Configured() {
		return nil, ErrNotConfigured
	}

	if len(expenses) == 0 {
		return []Proposal{}, nil
	}

	if len(expenses) > maxExpenses {
		expenses = expenses[:maxExpenses]
	}

	p, err := prompt(expenses)
	if err != nil {
		return nil, err
	}

	text, err := a.generator.Generate(ctx, p)
	if err != nil {
		return nil, err
	}

	var responses []response
	if err := json.Unmarshal([]byte(clean(text)), &responses); err != nil {
		log.Error().Err(err).Str("response", text).Msg("parsing advisor response")
		return nil, fmt.Errorf("%w: %w", ErrUnparseable, err)
	}

	byID := make(map[string]models.Expense, len(expenses))
	for _, e := range expenses {
		byID[e.ID.String()] = e
	}

	proposals := make([]Proposal, 0, len(responses))
	for _, r := range responses {
		// Amounts are stored with cents, anything rounding to zero is no saving
		amount := r.Amount.Round(2)

		expense, ok := byID[r.ExpenseID]
		if !ok || !amount.IsPositive() || amount.GreaterThan(expense.Amount) {
			log.Debug().Str("expense", r.ExpenseID).Str("amount", r.Amount.String()).Msg("dropping advisor proposal")
			continue
		}

		kind := models.SuggestionKind(r.Kind)
		if !kind.Valid() {
			kind = models.SuggestionOther
		}

		message := strings.TrimSpace(r.Message)
		if message == "" {
			message = fmt.Sprintf("You could save %s on %s", amount.StringFixed(2), expense.Name)
		}

		proposals = append(proposals, Proposal{
			ExpenseID: expense.ID,
			Kind:      kind,
			Message:   message,
			Amount:    amount,
		})
	}

	return proposals, nil
}
