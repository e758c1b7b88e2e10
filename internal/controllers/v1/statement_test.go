package v1_test

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	v1 "github.com/poupix/backend/internal/controllers/v1"
	"github.com/poupix/backend/test"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func (suite *TestSuiteStandard) TestStatementCSV() {
	headers := createTestUser(suite.T())
	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{GoalEditable: v1.GoalEditable{Name: "Trip", TargetAmount: decimal.NewFromInt(1000)}})

	createTestDeposit(suite.T(), headers, v1.DepositEditable{GoalID: goal.Data.ID, Amount: decimal.NewFromInt(20), Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Note: "Second"})
	createTestDeposit(suite.T(), headers, v1.DepositEditable{GoalID: goal.Data.ID, Amount: decimal.NewFromInt(10), Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Note: "First"})

	r := test.Request(suite.T(), http.MethodOptions, goal.Data.Links.Statement, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Statement, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal("text/csv; charset=utf-8", r.Header().Get("Content-Type"))
	suite.Assert().Contains(r.Header().Get("Content-Disposition"), `attachment; filename="Trip_`)

	body := bytes.TrimPrefix(r.Body.Bytes(), []byte{0xEF, 0xBB, 0xBF})
	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	suite.Require().Nil(err)
	suite.Assert().Equal([][]string{
		{"Date", "Amount", "Method", "Note", "Balance"},
		{"2026-03-01", "10.00", "Manual", "First", "10.00"},
		{"2026-03-02", "20.00", "Manual", "Second", "30.00"},
	}, records)
}

func (suite *TestSuiteStandard) TestStatementXLSX() {
	headers := createTestUser(suite.T())
	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{GoalEditable: v1.GoalEditable{Name: "Car", TargetAmount: decimal.NewFromInt(1000)}})
	createTestDeposit(suite.T(), headers, v1.DepositEditable{GoalID: goal.Data.ID, Amount: decimal.NewFromInt(15)})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s/statement?format=xlsx", goal.Data.Links.Self), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", r.Header().Get("Content-Type"))
	suite.Assert().Contains(r.Header().Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(r.Body.Bytes()))
	suite.Require().Nil(err)
	defer f.Close()

	rows, err := f.GetRows("Car")
	suite.Require().Nil(err)
	suite.Require().Len(rows, 2)
	suite.Assert().Equal("Date", rows[0][0])
}

func (suite *TestSuiteStandard) TestStatementFails() {
	headers := createTestUser(suite.T())
	goal := createTestGoal(suite.T(), headers, v1.GoalCreate{})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s/statement?format=pdf", goal.Data.Links.Self), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Statement, "", createTestUser(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
