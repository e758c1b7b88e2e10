// Package statement renders the deposit history of a goal as CSV or XLSX.
package statement

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/poupix/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var ErrFormatUnknown = errors.New("the statement format must be one of csv, xlsx")

// ParseFormat parses the format of a statement. The empty string is CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", ErrFormatUnknown
}

// ContentType is the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Filename is the name of the statement file of a goal.
func (f Format) Filename(goal string, date time.Time) string {
	name := strings.Map(func(r rune) rune {
		if r == '"' || r == '/' || r == '\\' {
			return '_'
		}
		return r
	}, goal)

	return fmt.Sprintf("%s_%s.%s", name, date.Format("20060102"), f)
}

// Row is one deposit of a statement with the goal's balance after it.
type Row struct {
	Date    time.Time
	Amount  decimal.Decimal
	Method  models.DepositMethod
	Note    string
	Balance decimal.Decimal
}

var header = []string{"Date", "Amount", "Method", "Note", "Balance"}

// FromDeposits sorts the deposits by date and computes the running balance.
func FromDeposits(deposits []models.Deposit) []Row {
	sorted := make([]models.Deposit, len(deposits))
	copy(sorted, deposits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	rows := make([]Row, 0, len(sorted))
	balance := decimal.Zero
	for _, d := range sorted {
		balance = balance.Add(d.Amount)
		rows = append(rows, Row{
			Date:    d.Date,
			Amount:  d.Amount,
			Method:  d.Method,
			Note:    d.Note,
			Balance: balance,
		})
	}

	return rows
}

// Write renders the rows in the format.
func Write(w io.Writer, f Format, sheet string, rows []Row) error {
	if f == FormatXLSX {
		return WriteXLSX(w, sheet, rows)
	}
	return WriteCSV(w, rows)
}

// WriteCSV writes the rows as CSV. The output starts with a UTF-8 BOM
// so that spreadsheet applications detect the encoding.
func WriteCSV(w io.Writer, rows []Row) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		err := writer.Write([]string{
			r.Date.Format(time.DateOnly),
			r.Amount.StringFixed(2),
			string(r.Method),
			r.Note,
			r.Balance.StringFixed(2),
		})
		if err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// sheetName replaces the characters not allowed in sheet names.
// Sheet names are limited to 31 characters.
func sheetName(name string) string {
	name = strings.Trim(strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, name), "' ")

	if len([]rune(name)) > 31 {
		name = string([]rune(name)[:31])
	}

	if name == "" {
		return "Statement"
	}
	return name
}

// WriteXLSX writes the rows as a workbook with a single sheet.
func WriteXLSX(w io.Writer, sheet string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet = sheetName(sheet)

	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return err
		}
	}

	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	money, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return err
	}

	for i, r := range rows {
		row := i + 2
		values := []any{
			r.Date.Format(time.DateOnly),
			r.Amount.InexactFloat64(),
			string(r.Method),
			r.Note,
			r.Balance.InexactFloat64(),
		}

		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}

		if err := f.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), money); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("E%d", row), fmt.Sprintf("E%d", row), money); err != nil {
			return err
		}
	}

	for col, width := range map[string]float64{"A": 12, "B": 12, "C": 18, "D": 36, "E": 12} {
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}

	return f.Write(w)
}
