// Package spreadsheet writes transaction lists as XLSX workbooks and CSV files.
package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Syabadriel/financeTrack/internal/models"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Sheet is the name of the worksheet holding the transactions.
const Sheet = "Transaksi"

// Header is the first row of every export.
var Header = []string{"Tanggal", "Jenis", "Kategori", "Deskripsi", "Pembayaran", "Jumlah"}

var widths = []float64{12, 10, 15, 30, 18, 14}

// payment describes the account a transaction moved money on.
func payment(t models.Transaction) string {
	if t.Type == models.TypeTransfer {
		return fmt.Sprintf("%s → %s", t.From, t.To)
	}
	return string(t.Payment)
}

func cells(t models.Transaction) []string {
	return []string{
		t.Date.String(),
		string(t.Type),
		t.Category,
		t.Description,
		payment(t),
		t.Amount.String(),
	}
}

// amountCell returns the amount as a number when a spreadsheet number
// holds it exactly, and as its decimal text otherwise.
func amountCell(amount decimal.Decimal) any {
	f, exact := amount.Float64()
	if !exact {
		return amount.String()
	}
	return f
}

// WriteXLSX writes the transactions as a workbook with a single sheet.
// Amounts are numeric cells so they can be summed in the spreadsheet,
// unless that would change their value.
func WriteXLSX(w io.Writer, transactions []models.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", Sheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(Sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range transactions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		c := cells(t)
		row := []any{c[0], c[1], c[2], c[3], c[4], amountCell(t.Amount)}
		if err := f.SetSheetRow(Sheet, cell, &row); err != nil {
			return fmt.Errorf("writing transaction %d: %w", t.ID, err)
		}
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(Sheet, col, col, width); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// WriteCSV writes the transactions as comma separated values with a header row.
func WriteCSV(w io.Writer, transactions []models.Transaction) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return err
	}

	for _, t := range transactions {
		if err := writer.Write(cells(t)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
