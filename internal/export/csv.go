// Package export serializes transaction lists into the CSV document served
// by the download endpoint. Fields are escaped per RFC 4180 and the document
// is prefixed with a UTF-8 BOM so spreadsheet applications detect the
// encoding and render the Vietnamese headers correctly.
package export

import (
	"strings"
	"time"

	"github.com/minhvu/soquy/soquy-backend/internal/domain"
	"github.com/minhvu/soquy/soquy-backend/internal/vnlocale"
)

// BOM is the byte-order-mark prefixed to every generated document.
const BOM = "\uFEFF"

// TypeLabel returns the Vietnamese display label for a transaction type.
func TypeLabel(t domain.TransactionType) string {
	if t == domain.TransactionTypeIncome {
		return "Thu nhập"
	}
	return "Chi tiêu"
}

var headers = []string{"Ngày", "Loại", "Danh mục", "Số tiền (₫)", "Mô tả"}

// EscapeField escapes a single CSV field per RFC 4180: values containing a
// comma, double quote, carriage return or line feed are wrapped in double
// quotes with internal quotes doubled; anything else passes through.
func EscapeField(value string) string {
	if strings.ContainsAny(value, ",\"\r\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

// GenerateCSV renders transactions as a CSV document shaped as
// BOM + header + "\n" + rows joined with "\n". An empty input therefore
// still yields the header line followed by a single newline, which is what
// spreadsheet applications expect of an empty export.
func GenerateCSV(transactions []*domain.TransactionWithCategory) string {
	rows := make([]string, len(transactions))
	for i, tx := range transactions {
		description := ""
		if tx.Description != nil {
			description = *tx.Description
		}

		rows[i] = joinRow([]string{
			vnlocale.FormatDate(tx.Date),
			TypeLabel(tx.Type),
			tx.CategoryName,
			vnlocale.FormatAmount(tx.Amount),
			description,
		})
	}

	return BOM + joinRow(headers) + "\n" + strings.Join(rows, "\n")
}

func joinRow(fields []string) string {
	escaped := make([]string, len(fields))
	for i, field := range fields {
		escaped[i] = EscapeField(field)
	}
	return strings.Join(escaped, ",")
}

// GenerateFilename builds the download filename from the current clock,
// e.g. "transactions_2025-12-18_1430.csv".
func GenerateFilename(prefix string) string {
	return prefix + "_" + time.Now().Format("2006-01-02_1504") + ".csv"
}
