package cashposition

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/cash_dashboard/internal/apperrors"
	"github.com/SscSPs/cash_dashboard/internal/core/domain"
)

// RequiredColumns must appear in the header; subAccountId is optional.
var RequiredColumns = []string{
	domain.ColumnReportDate,
	domain.ColumnCompanyID,
	domain.ColumnAccountTypeID,
	domain.ColumnAmount,
}

const utf8BOM = "\ufeff"

// ReadRows parses CSV text with a header row into raw rows. Structural
// problems (unreadable CSV, missing header columns) abort the whole read and
// wrap apperrors.ErrMalformedCSV. Rows with fewer or more fields than the
// header are kept; absent fields read as empty. Blank lines are skipped.
func ReadRows(r io.Reader) ([]domain.RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: CSV file has no header row", apperrors.ErrMalformedCSV)
	}
	if err != nil {
		return nil, csvReadError(err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range RequiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q", apperrors.ErrMalformedCSV, required)
		}
	}

	field := func(record []string, name string) string {
		if i, ok := columns[name]; ok && i < len(record) {
			return record[i]
		}
		return ""
	}

	rows := []domain.RawRow{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvReadError(err)
		}

		line, _ := reader.FieldPos(0)
		rows = append(rows, domain.RawRow{
			Line:          line,
			ReportDate:    field(record, domain.ColumnReportDate),
			CompanyID:     field(record, domain.ColumnCompanyID),
			AccountTypeID: field(record, domain.ColumnAccountTypeID),
			SubAccountID:  field(record, domain.ColumnSubAccountID),
			Amount:        field(record, domain.ColumnAmount),
		})
	}

	return rows, nil
}

func csvReadError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Errorf("%w: CSV Parse Error: %s on line %d", apperrors.ErrMalformedCSV, parseErr.Err, parseErr.Line)
	}
	return fmt.Errorf("%w: error reading CSV file: %s", apperrors.ErrMalformedCSV, err)
}

// Check validates every row and normalizes the clean ones. Problems are
// collected, never returned as an error; invalidRows counts rows with at
// least one problem.
func Check(rows []domain.RawRow) (valid []domain.CashPosition, problems []string, invalidRows int) {
	valid = []domain.CashPosition{}
	problems = []string{}
	for _, row := range rows {
		validated, errs := Validate(row)
		if len(errs) > 0 {
			problems = append(problems, errs...)
			invalidRows++
			continue
		}
		rec, err := Normalize(validated)
		if err != nil {
			problems = append(problems, fmt.Sprintf("Row %d: %s", row.Line, err))
			invalidRows++
			continue
		}
		valid = append(valid, rec)
	}
	return valid, problems, invalidRows
}

// Template is the downloadable example upload.
const Template = `reportDate,companyId,accountTypeId,subAccountId,amount
2026-02-13,speccon,bank-account,,1500000
2026-02-13,speccon,current-assets,accounts-receivable,500000
2026-02-13,speccon,current-assets,client-loans,250000
2026-02-13,speccon,current-liabilities,,300000
2026-02-13,megro,bank-account,,1200000
2026-02-13,megro,current-assets,accounts-receivable,400000
2026-02-13,megro,current-assets,client-loans,200000
2026-02-13,megro,current-liabilities,,250000
`
