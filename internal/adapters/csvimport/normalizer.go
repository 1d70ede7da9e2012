// Package csvimport turns an uploaded guest list into normalized guest records.
//
// Columns are positional: name, email, relation, interest. The labels in the
// file's own header row are never consulted.
package csvimport

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"weddinginvites/internal/domain"
)

// Columns is the fixed positional layout of a guest CSV.
var Columns = [4]string{"name", "email", "relation", "interest"}

// localizedNameHeader is the header keyword for "name" used by the operators' spreadsheets.
const localizedNameHeader = "姓名"

const utf8BOM = "\ufeff"

// RawRow is one CSV record mapped onto Columns. Missing trailing cells are empty.
type RawRow struct {
	Name     string
	Email    string
	Relation string
	Interest string
}

// Reader yields RawRows from a CSV stream, one pass, in file order.
type Reader struct {
	csv   *csv.Reader
	index int
}

// NewReader returns a Reader over r. Rows may have any number of cells; extra
// cells are ignored and missing ones are read as empty.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	return &Reader{csv: cr}
}

// Read returns the next row and its zero-based index. It returns io.EOF when
// the stream is exhausted.
func (r *Reader) Read() (RawRow, int, error) {
	record, err := r.csv.Read()
	if err != nil {
		return RawRow{}, r.index, err
	}
	if r.index == 0 && len(record) > 0 {
		record[0] = strings.TrimPrefix(record[0], utf8BOM)
	}
	row := RawRow{
		Name:     cell(record, 0),
		Email:    cell(record, 1),
		Relation: cell(record, 2),
		Interest: cell(record, 3),
	}
	idx := r.index
	r.index++
	return row, idx, nil
}

func cell(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}

// IsHeader reports whether a row looks like a header: its name cell is
// "name" (case-insensitive) or contains the localized keyword.
func IsHeader(row RawRow) bool {
	name := strings.ToLower(strings.TrimSpace(row.Name))
	return name == Columns[0] || strings.Contains(name, localizedNameHeader)
}

// Normalize reads every row of r and returns the accepted guests in file
// order. Only row 0 is subject to header detection; a later row whose name
// reads "name" is kept as data. Rows without a trimmed name or email are
// dropped. Returns domain.ErrNoValidRows when nothing was accepted.
func Normalize(r io.Reader) ([]*domain.Guest, error) {
	reader := NewReader(r)
	var guests []*domain.Guest
	for {
		row, idx, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read csv row %d: %v", domain.ErrInvalidInput, idx, err)
		}
		if idx == 0 && IsHeader(row) {
			continue
		}
		guest := domain.NewGuest(row.Name, row.Email, row.Relation, row.Interest)
		if !guest.Valid() {
			continue
		}
		guests = append(guests, guest)
	}
	if len(guests) == 0 {
		return nil, domain.ErrNoValidRows
	}
	return guests, nil
}
