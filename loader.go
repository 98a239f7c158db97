package charvocab

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/lwch/logging"
	"github.com/xuri/excelize/v2"
)

var (
	ErrSheetNotFound  = errors.New("sheet not found")
	ErrColumnNotFound = errors.New("column not found")
)

// LoadNames reads the cells below the header named column in the given
// sheet. The header must match exactly. Rows shorter than the column yield
// an empty string so the result has one entry per data row.
func LoadNames(path, sheet, column string) ([]string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	logging.Info("loading %s (%s)", path, humanize.Bytes(uint64(fi.Size())))

	if !hasSheet(f.GetSheetList(), sheet) {
		return nil, fmt.Errorf("%w: %q in %s", ErrSheetNotFound, sheet, path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return pickColumn(rows, column)
}

func hasSheet(list []string, sheet string) bool {
	for _, name := range list {
		if name == sheet {
			return true
		}
	}
	return false
}

func pickColumn(rows [][]string, column string) ([]string, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %q, sheet is empty", ErrColumnNotFound, column)
	}
	idx := -1
	for i, name := range rows[0] {
		if name == column {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}
	ret := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if idx < len(row) {
			ret = append(ret, row[idx])
		} else {
			ret = append(ret, "")
		}
	}
	return ret, nil
}
