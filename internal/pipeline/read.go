package pipeline

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// Format is the container a raw buffer is parsed as.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FormatFromName infers the format from a file name: ".csv" is CSV, anything
// else is treated as a spreadsheet.
func FormatFromName(name string) Format {
	if strings.EqualFold(filepath.Ext(strings.TrimSpace(name)), ".csv") {
		return FormatCSV
	}
	return FormatXLSX
}

var (
	utf8BOM          = []byte{0xEF, 0xBB, 0xBF}
	exponentIntegral = regexp.MustCompile(`^\d(\.\d+)?[eE]\+?\d+$`)
)

// ReadRecords parses data into an untyped grid with no header assumption.
// limit > 0 stops after that many rows.
func ReadRecords(data []byte, format Format, limit int) ([][]string, error) {
	switch format {
	case FormatCSV:
		return readCSV(data, limit)
	default:
		return readXLSX(data, limit)
	}
}

// readCSV decodes the buffer as ISO-8859-1, which accepts every byte, so
// only structural CSV problems can fail.
func readCSV(data []byte, limit int) ([][]string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	r := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(bytes.NewReader(data)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	out := [][]string{}
	for limit <= 0 || len(out) < limit {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, parseError(FormatCSV, err)
		}
		out = append(out, record)
	}
	return out, nil
}

// readXLSX reads the first worksheet with raw (unformatted) cell values so
// long numeric codes are not rendered through a display format.
func readXLSX(data []byte, limit int) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, parseError(FormatXLSX, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, parseError(FormatXLSX, errors.New("workbook has no sheets"))
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, parseError(FormatXLSX, err)
	}
	defer rows.Close()

	out := [][]string{}
	for rows.Next() {
		if limit > 0 && len(out) >= limit {
			break
		}
		cols, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, parseError(FormatXLSX, err)
		}
		for i := range cols {
			cols[i] = expandExponent(cols[i])
		}
		out = append(out, cols)
	}
	if err := rows.Error(); err != nil {
		return nil, parseError(FormatXLSX, err)
	}
	return out, nil
}

// expandExponent rewrites integral values stored in scientific notation
// ("9.780134685991E+12") back to their digits.
func expandExponent(v string) string {
	if !exponentIntegral.MatchString(v) {
		return v
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f != float64(int64(f)) || f >= 1e18 {
		return v
	}
	return strconv.FormatInt(int64(f), 10)
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
