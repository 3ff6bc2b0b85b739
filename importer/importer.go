package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/souqapp/souq-api/models"
)

var requiredColumns = []string{"title", "description", "price", "location"}

// ErrNoHeader means the file was empty: no header row to match columns against.
var ErrNoHeader = errors.New("CSV has no header row")

// MissingColumnsError lists required columns absent from the header, sorted.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "CSV missing required columns: " + strings.Join(e.Columns, ", ")
}

type Result struct {
	Created int
	Skipped int
}

// Import reads the CSV at path and inserts one product per valid row.
// Rows with an unrecognized location or an unparseable price are reported on
// warn and skipped; the rest of the file is still processed. Inserts are
// independent per row, so a failure partway through keeps earlier inserts.
func Import(db *gorm.DB, path string, warn io.Writer) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{}, fmt.Errorf("file not found: %s", path)
		}
		return Result{}, err
	}
	defer f.Close()

	return ImportFrom(db, f, warn)
}

// ImportFrom runs the import pipeline over an already-open CSV stream.
func ImportFrom(db *gorm.DB, r io.Reader, warn io.Writer) (Result, error) {
	reader := csv.NewReader(skipBOM(r))
	reader.FieldsPerRecord = -1 // short rows are read as empty cells

	header, err := reader.Read()
	if err == io.EOF {
		return Result{}, ErrNoHeader
	}
	if err != nil {
		return Result{}, err
	}

	columns, err := matchColumns(header)
	if err != nil {
		return Result{}, err
	}

	var res Result
	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return res, err
		}

		cell := func(name string) string {
			if idx := columns[name]; idx < len(record) {
				return record[idx]
			}
			return ""
		}

		title := strings.TrimSpace(cell("title"))
		description := strings.TrimSpace(cell("description"))
		rawPrice := strings.TrimSpace(cell("price"))
		rawLocation := cell("location")

		location := models.NormalizeLocation(rawLocation)
		if location == "" {
			fmt.Fprintf(warn, "Row %d: invalid location '%s', skipping\n", rowNum, rawLocation)
			res.Skipped++
			continue
		}

		price, err := decimal.NewFromString(rawPrice)
		if err != nil || price.IsNegative() {
			fmt.Fprintf(warn, "Row %d: invalid price '%s', skipping\n", rowNum, rawPrice)
			res.Skipped++
			continue
		}

		product := models.Product{
			Title:       title,
			Description: description,
			Price:       price,
			Location:    location,
		}
		if err := db.Create(&product).Error; err != nil {
			return res, fmt.Errorf("row %d: %w", rowNum, err)
		}
		res.Created++
	}

	return res, nil
}

// matchColumns maps each required logical column to its index in the header,
// matching case-insensitively. Extra columns are ignored.
func matchColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(requiredColumns))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingColumnsError{Columns: missing}
	}
	return columns, nil
}

// skipBOM drops a leading UTF-8 byte-order mark if the file carries one.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if lead, err := br.Peek(3); err == nil && bytes.Equal(lead, []byte{0xEF, 0xBB, 0xBF}) {
		br.Discard(3)
	}
	return br
}
