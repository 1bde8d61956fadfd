package seed

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/go-faster/errors"
)

// Record is one CSV data row keyed by header name. Missing trailing columns
// simply have no key; callers read fields through Get and receive "" for
// anything absent.
type Record struct {
	Line   int
	fields map[string]string
}

func (r Record) Get(name string) string {
	return r.fields[name]
}

func (r Record) Has(name string) bool {
	_, ok := r.fields[name]
	return ok
}

// ReadRecords loads every non-empty data row of the CSV at path. The first
// row is the header. A missing file fails fast, before any downstream
// processing, with an error wrapping fs.ErrNotExist.
func ReadRecords(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open csv %s", path)
	}
	defer func() { _ = f.Close() }()

	br := stripUTF8BOM(bufio.NewReader(f))
	r := csv.NewReader(br)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.Errorf("%s: missing header", path)
		}
		return nil, errors.Wrapf(err, "read header %s", path)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []Record
	line := 1
	for {
		line++
		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrapf(err, "%s: line %d", path, line)
		}
		if isEmptyRow(rec) {
			continue
		}
		fields := make(map[string]string, len(header))
		for i, name := range header {
			if i >= len(rec) {
				break
			}
			fields[name] = rec[i]
		}
		records = append(records, Record{Line: line, fields: fields})
	}
	return records, nil
}

func isEmptyRow(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func stripUTF8BOM(r *bufio.Reader) *bufio.Reader {
	b, err := r.Peek(3)
	if err == nil && len(b) == 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = r.Discard(3)
	}
	return r
}
