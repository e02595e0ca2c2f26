package container

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/goheamy/pkg/errors"
)

// ReadCSV reads a numeric table with a header row into a Frame. When the first
// header cell is empty or "index" the first column holds row labels; otherwise
// rows are labelled by position. Empty cells read as NaN.
func ReadCSV(r io.Reader) (*Frame, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.Wrap(errors.ErrEmptyData, "ReadCSV: missing header")
	}
	if err != nil {
		return nil, errors.Wrap(err, "ReadCSV: header")
	}

	labelled := header[0] == "" || strings.EqualFold(header[0], "index")
	columns := header
	if labelled {
		columns = header[1:]
	}

	var (
		index []string
		data  []float64
	)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "ReadCSV: line %d", line)
		}
		if labelled {
			index = append(index, record[0])
			record = record[1:]
		} else {
			index = append(index, strconv.Itoa(len(index)))
		}
		for j, cell := range record {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				data = append(data, math.NaN())
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "ReadCSV: line %d, column %q", line, columns[j])
			}
			data = append(data, v)
		}
	}
	return newFrame(index, append([]string(nil), columns...), len(columns), data)
}

// LoadCSV reads the CSV file at path with ReadCSV.
func LoadCSV(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "LoadCSV: open %s", path)
	}
	defer f.Close()
	return ReadCSV(f)
}
