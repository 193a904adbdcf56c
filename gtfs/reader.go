package gtfs

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	stopTimeColumns = 5
	stopColumns     = 5
)

// csvReaderCloser is a csv.Reader that owns its source
type csvReaderCloser struct {
	name string
	src  io.Closer
	cr   *csv.Reader
}

func newCsvReaderCloser(rc io.ReadCloser, name string) *csvReaderCloser {
	cr := csv.NewReader(rc)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return &csvReaderCloser{name: name, src: rc, cr: cr}
}

// Name is the file the reader reads, for error messages
func (r *csvReaderCloser) Name() string { return r.name }

// Close is safe to call more than once
func (r *csvReaderCloser) Close() error {
	src := r.src
	r.src = nil
	if src == nil {
		return nil
	}
	return src.Close()
}

func (r *csvReaderCloser) read() ([]string, error) {
	if r.src == nil {
		return nil, io.EOF
	}
	rec, err := r.cr.Read()
	if err == io.EOF {
		return nil, err
	}
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, &ParseError{File: r.name, Line: pe.Line, Err: pe.Err}
		}
		return nil, fmt.Errorf("read %s: %w", r.name, err)
	}
	return rec, nil
}

func (r *csvReaderCloser) line() int {
	line, _ := r.cr.FieldPos(0)
	return line
}

// StopTimeReader yields stop_times.txt rows in file order
type StopTimeReader struct {
	*csvReaderCloser
}

// Next returns the next row, or io.EOF after the last one
func (r *StopTimeReader) Next() (StopTime, error) {
	rec, err := r.read()
	if err != nil {
		return StopTime{}, err
	}
	line := r.line()
	if len(rec) < stopTimeColumns {
		return StopTime{}, &ParseError{File: r.name, Line: line,
			Err: fmt.Errorf("want at least %d columns, got %d", stopTimeColumns, len(rec))}
	}
	seq, err := strconv.Atoi(strings.TrimSpace(rec[4]))
	if err != nil {
		return StopTime{}, &ParseError{File: r.name, Line: line,
			Err: fmt.Errorf("stop_sequence %q is not an integer", rec[4])}
	}
	return StopTime{
		Arrival:   rec[1],
		Departure: rec[2],
		StopID:    rec[3],
		Sequence:  seq,
		Line:      line,
	}, nil
}

// StopReader yields stops.txt rows in file order, header included
type StopReader struct {
	*csvReaderCloser
}

// Next returns the next row, or io.EOF after the last one
func (r *StopReader) Next() (StopRow, error) {
	rec, err := r.read()
	if err != nil {
		return StopRow{}, err
	}
	row := StopRow{ID: rec[0], Columns: len(rec), Line: r.line()}
	if len(rec) >= stopColumns {
		row.Name = rec[1]
		row.Lat = strings.TrimSpace(rec[3])
		row.Long = strings.TrimSpace(rec[4])
	}
	return row, nil
}
