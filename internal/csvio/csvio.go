// Package csvio loads and stores 2D arrays as delimited text.
//
// The format has a header record "rows,cols" followed by rows*cols values in
// row-major order. Values may be separated by commas, whitespace or both, and
// may span any number of lines.
//
//	2,3
//	1,2,3
//	4,5,6
package csvio

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/ndarray/internal/array"
)

// ErrMalformed reports input that does not follow the format.
var ErrMalformed = errors.New("malformed csv")

// ParseError locates a malformed record.
type ParseError struct {
	Line   int    // 1-based line number, 0 when the input ended early
	Token  string // Offending token, if any
	Reason string // What was wrong
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch {
	case e.Line == 0:
		return fmt.Sprintf("%v: %s", ErrMalformed, e.Reason)
	case e.Token != "":
		return fmt.Sprintf("%v: line %d: %q: %s", ErrMalformed, e.Line, e.Token, e.Reason)
	default:
		return fmt.Sprintf("%v: line %d: %s", ErrMalformed, e.Line, e.Reason)
	}
}

// Unwrap makes errors.Is(err, ErrMalformed) hold.
func (e *ParseError) Unwrap() error {
	return ErrMalformed
}

// Reader decodes arrays. The zero value is not usable; call NewReader.
type Reader struct {
	logger *slog.Logger
}

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Reader) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewReader creates a Reader. Without WithLogger it logs nowhere.
func NewReader(opts ...Option) *Reader {
	r := &Reader{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read decodes one array of the given numeric dtype from in.
func (r *Reader) Read(in io.Reader, dtype array.DType) (*array.Array, error) {
	switch dtype {
	case array.Float64, array.Float32, array.Uint64:
	default:
		return nil, array.Errorf("csv read", array.ErrUnsupportedDType, "%s", dtype)
	}

	tok := newTokenizer(in)

	rowsTok, rowsLine, err := tok.header()
	if err != nil {
		return nil, err
	}
	colsTok, colsLine, err := tok.header()
	if err != nil {
		return nil, err
	}
	rows, err := parseExtent(rowsTok, rowsLine)
	if err != nil {
		return nil, err
	}
	cols, err := parseExtent(colsTok, colsLine)
	if err != nil {
		return nil, err
	}

	shape := array.Shape{rows, cols}
	n, err := shape.NumElements()
	if err != nil {
		return nil, err
	}
	if n > array.MaxBytes/dtype.Size() {
		return nil, array.Errorf("csv read", array.ErrAllocation, "header %v needs %d values", shape, n)
	}
	r.logger.Debug("csv header", "rows", rows, "cols", cols, "dtype", dtype.String())

	// Values are collected before the array is built, so memory follows
	// the input size rather than the header.
	var a *array.Array
	switch dtype {
	case array.Float64:
		a, err = readValues(tok, shape, n, parseFloat64)
	case array.Float32:
		a, err = readValues(tok, shape, n, parseFloat32)
	case array.Uint64:
		a, err = readValues(tok, shape, n, parseUint64)
	}
	if err != nil {
		return nil, err
	}

	r.logger.Debug("csv decoded", "values", n, "lines", tok.line)
	return a, nil
}

// ReadFile opens path and decodes it with Read.
func (r *Reader) ReadFile(path string, dtype array.DType) (*array.Array, error) {
	//nolint:gosec // G304: reading a user-chosen data file is the purpose
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	a, err := r.Read(f, dtype)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r.logger.LogAttrs(context.Background(), slog.LevelDebug, "csv loaded",
		slog.String("path", path), slog.String("shape", a.Shape().String()))
	return a, nil
}

// Read decodes with a default Reader.
func Read(in io.Reader, dtype array.DType) (*array.Array, error) {
	return NewReader().Read(in, dtype)
}

// ReadFile decodes path with a default Reader.
func ReadFile(path string, dtype array.DType) (*array.Array, error) {
	return NewReader().ReadFile(path, dtype)
}

// Write encodes a rank-2 numeric array: the header, then one line per row.
func Write(w io.Writer, a *array.Array) error {
	if a.NDim() != 2 {
		return array.Errorf("csv write", array.ErrRank, "only 2D arrays supported, got %dD", a.NDim())
	}
	rows, cols := a.Dim(0), a.Dim(1)

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	buf = strconv.AppendInt(buf, int64(rows), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(cols), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}

	for i := 0; i < rows; i++ {
		buf = buf[:0]
		for j := 0; j < cols; j++ {
			if j > 0 {
				buf = append(buf, ',')
			}
			var err error
			buf, err = appendValue(buf, a, i*cols+j)
			if err != nil {
				return err
			}
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile creates path and encodes a into it.
func WriteFile(path string, a *array.Array) (err error) {
	//nolint:gosec // G304: writing a user-chosen data file is the purpose
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(f, a)
}

func parseExtent(s string, line int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, &ParseError{Line: line, Token: s, Reason: "extent must be a positive integer"}
	}
	return v, nil
}

// initialValues bounds the up-front capacity taken on trust from a header.
const initialValues = 1 << 16

// readValues parses exactly n values, rejects trailing data and builds the array.
func readValues[T float64 | float32 | uint64](tok *tokenizer, shape array.Shape, n int, parse func(string) (T, error)) (*array.Array, error) {
	values := make([]T, 0, min(n, initialValues))
	for len(values) < n {
		s, line, err := tok.next()
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Reason: fmt.Sprintf("expected %d values, got %d", n, len(values))}
		}
		if err != nil {
			return nil, err
		}
		v, err := parse(s)
		if err != nil {
			return nil, &ParseError{Line: line, Token: s, Reason: unwrapNum(err).Error()}
		}
		values = append(values, v)
	}

	if s, line, err := tok.next(); err == nil {
		return nil, &ParseError{Line: line, Token: s, Reason: fmt.Sprintf("trailing data after %d values", n)}
	} else if !errors.Is(err, io.EOF) {
		return nil, err
	}
	return array.FromSlice(values, shape)
}

func parseFloat64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseFloat32(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	return float32(v), err
}

func parseUint64(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

func unwrapNum(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}

func appendValue(buf []byte, a *array.Array, i int) ([]byte, error) {
	switch a.DType() {
	case array.Float64:
		return strconv.AppendFloat(buf, a.AsFloat64()[i], 'g', -1, 64), nil
	case array.Float32:
		return strconv.AppendFloat(buf, float64(a.AsFloat32()[i]), 'g', -1, 32), nil
	case array.Uint64:
		return strconv.AppendUint(buf, a.AsUint64()[i], 10), nil
	default:
		return nil, array.Errorf("csv write", array.ErrUnsupportedDType, "%s", a.DType())
	}
}

// tokenizer yields comma/whitespace separated fields with their line numbers.
type tokenizer struct {
	sc      *bufio.Scanner
	pending []string
	line    int
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &tokenizer{sc: sc}
}

func (t *tokenizer) next() (string, int, error) {
	for len(t.pending) == 0 {
		if !t.sc.Scan() {
			if err := t.sc.Err(); err != nil {
				return "", t.line, err
			}
			return "", t.line, io.EOF
		}
		t.line++
		t.pending = strings.FieldsFunc(t.sc.Text(), isSeparator)
	}
	s := t.pending[0]
	t.pending = t.pending[1:]
	return s, t.line, nil
}

// header is next with a missing header reported as malformed input.
func (t *tokenizer) header() (string, int, error) {
	s, line, err := t.next()
	if errors.Is(err, io.EOF) {
		return "", 0, &ParseError{Reason: "missing rows,cols header"}
	}
	return s, line, err
}

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '\r'
}
