package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/louisbranch/expogo/internal/core/expogo"
)

// ErrMalformedInput indicates input that does not follow the case format.
var ErrMalformedInput = errors.New("malformed input")

// CaseReader reads the case count followed by X Y pairs, all separated by
// any whitespace.
type CaseReader struct {
	scanner *bufio.Scanner
}

// NewCaseReader reads cases from r.
func NewCaseReader(r io.Reader) *CaseReader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &CaseReader{scanner: scanner}
}

// Count reads the leading case count.
func (c *CaseReader) Count() (int, error) {
	token, err := c.token("case count")
	if err != nil {
		return 0, err
	}
	count, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: case count %q is not an integer", ErrMalformedInput, token)
	}
	if count < 0 {
		return 0, fmt.Errorf("%w: case count %d is negative", ErrMalformedInput, count)
	}
	return count, nil
}

// Next reads one target.
func (c *CaseReader) Next() (expogo.Target, error) {
	x, err := c.integer("x")
	if err != nil {
		return expogo.Target{}, err
	}
	y, err := c.integer("y")
	if err != nil {
		return expogo.Target{}, err
	}
	return expogo.Target{X: x, Y: y}, nil
}

func (c *CaseReader) integer(name string) (int64, error) {
	token, err := c.token(name)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformedInput, name, token)
	}
	return value, nil
}

func (c *CaseReader) token(name string) (string, error) {
	if c.scanner.Scan() {
		return c.scanner.Text(), nil
	}
	if err := c.scanner.Err(); err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return "", fmt.Errorf("%w: missing %s", ErrMalformedInput, name)
}
