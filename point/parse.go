package point

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse decodes a single "x,y,z,t" record.
// Surrounding whitespace is trimmed from the record and from every field.
//
// Errors:
//   - ErrFieldCount if the record does not split into exactly four fields.
//   - ErrCoordinate (wrapping the strconv error) if a field is not an integer,
//     or if its magnitude exceeds MaxCoordinate.
func Parse(s string) (Point, error) {
	fields := strings.Split(strings.TrimSpace(s), ",")
	if len(fields) != Dimensions {
		return Point{}, fmt.Errorf("%w: got %d in %q", ErrFieldCount, len(fields), s)
	}

	var coords [Dimensions]int64
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return Point{}, fmt.Errorf("%w %q: %w", ErrCoordinate, f, err)
		}
		if v > MaxCoordinate || v < -MaxCoordinate {
			return Point{}, fmt.Errorf("%w %q: magnitude exceeds %d", ErrCoordinate, f, MaxCoordinate)
		}
		coords[i] = v
	}

	return New(coords[0], coords[1], coords[2], coords[3]), nil
}

// ReadAll reads one record per line from r and returns the decoded points
// in input order. Every line is a record, so a blank line fails with
// ErrFieldCount; a trailing newline does not produce an extra record.
//
// The first malformed record aborts the read with a *LineError; records
// before it are discarded. I/O failures from r are returned wrapped.
//
// Complexity: O(total input size), Memory: O(number of points).
func ReadAll(r io.Reader) ([]Point, error) {
	var (
		points []Point
		line   int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := sc.Text()
		p, err := Parse(text)
		if err != nil {
			return nil, &LineError{Line: line, Text: text, Err: err}
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("point: read input: %w", err)
	}

	return points, nil
}
