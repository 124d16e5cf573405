package point

import (
	"errors"
	"fmt"
)

// Dimensions is the number of coordinates carried by every Point.
const Dimensions = 4

// MaxCoordinate bounds the magnitude of every coordinate accepted by Parse.
// Each axis difference is then at most 2^61-2, so the sum over four axes
// stays below math.MaxInt64.
const MaxCoordinate int64 = 1<<60 - 1

// Sentinel errors for record parsing.
var (
	// ErrFieldCount indicates a record that does not hold exactly Dimensions fields.
	ErrFieldCount = errors.New("point: record must have exactly 4 comma-separated fields")

	// ErrCoordinate indicates a field that is not a valid signed integer.
	ErrCoordinate = errors.New("point: invalid coordinate")
)

// Point is a location in 4-dimensional integer space.
// It is a plain value: two Points with equal coordinates compare equal,
// but a list may hold the same coordinates more than once.
type Point struct {
	X, Y, Z, T int64
}

// New returns the Point (x, y, z, t).
func New(x, y, z, t int64) Point {
	return Point{X: x, Y: y, Z: z, T: t}
}

// Coords returns the coordinates in X, Y, Z, T order.
func (p Point) Coords() [Dimensions]int64 {
	return [Dimensions]int64{p.X, p.Y, p.Z, p.T}
}

// String formats p in the same "x,y,z,t" form accepted by Parse.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", p.X, p.Y, p.Z, p.T)
}

// LineError reports a record that failed to parse while reading a stream.
type LineError struct {
	// Line is the 1-based line number of the record.
	Line int
	// Text is the raw record as read.
	Text string
	// Err is the underlying parse failure.
	Err error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("point: line %d: failed to parse %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
