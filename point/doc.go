// Package point provides the 4-dimensional integer Point used by the
// constellation clustering routines, together with its Manhattan metric
// and a parser for line-delimited "x,y,z,t" records.
//
// What:
//
//   - Point is an immutable value with four signed coordinates (X, Y, Z, T).
//   - Distance computes the L1 (Manhattan) distance between two points.
//   - Parse decodes one comma-separated record; ReadAll decodes a whole stream.
//
// Why:
//
//   - Clustering only needs a cheap, total metric and validated input.
//     Every error is raised here, at the boundary, so the clustering core can
//     assume well-formed points.
//
// Complexity:
//
//   - Distance: O(1).
//   - Parse:    O(len(record)).
//   - ReadAll:  O(total input size), Memory: O(number of points).
//
// Errors:
//
//   - ErrFieldCount: record does not split into exactly four fields.
//   - ErrCoordinate: a field is not a base-10 integer, or exceeds ±MaxCoordinate.
//   - *LineError:    wraps either of the above with the line number and text.
package point
