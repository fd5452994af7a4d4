// Package ref converts between spreadsheet-style cell references (e.g. "A1",
// "CZ104") and 1-based (row, column) coordinates.
//
// The column part uses bijective base-26: A=1 .. Z=26, AA=27, and so on. There
// is no letter for a zero digit, so after Z the next column is AA, not A0.
package ref

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrFormat indicates a string does not match the cell-reference grammar
// (one or more uppercase letters followed by one or more digits).
var ErrFormat = errors.New("malformed cell reference")

// ErrRange indicates a value outside the valid coordinate range (row and
// column must both be >= 1).
var ErrRange = errors.New("cell coordinate out of range")

// Coord is a 1-based (row, column) position in a sheet.
type Coord struct {
	Row int
	Col int
}

// Encode renders a (row, column) pair as a cell reference string.
// Both coordinates must be >= 1.
func Encode(row, col int) (string, error) {
	if row < 1 || col < 1 {
		return "", fmt.Errorf("encode (%d,%d): %w", row, col, ErrRange)
	}
	letters, err := ColumnLetters(col)
	if err != nil {
		return "", err
	}
	return letters + strconv.Itoa(row), nil
}

// Decode parses a cell reference string into its (row, column) coordinates.
// It returns ErrFormat when the string does not match the grammar and
// ErrRange when the row or column part is not a usable positive integer
// (zero, or too many digits or letters to fit in an int).
func Decode(reference string) (Coord, error) {
	letters, digits, ok := splitReference(reference)
	if !ok {
		return Coord{}, fmt.Errorf("decode %q: %w", reference, ErrFormat)
	}

	row, err := strconv.Atoi(digits)
	if err != nil || row < 1 {
		// Grammar matched but the row digits are zero or overflow int.
		return Coord{}, fmt.Errorf("decode %q: row %s: %w", reference, digits, ErrRange)
	}

	col, err := ColumnNumber(letters)
	if err != nil {
		return Coord{}, err
	}
	return Coord{Row: row, Col: col}, nil
}

// IsValid reports whether Decode would accept the reference. It is the single
// validation predicate used by every table entry point.
func IsValid(reference string) bool {
	_, err := Decode(reference)
	return err == nil
}

// ColumnLetters renders a 1-based column number in bijective base-26
// (1 -> "A", 26 -> "Z", 27 -> "AA").
func ColumnLetters(col int) (string, error) {
	if col < 1 {
		return "", fmt.Errorf("column %d: %w", col, ErrRange)
	}
	buf := make([]byte, 0, 3)
	for col > 0 {
		col--
		buf = append(buf, byte('A'+col%26))
		col /= 26
	}
	// Letters were produced least significant first.
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), nil
}

// ColumnNumber parses bijective base-26 column letters into a 1-based column
// number ("A" -> 1, "Z" -> 26, "AA" -> 27).
func ColumnNumber(letters string) (int, error) {
	if letters == "" {
		return 0, fmt.Errorf("column %q: %w", letters, ErrFormat)
	}
	col := 0
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if c < 'A' || c > 'Z' {
			return 0, fmt.Errorf("column %q: %w", letters, ErrFormat)
		}
		if col > (math.MaxInt-26)/26 {
			// The next accumulation step would overflow int.
			return 0, fmt.Errorf("column %q: %w", letters, ErrRange)
		}
		col = col*26 + int(c-'A'+1)
	}
	return col, nil
}

// splitReference splits a reference into its letter and digit runs. It
// reports false unless the string is exactly one run of uppercase letters
// followed by one run of digits.
func splitReference(reference string) (letters, digits string, ok bool) {
	i := 0
	for i < len(reference) && reference[i] >= 'A' && reference[i] <= 'Z' {
		i++
	}
	j := i
	for j < len(reference) && reference[j] >= '0' && reference[j] <= '9' {
		j++
	}
	if i == 0 || j == i || j != len(reference) {
		return "", "", false
	}
	return reference[:i], reference[i:], true
}
