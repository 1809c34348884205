package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// parseOperand parses one operand. Besides decimal and exponent forms it
// accepts NaN, Inf, +Inf, -Inf and infinity. Literals beyond the float64
// range become infinities, as the arithmetic would produce them anyway.
func parseOperand(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, nil
		}
		return 0, fmt.Errorf("invalid operand %q: expected a number", s)
	}
	return v, nil
}

// parseOperands parses a pair of operands.
func parseOperands(a, b string) (float64, float64, error) {
	x, err := parseOperand(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := parseOperand(b)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// parseOperandLine splits an interactive line on whitespace or commas and
// parses exactly two operands from it.
func parseOperandLine(line string) (float64, float64, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected two operands, got %d", len(fields))
	}
	return parseOperands(fields[0], fields[1])
}
