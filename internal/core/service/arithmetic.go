package service

import (
	"chatbot/internal/core/domain"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var numberPattern = regexp.MustCompile(`\p{Nd}+`)

// Evaluate computes the arithmetic request contained in a raw message. The operation is the first of
// add, subtract, multiply and divide found anywhere in the text; operands are the unsigned digit runs in
// order of appearance, in any script's decimal digits.
func Evaluate(message string) (float64, error) {
	op, err := parseOperation(message)
	if err != nil {
		return 0, err
	}

	operands, err := parseOperands(message)
	if err != nil {
		return 0, err
	}

	switch op {
	case domain.Add:
		var sum float64
		for _, n := range operands {
			sum += n
		}
		return sum, nil
	case domain.Subtract:
		if len(operands) == 0 {
			return 0, fmt.Errorf("%w: subtraction needs at least one number", domain.ErrInsufficientOperands)
		}
		var rest float64
		for _, n := range operands[1:] {
			rest += n
		}
		return operands[0] - rest, nil
	case domain.Multiply:
		product := 1.0
		for _, n := range operands {
			product *= n
		}
		return product, nil
	case domain.Divide:
		switch {
		case len(operands) < 2:
			return 0, fmt.Errorf("%w: division needs exactly two numbers, got %d",
				domain.ErrInsufficientOperands, len(operands))
		case len(operands) > 2:
			return 0, fmt.Errorf("%w: division needs exactly two numbers, got %d",
				domain.ErrTooManyOperands, len(operands))
		case operands[1] == 0:
			return 0, domain.ErrDivisionByZero
		}
		return operands[0] / operands[1], nil
	}

	return 0, domain.ErrUnknownOperation
}

func parseOperation(message string) (domain.Operation, error) {
	lower := strings.ToLower(message)

	for _, op := range domain.Operations {
		if strings.Contains(lower, string(op)) {
			return op, nil
		}
	}

	return "", domain.ErrUnknownOperation
}

func parseOperands(message string) ([]float64, error) {
	digits := numberPattern.FindAllString(message, -1)
	operands := make([]float64, 0, len(digits))

	for _, d := range digits {
		n, err := strconv.ParseFloat(asciiDigits(d), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrNumberParse, d)
		}
		operands = append(operands, n)
	}

	return operands, nil
}

func asciiDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		b.WriteByte(byte('0' + digitValue(r)))
	}

	return b.String()
}

// digitValue relies on decimal digits being encoded in contiguous runs that start at zero.
func digitValue(r rune) int {
	zero := r
	for unicode.IsDigit(zero - 1) {
		zero--
	}

	return int(r-zero) % 10
}

// FormatNumber renders a result the way it has always been shown to users: integral values keep a
// trailing ".0", very small or large magnitudes switch to exponent notation.
func FormatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "nan"
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	}

	if abs := math.Abs(n); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(n, 'e', -1, 64)
	}

	s := strconv.FormatFloat(n, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
