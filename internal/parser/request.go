// Package parser turns one line of user input into a conversion request.
//
// The accepted grammar is
//
//	<number> <unit> <separator> <unit>
//
// where <unit> is a single token, or two tokens when the first one is a degree prefix
// ("degree", "degrees"), as in "10 degrees Celsius in f". The separator ("to", "in", ...)
// can be any single token and is ignored.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"uconv/internal/units"
)

// ExitToken ends an interactive or batch session when it is the first token of a line.
const ExitToken = "exit"

var (
	// ErrEmptyInput is returned for blank lines.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidQuantity is returned when the first token is not a number.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrIncompleteRequest is returned when a unit or the separator is missing.
	ErrIncompleteRequest = errors.New("incomplete request")
	// ErrTrailingTokens is returned when input continues after the destination unit.
	ErrTrailingTokens = errors.New("unexpected trailing input")
)

// Request is a parsed conversion request.
type Request struct {
	Quantity  float64
	Source    string
	Separator string
	Dest      string
	Exit      bool
}

// Parse parses a single input line.
func Parse(input string) (*Request, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}

	if tokens[0] == ExitToken {
		return &Request{Exit: true}, nil
	}

	quantity, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidQuantity, tokens[0], err)
	}

	req := &Request{Quantity: quantity}
	rest := tokens[1:]

	req.Source, rest, err = takeUnit(rest)
	if err != nil {
		return nil, fmt.Errorf("source unit: %w", err)
	}

	if len(rest) == 0 {
		return nil, fmt.Errorf("separator: %w", ErrIncompleteRequest)
	}
	req.Separator, rest = rest[0], rest[1:]

	req.Dest, rest, err = takeUnit(rest)
	if err != nil {
		return nil, fmt.Errorf("destination unit: %w", err)
	}

	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: %q", ErrTrailingTokens, strings.Join(rest, " "))
	}

	return req, nil
}

// takeUnit consumes the tokens naming one unit and returns the assembled name.
func takeUnit(tokens []string) (string, []string, error) {
	if len(tokens) == 0 {
		return "", nil, ErrIncompleteRequest
	}
	if units.IsDegreePrefix(tokens[0]) {
		if len(tokens) < 2 {
			return "", nil, ErrIncompleteRequest
		}
		return tokens[0] + " " + tokens[1], tokens[2:], nil
	}
	return tokens[0], tokens[1:], nil
}

// String renders the request back into the input grammar.
func (r *Request) String() string {
	if r.Exit {
		return ExitToken
	}
	sep := r.Separator
	if sep == "" {
		sep = "to"
	}
	return fmt.Sprintf("%s %s %s %s", strconv.FormatFloat(r.Quantity, 'g', -1, 64), r.Source, sep, r.Dest)
}
