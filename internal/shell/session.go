// Package shell evaluates conversion requests typed by the user, either interactively
// through ishell or line by line from a script.
package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"uconv/internal/data/embedded"
	"uconv/internal/logger"
	"uconv/internal/output"
	"uconv/internal/parser"
	"uconv/internal/units"
)

// UnknownPlaceholder stands in for a unit name that could not be resolved.
const UnknownPlaceholder = "???"

// ImpossibleConversionError reports a conversion between unknown or incompatible units.
// A nil Source or Dest means that side did not resolve.
type ImpossibleConversionError struct {
	Source *units.Unit
	Dest   *units.Unit
	Err    error
}

// Error implements the error interface.
func (e *ImpossibleConversionError) Error() string {
	return fmt.Sprintf("Conversion from %s to %s is impossible.", describe(e.Source), describe(e.Dest))
}

// Unwrap returns the underlying resolution or compatibility error.
func (e *ImpossibleConversionError) Unwrap() error {
	return e.Err
}

func describe(u *units.Unit) string {
	if u == nil {
		return UnknownPlaceholder
	}
	return u.Representative()
}

// Stats counts what a session has evaluated.
type Stats struct {
	Evaluated int
	Converted int
	Failed    int
}

// Session evaluates conversion requests against a unit registry and prints the outcome.
type Session struct {
	id        string
	registry  *units.Registry
	printer   *output.Printer
	precision int
	stats     Stats
	log       *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithRegistry sets the registry names are resolved against.
func WithRegistry(r *units.Registry) Option {
	return func(s *Session) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithPrinter sets the printer results and errors are written to.
func WithPrinter(p *output.Printer) Option {
	return func(s *Session) {
		if p != nil {
			s.printer = p
		}
	}
}

// WithPrecision sets the significant digits used for quantities (-1 for shortest).
func WithPrecision(precision int) Option {
	return func(s *Session) {
		s.precision = precision
	}
}

// WithSessionID overrides the generated session id.
func WithSessionID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// NewSession creates a session using the default registry and global printer unless overridden.
func NewSession(opts ...Option) *Session {
	s := &Session{
		id:        uuid.NewString(),
		registry:  units.Default(),
		printer:   output.GetGlobalPrinter(),
		precision: units.DefaultPrecision,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = logger.NewStyledLogger("Shell").With("session", s.id)
	return s
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Stats returns a snapshot of the session counters.
func (s *Session) Stats() Stats { return s.stats }

// Registry returns the registry names are resolved against.
func (s *Session) Registry() *units.Registry { return s.registry }

// Printer returns the printer the session writes to.
func (s *Session) Printer() *output.Printer { return s.printer }

// Evaluate processes one input line and prints a single result or error line.
// It returns false when the line asks the session to stop.
func (s *Session) Evaluate(line string) bool {
	req, err := parser.Parse(line)
	if errors.Is(err, parser.ErrEmptyInput) {
		return true
	}
	if err == nil && req.Exit {
		logger.Conversion(s.id, line, "exit")
		return false
	}

	s.stats.Evaluated++

	if err == nil {
		var result string
		if result, err = s.Convert(req); err == nil {
			s.stats.Converted++
			logger.Conversion(s.id, line, "ok")
			s.printer.Result(result)
			return true
		}
	}

	s.stats.Failed++
	logger.Conversion(s.id, line, err.Error())
	s.printer.Error(Message(err))
	return true
}

// Convert resolves both unit names of req, converts the quantity and returns the result line.
func (s *Session) Convert(req *parser.Request) (string, error) {
	source, sourceErr := s.registry.MustResolve(req.Source)
	dest, destErr := s.registry.MustResolve(req.Dest)
	if err := errors.Join(sourceErr, destErr); err != nil {
		return "", &ImpossibleConversionError{Source: source, Dest: dest, Err: err}
	}

	converted, err := units.Convert(req.Quantity, source, dest)
	if err != nil {
		var incompatible *units.IncompatibleUnitsError
		if errors.As(err, &incompatible) {
			return "", &ImpossibleConversionError{Source: source, Dest: dest, Err: err}
		}
		return "", err
	}

	return fmt.Sprintf("%s %s is %s %s",
		units.FormatQuantity(req.Quantity, s.precision), source.Display(req.Quantity),
		units.FormatQuantity(converted, s.precision), dest.Display(converted)), nil
}

// Message renders an evaluation error as the line shown to the user.
func Message(err error) string {
	var impossible *ImpossibleConversionError
	if errors.As(err, &impossible) {
		return impossible.Error()
	}

	var negative *units.NegativeQuantityError
	if errors.As(err, &negative) {
		return negative.Error() + "."
	}

	return "Error: " + err.Error()
}

// Help prints the usage guide.
func (s *Session) Help() {
	s.printer.Markdown(embedded.HelpMarkdown)
}

// ListUnits prints the catalog, optionally restricted to the named families.
func (s *Session) ListUnits(familyNames ...string) {
	families, err := ParseFamilies(familyNames)
	if err != nil {
		s.printer.Error(Message(err))
		return
	}

	for _, entry := range Catalog(s.registry, families...) {
		s.printer.Heading(entry.Family)
		for _, u := range entry.Units {
			line := fmt.Sprintf("  %s (%s)", u.Singular, u.Plural)
			if len(u.Aliases) > 0 {
				line += ": " + strings.Join(u.Aliases, ", ")
			}
			s.printer.Println(line)
		}
	}
}
