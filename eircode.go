// Package eircode validates and normalises Irish postal codes.
//
// An Eircode is a 3-character routing key (a letter followed by two letters
// or digits) and a 4-character unique identifier, e.g. "A65 B2CD". The letter
// O is never used, so it is excluded from every character class.
package eircode

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Character class fragments. Every pattern below is built from these.
const (
	upperLetters = `A-NP-Z`
	lowerLetters = `a-np-z`
	digits       = `0-9`
)

var (
	// ErrConfiguration is returned when mutually exclusive options are set.
	ErrConfiguration = errors.New("eircode: strict and lax options are mutually exclusive")
	// ErrUsage is returned when Check is given more than one Options value.
	ErrUsage = errors.New("eircode: too many arguments")
	// ErrInvalidEircode matches any *InvalidEircodeError via errors.Is.
	ErrInvalidEircode = errors.New("invalid eircode")
)

var (
	upperRoutingKey = routingKeyExpr(upperLetters)
	upperUID        = uidExpr(upperLetters)
	anyRoutingKey   = routingKeyExpr(upperLetters + lowerLetters)
	anyUID          = uidExpr(upperLetters + lowerLetters)

	laxPattern   = regexp.MustCompile(`^` + upperRoutingKey + upperUID + `$`)
	checkPattern = regexp.MustCompile(`^` + upperRoutingKey + `\s+` + upperUID + `$`)
	splitPattern = regexp.MustCompile(`^(` + anyRoutingKey + `)\s*(` + anyUID + `)$`)
	keyPattern   = regexp.MustCompile(`^` + upperRoutingKey + `$`)
)

func routingKeyExpr(letters string) string {
	return `[` + letters + `][` + letters + digits + `]{2}`
}

func uidExpr(letters string) string {
	return `[` + letters + digits + `]{4}`
}

// Options selects the validation mode. The zero value is the default mode:
// case-insensitive, with at least one whitespace character between the
// routing key and the UID.
type Options struct {
	// Strict disables case folding, so lowercase letters fail.
	Strict bool
	// Lax removes every space before matching, so the separator is optional.
	Lax bool
}

// Validate reports ErrConfiguration when both Strict and Lax are set.
func (o Options) Validate() error {
	if o.Strict && o.Lax {
		return ErrConfiguration
	}
	return nil
}

// InvalidEircodeError is returned when input cannot be split into a routing
// key and a UID.
type InvalidEircodeError struct {
	Input string
}

func (e *InvalidEircodeError) Error() string {
	return fmt.Sprintf("invalid eircode %q", e.Input)
}

// Is makes errors.Is(err, ErrInvalidEircode) succeed.
func (e *InvalidEircodeError) Is(target error) bool {
	return target == ErrInvalidEircode
}

// Check reports whether input is a well-formed Eircode under the given
// options. Malformed input yields false with a nil error; an error is only
// returned for invalid options (ErrConfiguration) or when more than one
// Options value is passed (ErrUsage).
func Check(input string, opts ...Options) (bool, error) {
	if len(opts) > 1 {
		return false, ErrUsage
	}
	var o Options
	if len(opts) == 1 {
		o = opts[0]
	}
	if err := o.Validate(); err != nil {
		return false, err
	}

	s := input
	if o.Lax {
		s = strings.ReplaceAll(s, " ", "")
	}
	if !o.Strict {
		s = strings.ToUpper(s)
	}
	if s == "" {
		return false, nil
	}

	if o.Lax {
		return laxPattern.MatchString(s), nil
	}
	return checkPattern.MatchString(s), nil
}

// Split returns the routing key and UID of input exactly as they appear in
// it. Any amount of whitespace, including none, may separate the two parts
// and letters of either case are accepted.
func Split(input string) (routingKey, uid string, err error) {
	m := splitPattern.FindStringSubmatch(input)
	if m == nil || m[1] == "" || m[2] == "" {
		return "", "", &InvalidEircodeError{Input: input}
	}
	return m[1], m[2], nil
}

// IsRoutingKey reports whether s is an uppercase routing key on its own,
// e.g. "D02".
func IsRoutingKey(s string) bool {
	return keyPattern.MatchString(s)
}

var blanks = strings.NewReplacer(" ", "", "\t", "")

// Normalise uppercases input, removes spaces and tabs, and returns the
// canonical "RRR UUUU" form.
func Normalise(input string) (string, error) {
	s := blanks.Replace(strings.ToUpper(input))
	rk, id, err := Split(s)
	if err != nil {
		return "", err
	}
	return rk + " " + id, nil
}

// Normalize is an alias for Normalise.
func Normalize(input string) (string, error) {
	return Normalise(input)
}
