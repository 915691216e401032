package lexer

import "fmt"

// EscapePolicy selects how a quote character can appear inside a string literal.
type EscapePolicy int

const (
	// EscapeDoubled treats two consecutive quotes as one literal quote.
	EscapeDoubled EscapePolicy = iota
	// EscapeBackslash recognizes \', \\, \n, \t and \r.
	EscapeBackslash
	// EscapeNone ends the literal at the first closing quote.
	EscapeNone
)

func (p EscapePolicy) String() string {
	switch p {
	case EscapeDoubled:
		return "doubled"
	case EscapeBackslash:
		return "backslash"
	case EscapeNone:
		return "none"
	default:
		return fmt.Sprintf("EscapePolicy(%d)", int(p))
	}
}

// ParseEscapePolicy is the inverse of EscapePolicy.String.
func ParseEscapePolicy(s string) (EscapePolicy, error) {
	switch s {
	case "doubled":
		return EscapeDoubled, nil
	case "backslash":
		return EscapeBackslash, nil
	case "none":
		return EscapeNone, nil
	default:
		return 0, fmt.Errorf("unknown escape policy %q (want none, doubled or backslash)", s)
	}
}

type config struct {
	eof     bool
	quote   byte
	escapes EscapePolicy
}

func defaultConfig() config {
	return config{quote: '\'', escapes: EscapeDoubled}
}

// Option configures a single Scan call.
type Option func(*config)

// WithEOF appends an EOF sentinel positioned at the input length. Without it
// the sequence ends with the last real token and callers rely on Stream.Empty.
func WithEOF() Option {
	return func(c *config) { c.eof = true }
}

// WithQuote changes the string literal delimiter (default ').
func WithQuote(q byte) Option {
	return func(c *config) { c.quote = q }
}

// WithEscapes selects the escape policy inside string literals.
func WithEscapes(p EscapePolicy) Option {
	return func(c *config) { c.escapes = p }
}
