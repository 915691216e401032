package lexer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Token is a lexical unit. It is implemented by exactly four types: Type,
// Identifier, Number and StringLiteral.
type Token interface {
	fmt.Stringer
	isToken()
}

// Identifier is a name that did not match any keyword. It holds the raw lexeme.
type Identifier string

func (id Identifier) String() string { return string(id) }
func (Identifier) isToken()          {}

// NumericKind tags the representation of a numeric literal.
type NumericKind int

const (
	IntKind NumericKind = iota
)

// Type returns the type-name keyword matching the kind.
func (k NumericKind) Type() Type {
	switch k {
	case IntKind:
		return INT
	default:
		panic(fmt.Sprintf("lexer: unknown numeric kind %d", int(k)))
	}
}

func (k NumericKind) String() string {
	return k.Type().String()
}

// Number is a numeric literal.
type Number struct {
	Value int64
	Kind  NumericKind
}

func (n Number) String() string { return strconv.FormatInt(n.Value, 10) }
func (Number) isToken()         {}

// StringLiteral holds the content of a quoted literal with escapes resolved.
type StringLiteral string

func (s StringLiteral) String() string {
	return "'" + strings.ReplaceAll(string(s), "'", "''") + "'"
}
func (StringLiteral) isToken() {}

// TypeOf maps a token to the Type a parser dispatches on. Payload tokens map
// to IDENTIFIER, NUMBER_CONSTANT and STR_LITERAL.
func TypeOf(tok Token) Type {
	switch t := tok.(type) {
	case Type:
		return t
	case Identifier:
		return IDENTIFIER
	case Number:
		return NUMBER_CONSTANT
	case StringLiteral:
		return STR_LITERAL
	default:
		panic(fmt.Sprintf("lexer: unknown token %T", tok))
	}
}

// Item pairs a token with the byte offset where its lexeme starts.
type Item struct {
	Token Token
	Pos   int
}

// String formats the item for tracing. The zero Item, returned alongside
// stream errors, prints as "0:<none>".
func (it Item) String() string {
	if it.Token == nil {
		return fmt.Sprintf("%d:<none>", it.Pos)
	}
	return fmt.Sprintf("%d:%s(%s)", it.Pos, TypeOf(it.Token).Name(), it.Token)
}

// Sequence is the ordered result of a successful scan. It must not be
// modified once returned.
type Sequence []Item

// Print writes one line per item: offset, kind and text. It is meant for
// debug tracing.
func (seq Sequence) Print(w io.Writer) error {
	for _, it := range seq {
		if _, err := fmt.Fprintf(w, "%6d  %-16s %s\n", it.Pos, TypeOf(it.Token).Name(), it.Token); err != nil {
			return err
		}
	}
	return nil
}
