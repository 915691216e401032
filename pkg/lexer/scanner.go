package lexer

import (
	"fmt"
	"strconv"
	"strings"
)

type scanState int

const (
	stateStart scanState = iota
	stateSkipWhitespace
	stateIdent
	stateNumber
	stateString
	stateOperator
	stateError
	stateDone
)

// scanner holds the state of one Scan call. It is never shared.
type scanner struct {
	src   []byte
	pos   int
	state scanState
	cfg   config
	items Sequence
	err   *ScanError
}

// Scan tokenizes the first length bytes of buf. It returns either the complete
// token sequence or a *ScanError, never both, and never panics.
func Scan(buf []byte, length int, opts ...Option) (Sequence, error) {
	if length < 0 || length > len(buf) {
		return nil, &ScanError{
			Msg:    fmt.Sprintf("length %d outside buffer of %d bytes", length, len(buf)),
			Offset: 0,
		}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &scanner{
		src:   buf[:length],
		cfg:   cfg,
		items: make(Sequence, 0, length/4),
	}
	s.run()

	if s.err != nil {
		return nil, s.err
	}
	if cfg.eof {
		s.items = append(s.items, Item{Token: EOF, Pos: length})
	}
	return s.items, nil
}

// ScanString is Scan over the bytes of src.
func ScanString(src string, opts ...Option) (Sequence, error) {
	return Scan([]byte(src), len(src), opts...)
}

func (s *scanner) run() {
	for s.state != stateError && s.state != stateDone {
		switch s.state {
		case stateStart:
			s.state = s.classify()
		case stateSkipWhitespace:
			s.skipWhitespace()
		case stateIdent:
			s.scanIdent()
		case stateNumber:
			s.scanNumber()
		case stateString:
			s.scanString()
		case stateOperator:
			s.scanOperator()
		}
	}
}

// classify picks the next state from the byte under the cursor.
func (s *scanner) classify() scanState {
	if s.pos >= len(s.src) {
		return stateDone
	}

	ch := s.src[s.pos]
	switch {
	case isSpace(ch):
		return stateSkipWhitespace
	case ch == s.cfg.quote:
		return stateString
	case isIdentStart(ch):
		return stateIdent
	case isDigit(ch):
		return stateNumber
	case operatorStart[ch]:
		return stateOperator
	default:
		return s.fail(s.pos, "unexpected character %q", s.src[s.pos:s.pos+1])
	}
}

func (s *scanner) fail(offset int, format string, args ...any) scanState {
	s.err = &ScanError{Msg: fmt.Sprintf(format, args...), Offset: offset}
	s.state = stateError
	return stateError
}

func (s *scanner) emit(tok Token, start int) {
	s.items = append(s.items, Item{Token: tok, Pos: start})
	s.state = stateStart
}

func (s *scanner) skipWhitespace() {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
	s.state = stateStart
}

// scanIdent reads a maximal identifier run and resolves it against the
// keyword table.
func (s *scanner) scanIdent() {
	start := s.pos
	for s.pos < len(s.src) && isIdentChar(s.src[s.pos]) {
		s.pos++
	}

	word := string(s.src[start:s.pos])
	if t, ok := keywords[word]; ok {
		s.emit(t, start)
		return
	}
	s.emit(Identifier(word), start)
}

func (s *scanner) scanNumber() {
	start := s.pos
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.pos++
	}

	lexeme := string(s.src[start:s.pos])
	v, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		s.fail(start, "integer literal %s out of range", lexeme)
		return
	}
	s.emit(Number{Value: v, Kind: IntKind}, start)
}

// scanOperator applies maximal munch: the two-byte lexeme is tried before the
// one-byte prefix.
func (s *scanner) scanOperator() {
	start := s.pos
	if start+1 < len(s.src) {
		if t, ok := keywords[string(s.src[start:start+2])]; ok {
			s.pos += 2
			s.emit(t, start)
			return
		}
	}

	t, ok := keywords[string(s.src[start])]
	if !ok {
		s.fail(start, "unexpected character %q", s.src[start:start+1])
		return
	}
	s.pos++
	s.emit(t, start)
}

func (s *scanner) scanString() {
	start := s.pos
	quote := s.cfg.quote
	s.pos++

	var b strings.Builder
	for {
		if s.pos >= len(s.src) {
			s.fail(start, "unterminated string literal")
			return
		}

		ch := s.src[s.pos]
		switch {
		case ch == quote:
			if s.cfg.escapes == EscapeDoubled && s.pos+1 < len(s.src) && s.src[s.pos+1] == quote {
				b.WriteByte(quote)
				s.pos += 2
				continue
			}
			s.pos++
			s.emit(StringLiteral(b.String()), start)
			return

		case ch == '\\' && s.cfg.escapes == EscapeBackslash:
			if s.pos+1 >= len(s.src) {
				s.fail(start, "unterminated string literal")
				return
			}
			r, ok := unescape(s.src[s.pos+1], quote)
			if !ok {
				s.fail(s.pos, "unknown escape sequence \\%c", s.src[s.pos+1])
				return
			}
			b.WriteByte(r)
			s.pos += 2

		default:
			b.WriteByte(ch)
			s.pos++
		}
	}
}

func unescape(ch, quote byte) (byte, bool) {
	switch ch {
	case quote:
		return quote, true
	case '\\':
		return '\\', true
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	default:
		return 0, false
	}
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

func isLetter(ch byte) bool { return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' }

func isIdentStart(ch byte) bool { return isLetter(ch) || ch == '_' }

func isIdentChar(ch byte) bool { return isIdentStart(ch) || isDigit(ch) }
