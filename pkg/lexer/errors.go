package lexer

import (
	"errors"
	"fmt"

	dberror "sqlscan/pkg/error"
)

// CodeStreamExhausted is the DBError code carried by Stream read failures.
const CodeStreamExhausted = "STREAM_EXHAUSTED"

// ErrStreamExhausted is the cause of every error returned by Peek, Pop and
// Consume on an empty stream. Test for it with errors.Is.
var ErrStreamExhausted = errors.New("token stream exhausted")

// ScanError reports why input could not be tokenized and where.
type ScanError struct {
	Msg    string
	Offset int
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan error at offset %d: %s", e.Offset, e.Msg)
}

func exhausted(operation string) error {
	err := dberror.Wrap(ErrStreamExhausted, CodeStreamExhausted, operation, "TokenStream")
	err.Category = dberror.ErrCategoryContract
	err.Message = "unexpected end of input"
	err.Hint = "check Empty() before reading from the stream"
	return err
}
