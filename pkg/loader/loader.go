// Package loader reads query files in full and hands their bytes to the lexer.
//
// The lexer never touches the filesystem; this package is the collaborator
// that does. LexFiles scans many files concurrently, one goroutine per file,
// each owning its own token sequence.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	dberror "sqlscan/pkg/error"
	"sqlscan/pkg/lexer"
	"sqlscan/pkg/logging"

	"golang.org/x/sync/errgroup"
)

// CodeScanFailed marks a DBError built from a *lexer.ScanError.
const CodeScanFailed = "SCAN_FAILED"

// Result is the outcome of lexing one source. Exactly one of Tokens and
// ScanErr is set.
type Result struct {
	Path    string
	Source  []byte
	Tokens  lexer.Sequence
	ScanErr *lexer.ScanError
}

// Failed reports whether the source could not be tokenized.
func (r Result) Failed() bool {
	return r.ScanErr != nil
}

// Err converts the scan failure into a DBError whose detail is the
// path:line:col of the failing offset. It returns nil for a successful result.
func (r Result) Err() error {
	if r.ScanErr == nil {
		return nil
	}
	line, col := lexer.LineCol(r.Source, r.ScanErr.Offset)
	err := dberror.New(dberror.ErrCategoryUser, CodeScanFailed, r.ScanErr.Msg)
	err.Detail = fmt.Sprintf("%s:%d:%d", r.Path, line, col)
	err.Operation = "LexFile"
	err.Component = "Loader"
	err.Cause = r.ScanErr
	return err
}

// ReadFile loads the whole file at path.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, dberror.Wrap(err, "READ_FAILED", "ReadFile", "Loader")
	}
	return data, nil
}

// Lex scans src and records the outcome under name. A scan failure is part of
// the Result, not an error.
func Lex(name string, src []byte, opts ...lexer.Option) Result {
	log := logging.WithFile(name)

	res := Result{Path: name, Source: src}
	seq, err := lexer.Scan(src, len(src), opts...)
	if err != nil {
		var serr *lexer.ScanError
		if !errors.As(err, &serr) {
			serr = &lexer.ScanError{Msg: err.Error()}
		}
		res.ScanErr = serr
		log.Warn("scan failed", "offset", serr.Offset, "reason", serr.Msg)
		return res
	}

	res.Tokens = seq
	log.Debug("scanned", "bytes", len(src), "tokens", len(seq))
	return res
}

// LexFile reads and scans a single file.
func LexFile(path string, opts ...lexer.Option) (Result, error) {
	src, err := ReadFile(path)
	if err != nil {
		return Result{Path: path}, err
	}
	return Lex(path, src, opts...), nil
}

// LexReader drains r and scans its contents under name.
func LexReader(name string, r io.Reader, opts ...lexer.Option) (Result, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return Result{Path: name}, dberror.Wrap(err, "READ_FAILED", "LexReader", "Loader")
	}
	return Lex(name, src, opts...), nil
}

// LexFiles scans paths concurrently with at most limit files in flight
// (limit <= 0 means no bound). Results are returned in the order of paths.
// Scan failures are reported per file; only I/O errors and cancellation
// abort the batch.
func LexFiles(ctx context.Context, paths []string, limit int, opts ...lexer.Option) ([]Result, error) {
	log := logging.WithComponent("loader")
	log.Debug("scanning batch", "files", len(paths), "limit", limit)

	results := make([]Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := LexFile(path, opts...)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logging.WithError(err).Warn("batch aborted")
		return nil, fmt.Errorf("lexing %d files: %w", len(paths), err)
	}
	return results, nil
}
