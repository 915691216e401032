package lexer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	dberror "sqlscan/pkg/error"
)

func newTestStream(t *testing.T, input string) *Stream {
	t.Helper()
	return NewStream(mustScan(t, input))
}

func TestStreamConsumeInOrder(t *testing.T) {
	ts := newTestStream(t, "SELECT a FROM b;")
	want := []Token{SELECT, Identifier("a"), FROM, Identifier("b"), SEMICOLON}

	for i, tok := range want {
		if ts.Empty() {
			t.Fatalf("Stream empty after %d tokens", i)
		}
		it, err := ts.Consume()
		if err != nil {
			t.Fatalf("Consume %d failed: %v", i, err)
		}
		if it.Token != tok {
			t.Errorf("Consume %d: expected %v, got %v", i, tok, it.Token)
		}
	}

	if !ts.Empty() {
		t.Error("Expected stream to be empty")
	}
}

func TestStreamPeekDoesNotAdvance(t *testing.T) {
	ts := newTestStream(t, "DROP t")

	for i := 0; i < 3; i++ {
		it, err := ts.Peek()
		if err != nil {
			t.Fatalf("Peek failed: %v", err)
		}
		if it.Token != DROP || it.Pos != 0 {
			t.Errorf("Peek %d: expected DROP at 0, got %v", i, it)
		}
	}
	if ts.Remaining() != 2 {
		t.Errorf("Expected 2 remaining tokens, got %d", ts.Remaining())
	}
}

func TestStreamPopAndRemaining(t *testing.T) {
	ts := newTestStream(t, "a , b , c")
	total := ts.Size()
	if total != 5 {
		t.Fatalf("Expected 5 tokens, got %d", total)
	}

	for n := 0; n <= total; n++ {
		if ts.Remaining() != total-n {
			t.Errorf("After %d pops: expected %d remaining, got %d", n, total-n, ts.Remaining())
		}
		if ts.Empty() != (n == total) {
			t.Errorf("After %d pops: Empty() = %v", n, ts.Empty())
		}
		if ts.Size() != total {
			t.Errorf("Size changed to %d after %d pops", ts.Size(), n)
		}
		if n < total {
			if err := ts.Pop(); err != nil {
				t.Fatalf("Pop %d failed: %v", n, err)
			}
		}
	}
}

func TestStreamExhausted(t *testing.T) {
	ts := NewStream(nil)
	if !ts.Empty() || ts.Size() != 0 {
		t.Fatal("Expected empty stream")
	}

	checks := []struct {
		op  string
		err error
	}{
		{"Peek", func() error { _, err := ts.Peek(); return err }()},
		{"Pop", ts.Pop()},
		{"Consume", func() error { _, err := ts.Consume(); return err }()},
	}

	for _, c := range checks {
		if c.err == nil {
			t.Errorf("%s: expected error on empty stream", c.op)
			continue
		}
		if !errors.Is(c.err, ErrStreamExhausted) {
			t.Errorf("%s: expected ErrStreamExhausted, got %v", c.op, c.err)
		}
		if !dberror.HasCode(c.err, CodeStreamExhausted) {
			t.Errorf("%s: expected code %s, got %v", c.op, CodeStreamExhausted, c.err)
		}

		var dbErr *dberror.DBError
		if !errors.As(c.err, &dbErr) {
			t.Fatalf("%s: expected *DBError, got %T", c.op, c.err)
		}
		if dbErr.Category != dberror.ErrCategoryContract {
			t.Errorf("%s: expected contract category, got %s", c.op, dbErr.Category)
		}
		if dbErr.Operation != c.op || dbErr.Component != "TokenStream" {
			t.Errorf("%s: unexpected context %q/%q", c.op, dbErr.Operation, dbErr.Component)
		}
	}
}

func TestStreamExhaustedItemPrints(t *testing.T) {
	ts := newTestStream(t, "DROP")
	if _, err := ts.Consume(); err != nil {
		t.Fatalf("Consume failed: %v", err)
	}

	it, err := ts.Peek()
	if err == nil {
		t.Fatal("Expected error on exhausted stream")
	}
	if got := it.String(); got != "0:<none>" {
		t.Errorf("Expected zero item to print as 0:<none>, got %q", got)
	}
}

func TestStreamIndexIsAbsolute(t *testing.T) {
	ts := newTestStream(t, "x >= 10")
	_, _ = ts.Consume()
	_, _ = ts.Consume()

	if got := ts.Index(0); got.Token != Identifier("x") || got.Pos != 0 {
		t.Errorf("Index(0): expected x at 0, got %v", got)
	}
	if got := ts.Index(2); got.Token != (Number{Value: 10, Kind: IntKind}) || got.Pos != 5 {
		t.Errorf("Index(2): expected 10 at 5, got %v", got)
	}
}

func TestStreamIndexOutOfRangePanics(t *testing.T) {
	ts := newTestStream(t, "a")

	for _, pos := range []int{-1, 1, 5} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Index(%d): expected panic", pos)
				}
			}()
			ts.Index(pos)
		}()
	}
}

func TestStreamPrintSkipsConsumed(t *testing.T) {
	ts := newTestStream(t, "SET x = 'y'")
	_ = ts.Pop()

	var buf bytes.Buffer
	if err := ts.Print(&buf); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d:\n%s", len(lines), buf.String())
	}
	if strings.Contains(buf.String(), "SET") {
		t.Errorf("Consumed token should not be printed:\n%s", buf.String())
	}
	for i, want := range []string{"IDENTIFIER", "ASSIGN", "STR_LITERAL"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("Line %d: expected %s in %q", i, want, lines[i])
		}
	}
	if !strings.HasSuffix(lines[2], "'y'") {
		t.Errorf("Expected quoted string literal, got %q", lines[2])
	}
}
