package error

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCategoryContract, "STREAM_EXHAUSTED", "unexpected end of input")

	if err.Code != "STREAM_EXHAUSTED" {
		t.Errorf("Expected code STREAM_EXHAUSTED, got %s", err.Code)
	}
	if err.Category != ErrCategoryContract {
		t.Errorf("Expected contract category, got %s", err.Category)
	}
	if len(err.Stack) == 0 {
		t.Error("Expected stack to be captured")
	}
	if got := err.Error(); got != "[STREAM_EXHAUSTED] unexpected end of input" {
		t.Errorf("Unexpected message: %s", got)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "X", "op", "comp") != nil {
		t.Fatal("Wrap(nil) should return nil")
	}

	cause := os.ErrNotExist
	err := Wrap(cause, "READ_FAILED", "ReadFile", "Loader")

	if err.Category != ErrCategorySystem {
		t.Errorf("Expected system category, got %s", err.Category)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("Expected wrapped error to match cause with errors.Is")
	}

	want := "[READ_FAILED] file does not exist (operation: ReadFile, component: Loader) caused by: file does not exist"
	if got := err.Error(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWrapEnrichesExistingDBError(t *testing.T) {
	orig := New(ErrCategoryUser, "SCAN_FAILED", "bad input")
	orig.Component = "Scanner"

	got := Wrap(orig, "IGNORED", "LexFile", "Loader")
	if got != orig {
		t.Fatal("Expected Wrap to return the same DBError")
	}
	if got.Operation != "LexFile" {
		t.Errorf("Expected operation to be filled in, got %q", got.Operation)
	}
	if got.Component != "Scanner" {
		t.Errorf("Expected component to be preserved, got %q", got.Component)
	}
	if got.Code != "SCAN_FAILED" {
		t.Errorf("Expected code to be preserved, got %q", got.Code)
	}
}

func TestHasCode(t *testing.T) {
	inner := New(ErrCategoryUser, "INNER", "inner")
	outer := &DBError{Code: "OUTER", Message: "outer", Cause: inner}

	tests := []struct {
		err  error
		code string
		want bool
	}{
		{outer, "OUTER", true},
		{outer, "INNER", true},
		{outer, "OTHER", false},
		{errors.New("plain"), "OUTER", false},
		{nil, "OUTER", false},
	}

	for _, tt := range tests {
		if got := HasCode(tt.err, tt.code); got != tt.want {
			t.Errorf("HasCode(%v, %s) = %v, want %v", tt.err, tt.code, got, tt.want)
		}
	}
}

func TestErrorWithDetail(t *testing.T) {
	err := New(ErrCategoryUser, "SCAN_FAILED", "unexpected character '#'")
	err.Detail = "q.sql:1:8"
	err.Operation = "LexFile"

	want := "[SCAN_FAILED] unexpected character '#': q.sql:1:8 (operation: LexFile)"
	if got := err.Error(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestFormatStack(t *testing.T) {
	err := New(ErrCategorySystem, "X", "x")
	stack := err.FormatStack()

	if !strings.HasPrefix(stack, "Stack trace:\n") {
		t.Errorf("Unexpected stack header: %q", stack)
	}
	if !strings.Contains(stack, "TestFormatStack") {
		t.Errorf("Expected stack to include the calling test, got:\n%s", stack)
	}

	empty := &DBError{}
	if empty.FormatStack() != "" {
		t.Error("Expected empty stack string for error without stack")
	}
}
