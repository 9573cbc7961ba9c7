package errors

import (
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation error", err: ValidationError("invalid input").Build(), expected: 2},
		{name: "invalid reference", err: InvalidReferenceError("empty reference").Build(), expected: 2},
		{name: "not found", err: NotFoundError("page missing").Build(), expected: 4},
		{name: "configuration error", err: ConfigurationError("bad config").Build(), expected: 7},
		{name: "theme error", err: ThemeError("template parse failed").Build(), expected: 11},
		{
			name:     "wrapped classified error",
			err:      fmt.Errorf("render page: %w", NotFoundError("page missing").Build()),
			expected: 4,
		},
		{name: "unclassified error", err: &customError{msg: "unknown error"}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapter.ExitCodeFor(tt.err)
			if got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{name: "nil error", err: nil, contains: ""},
		{
			name:     "internal error in non-verbose mode",
			err:      InternalError("internal issue").Build(),
			contains: "Internal error occurred (use -v for details)",
		},
		{
			name:     "configuration error",
			err:      ConfigurationError("bad config").Build(),
			contains: "Error: bad config",
		},
		{
			name: "reference error names the reference",
			err: InvalidReferenceError("malformed media reference").
				WithContext(ContextReference, "%zz").
				Build(),
			contains: `"%zz"`,
		},
		{name: "unclassified error", err: &customError{msg: "unknown error"}, contains: "Error: unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapter.FormatError(tt.err)
			if tt.contains == "" {
				if got != "" {
					t.Errorf("FormatError() = %q, want empty string", got)
				}
				return
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("FormatError() = %q, want to contain %q", got, tt.contains)
			}
		})
	}
}

func TestCLIErrorAdapter_VerboseShowsCause(t *testing.T) {
	adapter := NewCLIErrorAdapter(true, slog.Default())
	err := WrapError(&customError{msg: "disk full"}, CategoryFileSystem, "write page").Build()

	got := adapter.FormatError(err)
	if !strings.Contains(got, "disk full") || !strings.Contains(got, "filesystem") {
		t.Errorf("FormatError() = %q, want category and cause", got)
	}
}

// customError is a test helper for unclassified errors
type customError struct {
	msg string
}

func (e *customError) Error() string {
	return e.msg
}
