package testutils

import (
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func AssertNoError(t *testing.T, err error, template string, args ...any) {
	t.Helper()
	if err != nil {
		_, file, line, _ := runtime.Caller(1)
		argv := append([]any{file, line, err}, args...)
		t.Errorf("file://%s:%d [%v] "+template, argv...)
	}
}

func AssertError(t *testing.T, err error, template string, args ...any) {
	t.Helper()
	if err == nil {
		_, file, line, _ := runtime.Caller(1)
		argv := append([]any{file, line}, args...)
		t.Errorf("file://%s:%d "+template, argv...)
	}
}

func Assert(t *testing.T, condition bool, template string, args ...any) {
	t.Helper()
	if !condition {
		_, file, line, _ := runtime.Caller(1)
		argv := append([]any{file, line}, args...)
		t.Errorf("file://%s:%d "+template, argv...)
	}
}

// AssertEqual reports a diff (-expected +actual) if both values differ.
func AssertEqual[T any](t *testing.T, expected T, actual T, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, opts...); diff != "" {
		_, file, line, _ := runtime.Caller(1)
		t.Errorf("file://%s:%d mismatch (-expected +actual):\n%s", file, line, diff)
	}
}
