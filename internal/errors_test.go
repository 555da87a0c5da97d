package internal

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestBackendError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := &BackendError{Op: "content", Model: "gemini-2.5-flash", Err: cause}

	if !strings.Contains(err.Error(), "content") || !strings.Contains(err.Error(), "gemini-2.5-flash") {
		t.Errorf("Error() = %q, want op and model included", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() does not reach the wrapped cause")
	}

	// Model is optional
	short := &BackendError{Op: "outline", Err: cause}
	if strings.Contains(short.Error(), "()") {
		t.Errorf("Error() = %q, want no empty model parens", short.Error())
	}
}

func TestStoreError(t *testing.T) {
	cause := fmt.Errorf("database is locked")
	err := &StoreError{Key: HistoryKey, Op: "set", Err: cause}

	if !strings.Contains(err.Error(), HistoryKey) || !strings.Contains(err.Error(), "set") {
		t.Errorf("Error() = %q, want key and op included", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() does not reach the wrapped cause")
	}
}

func TestExportError(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := &ExportError{Format: "pdf", Path: "/tmp/report.pdf", Err: cause}

	if !strings.Contains(err.Error(), "pdf") || !strings.Contains(err.Error(), "/tmp/report.pdf") {
		t.Errorf("Error() = %q, want format and path included", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() does not reach the wrapped cause")
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{ErrMissingCredential, ErrEmptyOutline, ErrReportNotFound, ErrRunInFlight}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v unexpectedly matches %v", a, b)
			}
		}
	}
}
