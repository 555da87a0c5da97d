package internal

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestShowProgress(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		message string
		fn      func() error
		wantErr bool
	}{
		{
			name:    "successful function",
			message: "Generating",
			fn: func() error {
				return nil
			},
			wantErr: false,
		},
		{
			name:    "function error is passed through",
			message: "Generating",
			fn: func() error {
				return errors.New("backend unavailable")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ShowProgress(ctx, tt.message, tt.fn)
			if (err != nil) != tt.wantErr {
				t.Errorf("ShowProgress() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestShowProgressContextCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// Without a TTY the function runs to completion; with one the context
	// expires first. Both are acceptable, the call just must return.
	_ = ShowProgress(ctx, "Waiting", func() error {
		time.Sleep(100 * time.Millisecond)
		return nil
	})
}

func TestIsTerminal(t *testing.T) {
	// A plain buffer is never a terminal
	if isTerminal(nil) {
		t.Error("isTerminal(nil) = true, want false")
	}
}
