package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeExecute(t *testing.T) {
	tests := []struct {
		name       string
		panicValue interface{}
		wantMsg    string
	}{
		{"string panic", "unexpected nil pointer", "panic in Solve: unexpected nil pointer"},
		{"error panic", fmt.Errorf("mat: dimension mismatch"), "panic in Solve: mat: dimension mismatch"},
		{"integer panic", 42, "panic in Solve: 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SafeExecute("Solve", func() error {
				panic(tt.panicValue)
			})
			require.Error(t, err)

			var panicErr *PanicError
			require.True(t, As(err, &panicErr))
			assert.Equal(t, "Solve", panicErr.Operation)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.NotEmpty(t, panicErr.StackTrace)
			assert.Contains(t, panicErr.String(), "Stack trace:")
		})
	}
}

func TestSafeExecute_NoPanic(t *testing.T) {
	assert.NoError(t, SafeExecute("Solve", func() error { return nil }))

	want := NewValueError("Solve", "bad input")
	err := SafeExecute("Solve", func() error { return want })
	assert.Equal(t, want, err)
}

func TestRecover_KeepsExistingError(t *testing.T) {
	original := New("original failure")
	fn := func() (err error) {
		defer Recover(&err, "Fit")
		err = original
		panic("boom")
	}

	err := fn()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic in Fit: boom")
	assert.ErrorIs(t, err, original)
}
