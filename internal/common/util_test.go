package common

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte("secret")
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestGenerateRandByteArray_Length(t *testing.T) {
	const n = 32
	a := GenerateRandByteArray(n)
	b := GenerateRandByteArray(n)
	if len(a) != n || len(b) != n {
		t.Fatalf("unexpected lengths: %d, %d", len(a), len(b))
	}
	if bytes.Equal(a, b) {
		t.Logf("warning: two GenerateRandByteArray(%d) results are identical; extremely unlikely", n)
	}
}

func TestSentinels_MatchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("%w: write auth_data: %w", ErrStorage, errors.New("disk full"))
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("wrapped error does not match ErrStorage: %v", err)
	}
	if errors.Is(err, ErrValidation) {
		t.Fatalf("storage error must not match ErrValidation")
	}
}
