package fernet

import (
	"testing"
)

// A low iteration count keeps these tests fast; DefaultIterations is
// only exercised for its wiring, not at full strength.
const testIterations = 100

func TestDeriveSecret(t *testing.T) {
	salt := []byte("0123456789abcdef")
	secret := DeriveSecret([]byte("correct horse battery staple"), salt, testIterations)

	f, err := New(secret)
	if err != nil {
		t.Fatalf("derived secret does not parse: %v", err)
	}

	token, err := f.Encrypt([]byte("hello"))
	if err != nil {
		t.Fatal(err)
	}
	msg, err := f.Decrypt(token)
	if err != nil {
		t.Fatal(err)
	}
	if string(msg) != "hello" {
		t.Errorf("round trip = %q, want %q", msg, "hello")
	}
}

func TestDeriveSecret_Deterministic(t *testing.T) {
	salt := []byte("0123456789abcdef")
	password := []byte("hunter2")

	first := DeriveSecret(password, salt, testIterations)
	second := DeriveSecret(password, salt, testIterations)
	if first != second {
		t.Error("same password and salt derived different secrets")
	}
}

func TestDeriveSecret_SensitiveToInputs(t *testing.T) {
	salt := []byte("0123456789abcdef")
	base := DeriveSecret([]byte("hunter2"), salt, testIterations)

	tests := []struct {
		name   string
		secret string
	}{
		{"different password", DeriveSecret([]byte("hunter3"), salt, testIterations)},
		{"different salt", DeriveSecret([]byte("hunter2"), []byte("fedcba9876543210"), testIterations)},
		{"different iterations", DeriveSecret([]byte("hunter2"), salt, testIterations+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.secret == base {
				t.Error("derived secret did not change")
			}
		})
	}
}

func TestDeriveSecret_DefaultIterations(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-strength derivation in short mode")
	}

	salt := []byte("0123456789abcdef")
	secret := DeriveSecret([]byte("hunter2"), salt, 0)

	if _, err := New(secret); err != nil {
		t.Errorf("derived secret does not parse: %v", err)
	}
}
