package crypto

import (
	"bytes"
	"strings"
	"testing"
)

func TestBase64URLRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"simple", []byte("hello")},
		{"hello world", []byte("hello world")},
		{"binary zeros", []byte{0x00, 0x00, 0x00}},
		{"binary all ones", []byte{0xff, 0xff, 0xff}},
		{"binary mixed", []byte{0x00, 0xff, 0x7f, 0x80}},
		{"url unsafe chars", []byte{0xfb, 0xf0}}, // Would produce + or / in standard base64
		{"single byte", []byte{0x42}},
		{"large data", make([]byte, 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := ToBase64URL(tt.data)
			decoded, err := FromBase64URL(encoded)
			if err != nil {
				t.Fatalf("FromBase64URL() error = %v", err)
			}
			if !bytes.Equal(decoded, tt.data) {
				t.Errorf("round trip failed: got %v, want %v", decoded, tt.data)
			}
		})
	}
}

func TestToBase64URL_Padded(t *testing.T) {
	// The Fernet wire format keeps base64 padding
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"one byte", []byte("a"), "YQ=="},
		{"two bytes", []byte("ab"), "YWI="},
		{"three bytes", []byte("abc"), "YWJj"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToBase64URL(tt.data); got != tt.want {
				t.Errorf("ToBase64URL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToBase64URL_URLSafe(t *testing.T) {
	// Data that would produce + and / in standard base64
	data := []byte{0xfb, 0xff, 0x3f, 0xff}

	encoded := ToBase64URL(data)

	if strings.Contains(encoded, "+") {
		t.Errorf("encoded contains '+' which is not URL-safe: %s", encoded)
	}
	if strings.Contains(encoded, "/") {
		t.Errorf("encoded contains '/' which is not URL-safe: %s", encoded)
	}
}

func TestFromBase64URL_AcceptsBothPaddings(t *testing.T) {
	original := []byte("hello world")

	tests := []struct {
		name    string
		encoded string
	}{
		{"with padding", "aGVsbG8gd29ybGQ="},
		{"without padding", "aGVsbG8gd29ybGQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := FromBase64URL(tt.encoded)
			if err != nil {
				t.Fatalf("FromBase64URL() error = %v", err)
			}
			if !bytes.Equal(decoded, original) {
				t.Errorf("FromBase64URL() = %v, want %v", decoded, original)
			}
		})
	}
}

func TestFromBase64URL_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid chars", "!!!invalid!!!"},
		{"standard alphabet", "+/+/"},
		{"spaces in middle", "aGVs bG8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromBase64URL(tt.input); err == nil {
				t.Error("expected error for invalid input")
			}
		})
	}
}
