package codec

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestNegotiate(t *testing.T) {
	tests := []struct {
		header string
		want   Scheme
	}{
		{"", Identity},
		{"gzip", Gzip},
		{"GZIP", Gzip},
		{"deflate, gzip", Gzip},
		{"encoding-1, gzip, encoding-2", Gzip},
		{"gzip;q=0", Gzip},
		{"deflate", Identity},
		{"invalid-encoding", Identity},
		{"x-gzip", Identity},
		{"br, zstd", Identity},
	}
	for _, tt := range tests {
		if got := Negotiate(tt.header); got != tt.want {
			t.Errorf("Negotiate(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}

func TestSchemeName(t *testing.T) {
	if Gzip.Name() != "gzip" {
		t.Errorf("Expected gzip, got %q", Gzip.Name())
	}
	if Identity.Name() != "" {
		t.Errorf("Expected empty name for identity, got %q", Identity.Name())
	}
}

func TestEncodeIdentity(t *testing.T) {
	body := []byte("hello")
	out, err := Encode(body, Identity)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !bytes.Equal(out, body) {
		t.Errorf("Expected identity output %q, got %q", body, out)
	}
}

func TestGzipRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	inputs := [][]byte{
		nil,
		[]byte("hello"),
		bytes.Repeat([]byte("abc"), 10000),
	}
	random := make([]byte, 4096)
	rng.Read(random)
	inputs = append(inputs, random)

	for _, in := range inputs {
		enc, err := Encode(in, Gzip)
		if err != nil {
			t.Fatalf("Encode() error: %v", err)
		}
		if len(enc) < 2 || enc[0] != 0x1f || enc[1] != 0x8b {
			t.Fatalf("Expected gzip magic header, got % x", enc)
		}
		dec, err := Decode(enc, Gzip)
		if err != nil {
			t.Fatalf("Decode() error: %v", err)
		}
		if !bytes.Equal(dec, in) {
			t.Errorf("Round trip mismatch for %d-byte input", len(in))
		}
	}
}
