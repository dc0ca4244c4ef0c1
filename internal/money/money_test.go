package money

import (
	"errors"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		fraction int64
		want     int64
		wantErr  error
	}{
		{name: "two decimals", text: "12.34", fraction: 100, want: 1234},
		{name: "no fractional digits", text: "12", fraction: 100, want: 1200},
		{name: "short fraction padded", text: "12.5", fraction: 100, want: 1250},
		{name: "excess digits truncated", text: "12.345", fraction: 100, want: 1234},
		{name: "grouping commas stripped", text: "1,234.56", fraction: 100, want: 123456},
		{name: "negative", text: "-12.34", fraction: 100, want: -1234},
		{name: "negative below one major unit", text: "-0.50", fraction: 100, want: -50},
		{name: "positive below one major unit", text: "0.50", fraction: 100, want: 50},
		{name: "explicit plus", text: "+3.10", fraction: 100, want: 310},
		{name: "empty decodes to zero", text: "", fraction: 100, want: 0},
		{name: "whitespace only decodes to zero", text: "   ", fraction: 100, want: 0},
		{name: "bare fractional part", text: ".75", fraction: 100, want: 75},
		{name: "negative bare fractional part", text: "-.75", fraction: 100, want: -75},
		{name: "whole units only", text: "42", fraction: 1, want: 42},
		{name: "fraction of one drops decimals", text: "42.9", fraction: 1, want: 42},
		{name: "three decimals", text: "1.234", fraction: 1000, want: 1234},
		{name: "one decimal", text: "7.5", fraction: 10, want: 75},
		{name: "junk text", text: "abc", fraction: 100, wantErr: ErrMalformedAmount},
		{name: "embedded letters", text: "12a.00", fraction: 100, wantErr: ErrMalformedAmount},
		{name: "two decimal points", text: "1.2.3", fraction: 100, wantErr: ErrMalformedAmount},
		{name: "sign only", text: "-", fraction: 100, wantErr: ErrMalformedAmount},
		{name: "interior sign", text: "1-2", fraction: 100, wantErr: ErrMalformedAmount},
		{name: "zero fraction", text: "1.00", fraction: 0, wantErr: ErrInvalidCommodity},
		{name: "negative fraction", text: "1.00", fraction: -100, wantErr: ErrInvalidCommodity},
		{name: "non power of ten fraction", text: "1.00", fraction: 250, wantErr: ErrInvalidCommodity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.text, tt.fraction)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Decode(%q, %d) error = %v, want %v", tt.text, tt.fraction, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode(%q, %d) unexpected error: %v", tt.text, tt.fraction, err)
			}
			if got != tt.want {
				t.Errorf("Decode(%q, %d) = %d, want %d", tt.text, tt.fraction, got, tt.want)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		minor    int64
		fraction int64
		want     string
	}{
		{name: "two decimals", minor: 1234, fraction: 100, want: "12.34"},
		{name: "pads fractional digits", minor: 1205, fraction: 100, want: "12.05"},
		{name: "whole amount keeps decimals", minor: 1200, fraction: 100, want: "12.00"},
		{name: "negative", minor: -1234, fraction: 100, want: "-12.34"},
		{name: "negative below one major unit", minor: -50, fraction: 100, want: "-0.50"},
		{name: "zero", minor: 0, fraction: 100, want: "0.00"},
		{name: "fraction of one renders integer", minor: 42, fraction: 1, want: "42"},
		{name: "negative integer commodity", minor: -7, fraction: 1, want: "-7"},
		{name: "three decimals", minor: 1234, fraction: 1000, want: "1.234"},
		{name: "one decimal", minor: 75, fraction: 10, want: "7.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.minor, tt.fraction)
			if err != nil {
				t.Fatalf("Encode(%d, %d) unexpected error: %v", tt.minor, tt.fraction, err)
			}
			if got != tt.want {
				t.Errorf("Encode(%d, %d) = %q, want %q", tt.minor, tt.fraction, got, tt.want)
			}
		})
	}

	if _, err := Encode(100, 20); !errors.Is(err, ErrInvalidCommodity) {
		t.Errorf("Encode with fraction 20: error = %v, want ErrInvalidCommodity", err)
	}
}

// Every decode/encode pair must agree on the numeric value: "12" and "12.00"
// both decode to 1200 and both re-encode to "12.00".
func TestRoundTrip(t *testing.T) {
	for _, fraction := range []int64{1, 10, 100, 1000} {
		inputs := []string{"0", "1", "12", "-3", "5.5", "12.34", "-0.50", "999.999", "1,000"}
		for _, s := range inputs {
			minor, err := Decode(s, fraction)
			if err != nil {
				t.Fatalf("Decode(%q, %d): %v", s, fraction, err)
			}
			text, err := Encode(minor, fraction)
			if err != nil {
				t.Fatalf("Encode(%d, %d): %v", minor, fraction, err)
			}
			again, err := Decode(text, fraction)
			if err != nil {
				t.Fatalf("Decode(%q, %d): %v", text, fraction, err)
			}
			if again != minor {
				t.Errorf("round trip at fraction %d: %q -> %d -> %q -> %d", fraction, s, minor, text, again)
			}
		}
	}
}
