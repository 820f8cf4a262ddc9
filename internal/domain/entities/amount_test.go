package entities

import (
	"encoding/json"
	"testing"
)

func TestAmountUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `120.5`, 120.5},
		{"numeric string", `"85"`, 85},
		{"dollar string", `"$45.50"`, 45.5},
		{"empty string", `""`, 0},
		{"garbage string", `"two hours"`, 0},
		{"null", `null`, 0},
		{"negative", `-10`, 0},
		{"bool", `true`, 0},
		{"object", `{"v":1}`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var a Amount
			if err := json.Unmarshal([]byte(tc.in), &a); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if a.Float64() != tc.want {
				t.Fatalf("got %v, want %v", a.Float64(), tc.want)
			}
		})
	}
}

func TestNewAmountSanitizes(t *testing.T) {
	if NewAmount(-5).Float64() != 0 {
		t.Fatalf("negative not coerced to 0")
	}
	if NewAmount(42).Float64() != 42 {
		t.Fatalf("valid value mangled")
	}
}
