// internal/util/util_test.go
package util

import "testing"

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "no truncation", in: "hello", max: 10, want: "hello"},
		{name: "ascii truncation", in: "helloworld", max: 5, want: "hello…"},
		{name: "multibyte truncation", in: "こんにちは世界", max: 4, want: "こんにち…"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateRunes(tt.in, tt.max); got != tt.want {
				t.Fatalf("TruncateRunes(%q,%d)=%q want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestTruncateToWidth(t *testing.T) {
	t.Parallel()

	input := "line1\nSecondLine"
	want := "line1\nSecon…"
	if got := TruncateToWidth(input, 5); got != want {
		t.Fatalf("TruncateToWidth=%q want %q", got, want)
	}
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	if got := Min(3, 7); got != 3 {
		t.Fatalf("Min(3,7)=%d want 3", got)
	}
	if got := Max(3, 7); got != 7 {
		t.Fatalf("Max(3,7)=%d want 7", got)
	}
}
