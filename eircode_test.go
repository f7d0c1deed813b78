package eircode

import (
	"errors"
	"strings"
	"testing"
)

var (
	defaultMode = Options{}
	strictMode  = Options{Strict: true}
	laxMode     = Options{Lax: true}
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
		want  bool
	}{
		{"upper default", "A65 B2CD", defaultMode, true},
		{"lower default", "a65 b2cd", defaultMode, true},
		{"lower strict", "a65 b2cd", strictMode, false},
		{"upper strict", "A65 B2CD", strictMode, true},
		{"mixed strict", "A65 b2CD", strictMode, false},
		{"no separator default", "a65b2cd", defaultMode, false},
		{"no separator lax", "a65b2cd", laxMode, true},
		{"no separator strict", "a65b2cd", strictMode, false},
		{"many spaces default", "a65     b2cd", defaultMode, true},
		{"many spaces strict", "A65     B2CD", strictMode, true},
		{"tab default", "A65\tB2CD", defaultMode, true},
		{"tab lax", "A65\tB2CD", laxMode, false},
		{"scattered spaces lax", " A 6 5 B 2 C D ", laxMode, true},
		{"trailing space default", "A65 B2CD ", defaultMode, false},
		{"leading space default", " A65 B2CD", defaultMode, false},
		{"trailing space lax", "A65 B2CD ", laxMode, true},
		{"digit first", "165 B2CD", defaultMode, false},
		{"all letters", "DXX WXYZ", defaultMode, true},
		{"all digits after letter", "D02 1234", defaultMode, true},
		{"short uid", "A65 B2C", defaultMode, false},
		{"long uid", "A65 B2CDE", defaultMode, false},
		{"short routing key", "A6 B2CD", defaultMode, false},
		{"punctuation", "A65-B2CD", defaultMode, false},
		{"punctuation lax", "A65-B2CD", laxMode, false},
		{"empty default", "", defaultMode, false},
		{"empty lax", "", laxMode, false},
		{"only spaces lax", "     ", laxMode, false},
		{"only spaces default", "   ", defaultMode, false},
		{"free text", "not an eircode", defaultMode, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Check(tc.input, tc.opts)
			if err != nil {
				t.Fatalf("Check(%q, %+v): unexpected error: %v", tc.input, tc.opts, err)
			}
			if got != tc.want {
				t.Errorf("Check(%q, %+v) = %v, want %v", tc.input, tc.opts, got, tc.want)
			}
		})
	}
}

func TestCheck_NoOptions(t *testing.T) {
	got, err := Check("a65 b2cd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("expected lowercase code to pass without options")
	}

	got, err = Check("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Error("expected empty input to fail")
	}
}

func TestCheck_LetterORejectedEverywhere(t *testing.T) {
	inputs := []string{
		"O65 B2CD", "A0O B2CD", "AO5 B2CD",
		"A65 OBCD", "A65 BOCD", "A65 B2OD", "A65 B2CO",
		"o65 b2cd", "a65 b2co",
	}
	for _, in := range inputs {
		for _, opts := range []Options{defaultMode, strictMode, laxMode} {
			got, err := Check(in, opts)
			if err != nil {
				t.Fatalf("Check(%q, %+v): %v", in, opts, err)
			}
			if got {
				t.Errorf("Check(%q, %+v) = true, want false", in, opts)
			}
		}
		if _, _, err := Split(in); err == nil {
			t.Errorf("Split(%q) succeeded, want error", in)
		}
	}

	// Replacing the O with a zero makes the same codes valid.
	for _, in := range inputs[1:7] {
		fixed := strings.ReplaceAll(in, "O", "0")
		if ok, _ := Check(fixed); !ok {
			t.Errorf("Check(%q) = false, want true", fixed)
		}
	}
}

func TestCheck_StrictAndLax(t *testing.T) {
	for _, in := range []string{"", "A65 B2CD", "garbage"} {
		got, err := Check(in, Options{Strict: true, Lax: true})
		if !errors.Is(err, ErrConfiguration) {
			t.Errorf("Check(%q): expected ErrConfiguration, got %v", in, err)
		}
		if got {
			t.Errorf("Check(%q): expected false alongside error", in)
		}
	}
}

func TestCheck_TooManyOptions(t *testing.T) {
	_, err := Check("A65 B2CD", defaultMode, strictMode)
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		input   string
		wantRK  string
		wantUID string
	}{
		{"a65 b2cd", "a65", "b2cd"},
		{"A65 B2CD", "A65", "B2CD"},
		{"A65B2CD", "A65", "B2CD"},
		{"d02\t\t x285", "d02", "x285"},
		{"A65 b2Cd", "A65", "b2Cd"},
	}
	for _, tc := range tests {
		rk, id, err := Split(tc.input)
		if err != nil {
			t.Fatalf("Split(%q): %v", tc.input, err)
		}
		if rk != tc.wantRK || id != tc.wantUID {
			t.Errorf("Split(%q) = (%q, %q), want (%q, %q)", tc.input, rk, id, tc.wantRK, tc.wantUID)
		}
	}
}

func TestSplit_Invalid(t *testing.T) {
	for _, in := range []string{"", "A65", "A65 B2C", " A65 B2CD", "A65 B2CD ", "165 B2CD", "A65-B2CD"} {
		rk, id, err := Split(in)
		if !errors.Is(err, ErrInvalidEircode) {
			t.Errorf("Split(%q): expected ErrInvalidEircode, got %v", in, err)
		}
		if rk != "" || id != "" {
			t.Errorf("Split(%q): expected empty parts on error, got (%q, %q)", in, rk, id)
		}
		var ie *InvalidEircodeError
		if !errors.As(err, &ie) || ie.Input != in {
			t.Errorf("Split(%q): expected *InvalidEircodeError carrying input, got %#v", in, err)
		}
	}
}

func TestNormalise(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a65b2cd", "A65 B2CD"},
		{"A65 B2CD", "A65 B2CD"},
		{"  a65 \t b2cd  ", "A65 B2CD"},
		{"a 6 5 b 2 c d", "A65 B2CD"},
		{"d02\nx285", "D02 X285"},
	}
	for _, tc := range tests {
		got, err := Normalise(tc.input)
		if err != nil {
			t.Fatalf("Normalise(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("Normalise(%q) = %q, want %q", tc.input, got, tc.want)
		}
		ok, err := Check(got, strictMode)
		if err != nil || !ok {
			t.Errorf("normalised %q does not pass strict check (err=%v)", got, err)
		}
	}
}

func TestNormalise_Invalid(t *testing.T) {
	for _, in := range []string{"not an eircode", "", "A65 B2C", "O65 B2CD", "A65-B2CD"} {
		got, err := Normalise(in)
		if !errors.Is(err, ErrInvalidEircode) {
			t.Errorf("Normalise(%q): expected ErrInvalidEircode, got %v", in, err)
		}
		if got != "" {
			t.Errorf("Normalise(%q) = %q on error, want empty", in, got)
		}
	}
}

func TestNormalise_Idempotent(t *testing.T) {
	for _, in := range []string{"a65b2cd", "A65   B2CD", "d02\tx285", " t12 ab34 ", "w23\nf854"} {
		once, err := Normalise(in)
		if err != nil {
			t.Fatalf("Normalise(%q): %v", in, err)
		}
		twice, err := Normalise(once)
		if err != nil {
			t.Fatalf("Normalise(%q): %v", once, err)
		}
		if once != twice {
			t.Errorf("Normalise not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalize_Alias(t *testing.T) {
	got, err := Normalize("a65b2cd")
	if err != nil || got != "A65 B2CD" {
		t.Errorf("Normalize = %q, %v", got, err)
	}
}

func TestSplitRoundTrip(t *testing.T) {
	rk, id, err := Split("a65 b2cd")
	if err != nil {
		t.Fatal(err)
	}
	if rk == "" || id == "" {
		t.Fatalf("expected non-empty parts, got %q %q", rk, id)
	}
	want, _ := Normalise("a65 b2cd")
	if got := strings.ToUpper(rk + " " + id); got != want {
		t.Errorf("reconstructed %q, want %q", got, want)
	}
}

func TestCheck_Concurrent(t *testing.T) {
	t.Parallel()
	done := make(chan bool)
	for i := 0; i < 16; i++ {
		go func() {
			ok, _ := Check("a65 b2cd")
			done <- ok
		}()
	}
	for i := 0; i < 16; i++ {
		if !<-done {
			t.Error("concurrent Check returned false")
		}
	}
}

func TestIsRoutingKey(t *testing.T) {
	for _, rk := range []string{"D02", "A65", "T12", "DXX"} {
		if !IsRoutingKey(rk) {
			t.Errorf("IsRoutingKey(%q) = false", rk)
		}
	}
	for _, rk := range []string{"", "d02", "O65", "D0O", "102", "D02 ", "D2"} {
		if IsRoutingKey(rk) {
			t.Errorf("IsRoutingKey(%q) = true", rk)
		}
	}
}
