package http

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestHex32Validation(t *testing.T) {
	type P struct {
		CustomerID string `validate:"hex32"`
	}
	cv := NewValidator()

	// valid: 32-char lowercase hex
	ok := P{CustomerID: strings.Repeat("a", 32)}
	if err := cv.Validate(ok); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	// invalid samples
	for _, s := range []string{
		"",                                  // empty
		strings.Repeat("A", 32),             // uppercase
		"deadbeef",                          // too short
		strings.Repeat("g", 32),             // non-hex char
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",   // 31 chars
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88x", // 33 with extra
	} {
		bad := P{CustomerID: s}
		err := cv.Validate(bad)
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		found := false
		for _, e := range fe {
			if e.Field == "CustomerID" && strings.Contains(e.Message, "32-char lowercase hex") {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected hex32 message for %q, got: %+v", s, fe)
		}
	}
}

func TestDecimalValidation(t *testing.T) {
	type P struct {
		Amount decimal.Decimal `validate:"positive,dec2"`
	}
	cv := NewValidator()

	for _, v := range []string{"1", "0.01", "1500.50", "5000000"} {
		if err := cv.Validate(P{Amount: decimal.RequireFromString(v)}); err != nil {
			t.Fatalf("expected OK for %s, got %v", v, err)
		}
	}

	cases := map[string]string{
		"0":     "greater than 0",
		"-3.14": "greater than 0",
		"1.005": "at most 2 decimal places",
	}
	for v, msg := range cases {
		err := cv.Validate(P{Amount: decimal.RequireFromString(v)})
		if err == nil {
			t.Fatalf("expected error for %s", v)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "Amount", msg) {
			t.Fatalf("expected %q for %s, got %+v", msg, v, fe)
		}
	}
}

func TestLoanStatusValidation(t *testing.T) {
	type P struct {
		Status string `validate:"required,loanstatus"`
	}
	cv := NewValidator()

	for _, s := range []string{"pending", "approved", "declined"} {
		if err := cv.Validate(P{Status: s}); err != nil {
			t.Fatalf("expected OK for %q, got %v", s, err)
		}
	}
	err := cv.Validate(P{Status: "paid"})
	if err == nil {
		t.Fatalf("expected error for paid")
	}
	if fe := ToFieldErrors(err); !containsFieldMsg(fe, "Status", "one of pending") {
		t.Fatalf("unexpected mapping: %+v", fe)
	}
}

func TestDec2Validation(t *testing.T) {
	type P struct {
		Rate float64 `validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{1.29, 2.00, 0.9, 1.2} {
		if err := cv.Validate(P{Rate: v}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{1.234, 2.9999} {
		err := cv.Validate(P{Rate: v})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Rate", "at most 2 decimal places") {
			t.Fatalf("expected 'at most 2 decimal places' for %v, got %+v", v, fe)
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name string  `validate:"required"`
		Min  int     `validate:"gte=10"`
		Max  int     `validate:"lte=5"`
		ROI  float64 `validate:"dec2,gte=0.90,lte=1.29"`
	}
	cv := NewValidator()

	// Intentionally violate all
	err := cv.Validate(P{
		Name: "",    // required
		Min:  9,     // gte=10
		Max:  6,     // lte=5
		ROI:  1.333, // dec2 + lte fail, but dec2 will trigger first
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	// required
	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing 'is required' for Name: %+v", fe)
	}
	// gte
	if !containsFieldMsg(fe, "Min", "greater than or equal to 10") {
		t.Fatalf("missing gte message for Min: %+v", fe)
	}
	// lte
	if !containsFieldMsg(fe, "Max", "less than or equal to 5") {
		t.Fatalf("missing lte message for Max: %+v", fe)
	}
	// dec2 mapping should show for ROI
	if !containsFieldMsg(fe, "ROI", "at most 2 decimal places") {
		t.Fatalf("missing dec2 message for ROI: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}

func TestDecimalValidation_UnboundedIsCheap(t *testing.T) {
	type P struct {
		Amount decimal.Decimal `validate:"dec2"`
		Text   string          `validate:"dec2"`
	}
	cv := NewValidator()

	start := time.Now()
	err := cv.Validate(P{Amount: decimal.RequireFromString("1e10000000"), Text: "1e10000000"})
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("validation took %v", elapsed)
	}
	fe := ToFieldErrors(err)
	if !containsFieldMsg(fe, "Amount", "at most 2 decimal places") || !containsFieldMsg(fe, "Text", "at most 2 decimal places") {
		t.Fatalf("expected dec2 failures, got %+v", fe)
	}

	// text that is not a number at all fails instead of panicking
	if err := cv.Validate(P{Amount: decimal.NewFromInt(1), Text: "abc"}); err == nil {
		t.Fatalf("expected dec2 error for non-numeric text")
	}
}
