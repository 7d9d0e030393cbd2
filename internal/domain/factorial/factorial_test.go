package factorial

import (
	"errors"
	"math/big"
	"testing"

	"github.com/jsamuelsen11/factorial-service/internal/domain"
)

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("invalid big integer literal %q", s)
	}
	return v
}

func TestCompute_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int64
		want string
	}{
		{n: 0, want: "1"},
		{n: 1, want: "1"},
		{n: 2, want: "2"},
		{n: 3, want: "6"},
		{n: 10, want: "3628800"},
		{n: 20, want: "2432902008176640000"},
		{n: 25, want: "15511210043330985984000000"},
	}

	for _, tt := range tests {
		t.Run(big.NewInt(tt.n).String(), func(t *testing.T) {
			t.Parallel()

			got, err := Of(tt.n)
			if err != nil {
				t.Fatalf("Of(%d) error = %v", tt.n, err)
			}
			if got.Cmp(mustBig(t, tt.want)) != 0 {
				t.Errorf("Of(%d) = %s, want %s", tt.n, got, tt.want)
			}
		})
	}
}

func TestCompute_NegativeInputIsDomainError(t *testing.T) {
	t.Parallel()

	for _, n := range []int64{-1, -100} {
		got, err := Of(n)
		if err == nil {
			t.Fatalf("Of(%d) = %s, want error", n, got)
		}
		if got != nil {
			t.Errorf("Of(%d) returned value %s alongside error", n, got)
		}
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("errors.Is(err, ErrInvalidInput) = false for n=%d, got %v", n, err)
		}
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("errors.Is(err, ErrValidation) = false for n=%d", n)
		}

		var ierr *InvalidInputError
		if !errors.As(err, &ierr) {
			t.Fatalf("errors.As(err, *InvalidInputError) = false for n=%d", n)
		}
		if ierr.N.Int64() != n {
			t.Errorf("InvalidInputError.N = %s, want %d", ierr.N, n)
		}
		if ierr.ErrorCode() != CodeInvalidInput {
			t.Errorf("ErrorCode() = %q, want %q", ierr.ErrorCode(), CodeInvalidInput)
		}
	}
}

func TestCompute_HugeNegativeInput(t *testing.T) {
	t.Parallel()

	n := mustBig(t, "-123456789012345678901234567890")
	if _, err := Compute(n); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Compute(%s) error = %v, want ErrInvalidInput", n, err)
	}
}

func TestCompute_NilInput(t *testing.T) {
	t.Parallel()

	_, err := Compute(nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Compute(nil) error = %v, want ErrInvalidInput", err)
	}
}

func TestCompute_RecurrenceHolds(t *testing.T) {
	t.Parallel()

	prev, err := Of(0)
	if err != nil {
		t.Fatalf("Of(0) error = %v", err)
	}

	for n := int64(1); n <= 60; n++ {
		got, err := Of(n)
		if err != nil {
			t.Fatalf("Of(%d) error = %v", n, err)
		}
		want := new(big.Int).Mul(prev, big.NewInt(n))
		if got.Cmp(want) != 0 {
			t.Fatalf("Of(%d) = %s, want Of(%d)*%d = %s", n, got, n-1, n, want)
		}
		prev = got
	}
}

func TestCompute_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	n := big.NewInt(12)
	if _, err := Compute(n); err != nil {
		t.Fatalf("Compute error = %v", err)
	}
	if n.Int64() != 12 {
		t.Errorf("input mutated to %s, want 12", n)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	t.Parallel()

	a, _ := Of(30)
	b, _ := Of(30)
	if a.Cmp(b) != 0 {
		t.Errorf("Of(30) not idempotent: %s != %s", a, b)
	}
	if a == b {
		t.Error("Of(30) returned the same pointer twice, want fresh allocations")
	}
}

func TestDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    *big.Int
		want int
	}{
		{name: "nil", v: nil, want: 0},
		{name: "zero", v: big.NewInt(0), want: 1},
		{name: "single digit", v: big.NewInt(6), want: 1},
		{name: "10!", v: big.NewInt(3628800), want: 7},
		{name: "negative", v: big.NewInt(-120), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Digits(tt.v); got != tt.want {
				t.Errorf("Digits(%v) = %d, want %d", tt.v, got, tt.want)
			}
		})
	}
}

func TestNewResult(t *testing.T) {
	t.Parallel()

	n := big.NewInt(100)
	res, err := NewResult(n)
	if err != nil {
		t.Fatalf("NewResult(100) error = %v", err)
	}
	if res.Input.Cmp(n) != 0 {
		t.Errorf("Input = %s, want 100", res.Input)
	}
	if res.Digits != 158 {
		t.Errorf("Digits = %d, want 158", res.Digits)
	}

	if _, err := NewResult(big.NewInt(-5)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NewResult(-5) error = %v, want ErrInvalidInput", err)
	}
}

func BenchmarkCompute1000(b *testing.B) {
	n := big.NewInt(1000)
	for b.Loop() {
		_, _ = Compute(n)
	}
}

func TestParseInput(t *testing.T) {
	t.Parallel()

	valid := []struct {
		raw  string
		want string
	}{
		{raw: "0", want: "0"},
		{raw: "10", want: "10"},
		{raw: "  42\n", want: "42"},
		{raw: "+7", want: "7"},
		{raw: "-3", want: "-3"},
		{raw: "123456789012345678901234567890", want: "123456789012345678901234567890"},
	}
	for _, tt := range valid {
		t.Run("valid "+tt.raw, func(t *testing.T) {
			t.Parallel()
			got, err := ParseInput(tt.raw, "path")
			if err != nil {
				t.Fatalf("ParseInput(%q) error = %v", tt.raw, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseInput(%q) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}

	for _, raw := range []string{"", "   ", "abc", "1.5", "1e3", "0x10", "1_000", "5!"} {
		t.Run("invalid "+raw, func(t *testing.T) {
			t.Parallel()
			_, err := ParseInput(raw, "form")

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ParseInput(%q) error = %v, want *domain.ValidationError", raw, err)
			}
			if verr.Source != "form" || verr.Code != domain.CodeInvalidNumber {
				t.Errorf("source/code = %q/%q, want form/%s", verr.Source, verr.Code, domain.CodeInvalidNumber)
			}
			if verr.Fields["number"] != domain.MsgNotInteger {
				t.Errorf("Fields[number] = %q, want %q", verr.Fields["number"], domain.MsgNotInteger)
			}
			if errors.Is(err, ErrInvalidInput) {
				t.Error("a parse error must not match ErrInvalidInput")
			}
		})
	}
}
