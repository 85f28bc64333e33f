package locale_test

import (
	"context"
	"testing"

	"estate_web/internal/locale"
)

func TestTranslator(t *testing.T) {
	tr, err := locale.NewTranslator()
	if err != nil {
		t.Fatalf("NewTranslator: %v", err)
	}

	if got := tr.T(locale.Cs, "problem_not_found"); got != "Nenalezeno" {
		t.Fatalf("cs not found = %q", got)
	}
	if got := tr.T(locale.En, "problem_not_found"); got != "Not Found" {
		t.Fatalf("en not found = %q", got)
	}
	if got := tr.With(locale.En, "invalid_param", map[string]any{"Param": "beds"}); got != "Parameter beds must be a non-negative whole number." {
		t.Fatalf("template = %q", got)
	}
	if got := tr.T(locale.En, "no_such_message"); got != "no_such_message" {
		t.Fatalf("missing id should echo, got %q", got)
	}
}

func TestTranslator_CzechPlurals(t *testing.T) {
	tr, err := locale.NewTranslator()
	if err != nil {
		t.Fatalf("NewTranslator: %v", err)
	}
	cases := map[int]string{
		1: "1 nemovitost",
		3: "3 nemovitosti",
		7: "7 nemovitostí",
	}
	for n, want := range cases {
		if got := tr.Count(locale.Cs, "listings_count", map[string]any{"Count": n}, n); got != want {
			t.Errorf("Count(%d) = %q, want %q", n, got, want)
		}
	}
	if got := tr.Count(locale.En, "listings_count", map[string]any{"Count": 2}, 2); got != "2 properties" {
		t.Errorf("en plural = %q", got)
	}
}

func TestContextRoundTrip(t *testing.T) {
	if got := locale.FromContext(context.Background()); got != locale.Default {
		t.Fatalf("empty ctx = %s", got)
	}
	ctx := locale.ToContext(context.Background(), locale.Cs)
	if got := locale.FromContext(ctx); got != locale.Cs {
		t.Fatalf("got %s", got)
	}
}
