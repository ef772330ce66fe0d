package ui

import "testing"

func TestUnknownStyleVariantFallsBackToPastel(t *testing.T) {
	for _, v := range []string{"", "neon", " pastel_bakery "} {
		r := New(Options{StyleVariant: v})
		if r.styleVariant != "pastel_bakery" {
			t.Fatalf("variant %q resolved to %q", v, r.styleVariant)
		}
	}
	want := ThemeForVariant("pastel_bakery").Header.Render("title")
	if got := ThemeForVariant("unknown").Header.Render("title"); got != want {
		t.Fatalf("unknown variant did not use the pastel header: %q vs %q", got, want)
	}
}
