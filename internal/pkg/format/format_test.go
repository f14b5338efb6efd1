package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestDate(t *testing.T) {
	cases := []struct {
		input time.Time
		want  string
	}{
		{time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "2 Jan 2024"},
		{time.Date(2023, 12, 25, 15, 4, 5, 0, time.UTC), "25 Dec 2023"},
	}
	for _, c := range cases {
		if got := Date(c.input); got != c.want {
			t.Errorf("Date(%v) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestCurrency(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2500000", "$2.5M"},
		{"1000000", "$1.0M"},
		{"1250000", "$1.3M"}, // rounds half up
		{"45000", "$45K"},
		{"45600", "$46K"},
		{"1000", "$1K"},
		{"999", "$999"},
		{"0", "$0"},
		{"123.45", "$123.45"},
	}
	for _, c := range cases {
		amount, err := decimal.NewFromString(c.input)
		if err != nil {
			t.Fatalf("bad decimal %q: %v", c.input, err)
		}
		if got := Currency(amount); got != c.want {
			t.Errorf("Currency(%s) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestAvatarURL(t *testing.T) {
	got := AvatarURL("Jane", "Doe")
	want := "https://api.dicebear.com/7.x/initials/png?seed=Jane%20Doe"
	if got != want {
		t.Errorf("AvatarURL = %q, want %q", got, want)
	}
}
