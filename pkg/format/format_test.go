package format

import "testing"

func TestMoney(t *testing.T) {
	cases := []struct {
		amount   float64
		currency string
		want     string
	}{
		{0, "FC", "0 FC"},
		{500, "FC", "500 FC"},
		{1000, "FC", "1 000 FC"},
		{1234567, "FC", "1 234 567 FC"},
		{1500.75, "FC", "1 500 FC"},
		{-42000, "FC", "-42 000 FC"},
		{800, "", "800"},
	}
	for _, c := range cases {
		if got := Money(c.amount, c.currency); got != c.want {
			t.Errorf("Money(%v, %q) = %q, want %q", c.amount, c.currency, got, c.want)
		}
	}
}

func TestDuration(t *testing.T) {
	cases := []struct {
		hours int
		want  string
	}{
		{0, "0h"},
		{5, "5h"},
		{23, "23h"},
		{24, "1d"},
		{48, "2d"},
		{50, "2d 2h"},
		{168, "7d"},
	}
	for _, c := range cases {
		if got := Duration(c.hours); got != c.want {
			t.Errorf("Duration(%d) = %q, want %q", c.hours, got, c.want)
		}
	}
}
