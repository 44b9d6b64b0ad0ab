package f2f

import "testing"

func TestPenceString(t *testing.T) {
	cases := []struct {
		in   Pence
		want string
	}{
		{0, "£0.00"},
		{5, "£0.05"},
		{100, "£1.00"},
		{150, "£1.50"},
		{12345, "£123.45"},
		{999999, "£9999.99"},
		{-150, "-£1.50"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("Pence(%d).String() = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestVATRateString(t *testing.T) {
	cases := []struct {
		rate float64
		want string
	}{
		{0, "No VAT"},
		{0.2, "20%"},
		{0.05, "5%"},
		{0.125, "12.5%"},
	}
	for _, c := range cases {
		if got := VATRateString(c.rate); got != c.want {
			t.Errorf("VATRateString(%v) = %q, want %q", c.rate, got, c.want)
		}
	}
}

func TestFormatQty(t *testing.T) {
	cases := []struct {
		qty  float64
		want string
	}{
		{2, "2"},
		{1.5, "1.5"},
		{0.25, "0.25"},
		{12, "12"},
	}
	for _, c := range cases {
		if got := FormatQty(c.qty); got != c.want {
			t.Errorf("FormatQty(%v) = %q, want %q", c.qty, got, c.want)
		}
	}
}
