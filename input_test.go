package tracker

import (
	"errors"
	"testing"

	"github.com/etnz/tracker/date"
)

func TestObservationInput_Parse(t *testing.T) {
	in := ObservationInput{Date: "2024-01-15", Investment: "SP500", Value: "1000.50", Shares: " 10 ", PricePerShare: "100.05"}
	on, o, err := in.Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if on != date.MustParse("2024-01-15") {
		t.Errorf("Parse() date = %v", on)
	}
	shares, invested, price, ok := o.Triple()
	if !ok || shares != 10 || invested != 1000.5 || price != 100.05 {
		t.Errorf("Parse() = %v %v %v %v, want 10 1000.5 100.05 true", shares, invested, price, ok)
	}
	if *o.Value != *o.Invested {
		t.Errorf("Parse() invested = %v, want the entered value %v", *o.Invested, *o.Value)
	}
}

func TestObservationInput_ParseErrors(t *testing.T) {
	valid := ObservationInput{Date: "2024-01-15", Investment: "SP500", Value: "1", Shares: "1", PricePerShare: "1"}

	testCases := []struct {
		name   string
		modify func(*ObservationInput)
		is     error
	}{
		{"missing shares", func(in *ObservationInput) { in.Shares = "" }, ErrIncompleteObservation},
		{"blank price", func(in *ObservationInput) { in.PricePerShare = "  " }, ErrIncompleteObservation},
		{"bad date", func(in *ObservationInput) { in.Date = "15/01/2024" }, ErrMalformedRecord},
		{"not a number", func(in *ObservationInput) { in.Value = "12abc" }, nil},
		{"missing investment", func(in *ObservationInput) { in.Investment = "" }, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.modify(&in)
			_, _, err := in.Parse()
			if err == nil {
				t.Fatalf("Parse() succeeded, want an error")
			}
			if tc.is != nil && !errors.Is(err, tc.is) {
				t.Errorf("Parse() error = %v, want %v", err, tc.is)
			}
		})
	}
}
