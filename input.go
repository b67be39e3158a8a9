package tracker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/tracker/date"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ObservationInput is an observation as typed by a user: every field is text.
type ObservationInput struct {
	Date          string `validate:"required"`
	Investment    string `validate:"required"`
	Value         string `validate:"required"`
	Shares        string `validate:"required"`
	PricePerShare string `validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Parse validates the input and converts it to an observation.
//
// The invested amount is the entered value. A missing numeric field yields
// ErrIncompleteObservation, a bad date ErrMalformedRecord.
func (in ObservationInput) Parse() (on date.Date, obs Observation, err error) {
	in.Date = strings.TrimSpace(in.Date)
	in.Investment = strings.TrimSpace(in.Investment)
	in.Value = strings.TrimSpace(in.Value)
	in.Shares = strings.TrimSpace(in.Shares)
	in.PricePerShare = strings.TrimSpace(in.PricePerShare)

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return on, obs, err
		}
		missing := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			missing = append(missing, fe.Field())
		}
		switch verrs[0].Field() {
		case "Date", "Investment":
			return on, obs, fmt.Errorf("missing %s", strings.Join(missing, ", "))
		default:
			return on, obs, fmt.Errorf("%w: missing %s", ErrIncompleteObservation, strings.Join(missing, ", "))
		}
	}

	on, err = date.Parse(in.Date)
	if err != nil {
		return on, obs, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	value, err := parseNumber("value", in.Value)
	if err != nil {
		return on, obs, err
	}
	shares, err := parseNumber("shares", in.Shares)
	if err != nil {
		return on, obs, err
	}
	price, err := parseNumber("price per share", in.PricePerShare)
	if err != nil {
		return on, obs, err
	}
	return on, NewObservation(value, shares, value, price), nil
}

// parseNumber parses a decimal number as typed by a user.
func parseNumber(field, s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, s, err)
	}
	return d.InexactFloat64(), nil
}
