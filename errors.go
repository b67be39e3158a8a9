package tracker

import (
	"errors"

	"github.com/etnz/tracker/date"
)

var (
	// ErrMalformedRecord is returned when a record date cannot be parsed.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrInvalidGranularity is returned for an unknown bucketing selector.
	ErrInvalidGranularity = date.ErrInvalidGranularity

	// ErrIncompleteObservation reports an observation missing one of its
	// numeric fields. The engine never returns it: such observations simply
	// do not contribute. It is reported by the input boundary.
	ErrIncompleteObservation = errors.New("incomplete observation")

	// ErrDuplicateInvestment is returned when adding an investment whose name is taken.
	ErrDuplicateInvestment = errors.New("duplicate investment")

	// ErrUnknownInvestment is returned when referring to an investment that is not in the set.
	ErrUnknownInvestment = errors.New("unknown investment")
)
