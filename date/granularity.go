package date

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidGranularity is returned when a granularity selector is not one of
// day, week, month or year.
var ErrInvalidGranularity = errors.New("invalid granularity")

// Granularity is the size of the calendar bucket observations are grouped into.
type Granularity int

const (
	Day Granularity = iota
	Week
	Month
	Year
)

// Granularities lists every valid granularity, smallest first.
var Granularities = []Granularity{Day, Week, Month, Year}

func (g Granularity) String() string {
	switch g {
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	default:
		return fmt.Sprintf("granularity(%d)", int(g))
	}
}

// Valid reports whether g is one of the known granularities.
func (g Granularity) Valid() bool { return g >= Day && g <= Year }

// ParseGranularity parses a granularity selector. It never defaults: unknown
// values return an error wrapping ErrInvalidGranularity.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "daily":
		return Day, nil
	case "week", "weekly":
		return Week, nil
	case "month", "monthly":
		return Month, nil
	case "year", "yearly":
		return Year, nil
	default:
		return Day, fmt.Errorf("%w %q: want one of day, week, month, year", ErrInvalidGranularity, s)
	}
}

// Set implements flag.Value.
func (g *Granularity) Set(s string) error {
	v, err := ParseGranularity(s)
	if err != nil {
		return err
	}
	*g = v
	return nil
}
