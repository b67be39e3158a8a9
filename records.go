package tracker

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/tracker/date"
)

// Functions in this file never modify their arguments: they return a new
// slice of records, and clone every record they change.

// find returns the index of the record on the same calendar day as on, or -1.
// Records with an unparseable date never match.
func find(records []Record, on date.Date) int {
	return slices.IndexFunc(records, func(r Record) bool {
		d, err := date.Parse(r.Date)
		return err == nil && d == on
	})
}

// Upsert merges the observation of investment into the record dated on.
//
// If a record exists for that date, only the investment's observation is
// replaced and other investments are left untouched. Otherwise a new record
// holding only that observation is appended.
func Upsert(records []Record, on string, investment string, obs Observation) ([]Record, error) {
	d, err := date.Parse(on)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	if strings.TrimSpace(investment) == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownInvestment)
	}

	out := slices.Clone(records)
	i := find(out, d)
	if i < 0 {
		return append(out, Record{Date: d.String(), Observations: map[string]Observation{investment: obs}}), nil
	}
	r := out[i].clone()
	if r.Observations == nil {
		r.Observations = make(map[string]Observation)
	}
	r.Observations[investment] = obs
	out[i] = r
	return out, nil
}

// Remove returns records without the one whose date is exactly on.
// It is a no-op when there is no such record.
func Remove(records []Record, on string) []Record {
	return slices.DeleteFunc(slices.Clone(records), func(r Record) bool { return r.Date == on })
}

// RemoveInvestment strips every field of the named investment from all records.
// Records left without observations are kept: the date was still recorded.
func RemoveInvestment(records []Record, name string) []Record {
	out := slices.Clone(records)
	for i, r := range out {
		if _, ok := r.Observations[name]; !ok {
			continue
		}
		c := r.clone()
		delete(c.Observations, name)
		out[i] = c
	}
	return out
}

// Replace swaps the record sharing rec's calendar date for rec.
// The date must be valid and a record must exist on that date.
func Replace(records []Record, rec Record) ([]Record, error) {
	d, err := date.Parse(rec.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	i := find(records, d)
	if i < 0 {
		return nil, fmt.Errorf("no record on %s", d)
	}
	out := slices.Clone(records)
	rec = rec.clone()
	rec.Date = d.String()
	out[i] = rec
	return out, nil
}
