package tracker

import (
	"fmt"
	"slices"

	"github.com/etnz/tracker/date"
)

// dated is a record with its parsed date.
type dated struct {
	on date.Date
	Record
}

// sortRecords parses every record date and returns the records stably sorted
// in calendar order, most recent first when desc is true.
// Records sharing a date keep their input order.
func sortRecords(records []Record, desc bool) ([]dated, error) {
	list := make([]dated, 0, len(records))
	for i, r := range records {
		on, err := date.Parse(r.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: record #%d: %w", ErrMalformedRecord, i, err)
		}
		list = append(list, dated{on: on, Record: r})
	}
	slices.SortStableFunc(list, func(a, b dated) int {
		if desc {
			return b.on.Compare(a.on)
		}
		return a.on.Compare(b.on)
	})
	return list, nil
}

// Aggregate folds records into one point per calendar bucket of granularity g.
//
// Records are sorted chronologically first. With date.Day every record yields
// its own point, keyed by its own date. Otherwise records are grouped by
// bucket key (starting Sunday for weeks, "2006-01" for months, "2006" for
// years) and, for each investment, the price of the latest record of the
// bucket that carries one is kept. Investments without a price in a bucket are
// absent from that point. Points are returned in chronological order.
func Aggregate(records []Record, investments []Investment, g date.Granularity) ([]Point, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("aggregate: %w %v", ErrInvalidGranularity, g)
	}
	sorted, err := sortRecords(records, false)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}

	points := make([]Point, 0, len(sorted))
	if g == date.Day {
		for _, r := range sorted {
			points = append(points, Point{Date: r.Date, Prices: prices(r.Record, investments, nil)})
		}
		return points, nil
	}

	index := make(map[string]int) // bucket key -> position in points
	for _, r := range sorted {
		key := r.on.Key(g)
		i, ok := index[key]
		if !ok {
			i = len(points)
			index[key] = i
			points = append(points, Point{Date: key, Prices: make(map[string]float64)})
		}
		prices(r.Record, investments, points[i].Prices)
	}
	return points, nil
}

// prices writes into dst the defined prices of r for the given investments,
// overwriting previous values. dst is allocated when nil.
func prices(r Record, investments []Investment, dst map[string]float64) map[string]float64 {
	if dst == nil {
		dst = make(map[string]float64)
	}
	for _, inv := range investments {
		if p, ok := r.Observations[inv.Name].Price(); ok {
			dst[inv.Name] = p
		}
	}
	return dst
}
