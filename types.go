package tracker

import (
	"maps"
	"math"
)

// Investment is a named position tracked over time.
// Name is the identity; Color is only used by presentation layers.
type Investment struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Observation is what was recorded for one investment on one date.
// A nil field means it was not observed, which is different from zero.
type Observation struct {
	Value         *float64 `json:"value,omitempty"`
	Shares        *float64 `json:"shares,omitempty"`
	Invested      *float64 `json:"invested,omitempty"`
	PricePerShare *float64 `json:"price_per_share,omitempty"`
}

// NewObservation returns an observation with all four fields set.
func NewObservation(value, shares, invested, pricePerShare float64) Observation {
	return Observation{
		Value:         F(value),
		Shares:        F(shares),
		Invested:      F(invested),
		PricePerShare: F(pricePerShare),
	}
}

// F returns a pointer to v, to fill Observation fields.
func F(v float64) *float64 { return &v }

// defined reports whether p holds a usable number.
func defined(p *float64) bool { return p != nil && !math.IsNaN(*p) }

// Price returns the price per share if it is defined.
func (o Observation) Price() (float64, bool) {
	if !defined(o.PricePerShare) {
		return 0, false
	}
	return *o.PricePerShare, true
}

// Triple returns shares, invested and price per share when all three are
// defined. A partial triple is incomplete as a whole.
func (o Observation) Triple() (shares, invested, price float64, ok bool) {
	if !defined(o.Shares) || !defined(o.Invested) || !defined(o.PricePerShare) {
		return 0, 0, 0, false
	}
	return *o.Shares, *o.Invested, *o.PricePerShare, true
}

// IsEmpty reports whether no field is set.
func (o Observation) IsEmpty() bool {
	return o.Value == nil && o.Shares == nil && o.Invested == nil && o.PricePerShare == nil
}

// Record holds every observation made on a single calendar date.
//
// Date is kept as supplied by the host and parsed by the engine, so that a
// malformed date is reported instead of silently skipped.
type Record struct {
	Date         string                 `json:"date"`
	Observations map[string]Observation `json:"observations,omitempty"`
}

// Get returns the observation for the named investment.
func (r Record) Get(name string) (Observation, bool) {
	o, ok := r.Observations[name]
	return o, ok
}

// clone returns a copy of r that shares nothing mutable with it.
// Observation fields are pointers but they are never written through.
func (r Record) clone() Record {
	c := Record{Date: r.Date}
	if r.Observations != nil {
		c.Observations = maps.Clone(r.Observations)
	}
	return c
}

// Point is one entry of an aggregated series: the bucket key and the
// representative price per share of each investment observed in that bucket.
type Point struct {
	Date   string             `json:"date"`
	Prices map[string]float64 `json:"prices"`
}

// Totals are derived figures for one investment or for the whole portfolio.
type Totals struct {
	Shares     float64 `json:"total_shares"`
	Value      float64 `json:"total_value"`
	Invested   float64 `json:"total_invested"`
	ProfitLoss float64 `json:"profit_loss"`
}

// Add returns the elementwise sum of t and u.
func (t Totals) Add(u Totals) Totals {
	return Totals{
		Shares:     t.Shares + u.Shares,
		Value:      t.Value + u.Value,
		Invested:   t.Invested + u.Invested,
		ProfitLoss: t.ProfitLoss + u.ProfitLoss,
	}
}

// Summary holds per-investment totals and their grand total.
type Summary struct {
	PerInvestment map[string]Totals `json:"per_investment"`
	Grand         Totals            `json:"grand"`
}

// Row is a named line of a Summary.
type Row struct {
	Investment
	Totals
}

// Rows returns the per-investment totals in the order of investments.
func (s Summary) Rows(investments []Investment) []Row {
	rows := make([]Row, 0, len(investments))
	for _, inv := range investments {
		rows = append(rows, Row{Investment: inv, Totals: s.PerInvestment[inv.Name]})
	}
	return rows
}

// Snapshot is the full state persisted by a Store.
type Snapshot struct {
	Investments []Investment
	Records     []Record
}
