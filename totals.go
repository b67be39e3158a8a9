package tracker

import "fmt"

// ComputeTotals derives per-investment and grand totals from the full set of
// records.
//
// For each investment, shares and invested amounts are summed over every
// record holding a complete observation (shares, invested and price). They
// are contributions, not balances. The value uses the latest price: the price
// of the most recent record defining one. Records are sorted internally so
// the input order does not matter.
func ComputeTotals(records []Record, investments []Investment) (Summary, error) {
	sorted, err := sortRecords(records, true)
	if err != nil {
		return Summary{}, fmt.Errorf("totals: %w", err)
	}

	s := Summary{PerInvestment: make(map[string]Totals, len(investments))}
	for _, inv := range investments {
		t := totalsOf(sorted, inv.Name)
		s.PerInvestment[inv.Name] = t
		s.Grand = s.Grand.Add(t)
	}
	return s, nil
}

// totalsOf computes the totals of one investment over records sorted most
// recent first.
func totalsOf(sorted []dated, name string) Totals {
	var t Totals
	var latest float64
	found := false
	for _, r := range sorted {
		o, ok := r.Observations[name]
		if !ok {
			continue
		}
		if !found {
			latest, found = o.Price()
		}
		shares, invested, _, ok := o.Triple()
		if !ok {
			continue
		}
		t.Shares += shares
		t.Invested += invested
	}
	t.Value = t.Shares * latest
	t.ProfitLoss = t.Value - t.Invested
	return t
}
