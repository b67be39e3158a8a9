package tracker

import (
	"errors"
	"slices"
	"testing"
)

func TestComputeTotals_Scenario(t *testing.T) {
	records := []Record{
		rec("2024-01-01", "A", NewObservation(1000, 10, 1000, 100)),
		rec("2024-02-01", "A", NewObservation(1200, 10, 1200, 120)),
	}
	got, err := ComputeTotals(records, invs("A"))
	if err != nil {
		t.Fatalf("ComputeTotals() error = %v", err)
	}
	want := Totals{Shares: 20, Invested: 2200, Value: 2400, ProfitLoss: 200}
	if got.PerInvestment["A"] != want {
		t.Errorf("ComputeTotals()[A] = %+v, want %+v", got.PerInvestment["A"], want)
	}
	if got.Grand != want {
		t.Errorf("ComputeTotals().Grand = %+v, want %+v", got.Grand, want)
	}
}

func TestComputeTotals_GrandIsSum(t *testing.T) {
	records := []Record{
		rec("2024-01-01", "A", obs(1000, 10, 100), "B", obs(500, 50, 10)),
		rec("2024-03-01", "B", obs(400, 40, 10)),
		rec("2024-04-01", "B", Observation{PricePerShare: F(8)}), // latest price only
	}
	got, err := ComputeTotals(records, invs("A", "B", "C"))
	if err != nil {
		t.Fatalf("ComputeTotals() error = %v", err)
	}

	wantA := Totals{Shares: 10, Invested: 1000, Value: 1000, ProfitLoss: 0}
	wantB := Totals{Shares: 90, Invested: 900, Value: 720, ProfitLoss: -180}
	if got.PerInvestment["A"] != wantA {
		t.Errorf("ComputeTotals()[A] = %+v, want %+v", got.PerInvestment["A"], wantA)
	}
	if got.PerInvestment["B"] != wantB {
		t.Errorf("ComputeTotals()[B] = %+v, want %+v", got.PerInvestment["B"], wantB)
	}
	if c, ok := got.PerInvestment["C"]; !ok || c != (Totals{}) {
		t.Errorf("ComputeTotals()[C] = %+v, %v want zero totals", c, ok)
	}
	if want := wantA.Add(wantB); got.Grand != want {
		t.Errorf("ComputeTotals().Grand = %+v, want %+v", got.Grand, want)
	}
}

func TestComputeTotals_IncompleteObservationsDoNotContribute(t *testing.T) {
	records := []Record{
		rec("2024-01-01", "A", obs(1000, 10, 100)),
		rec("2024-01-02", "A", Observation{Shares: F(5), Invested: F(500)}),        // no price
		rec("2024-01-03", "A", Observation{Shares: F(5), PricePerShare: F(90)}),    // no invested
		rec("2024-01-04", "A", Observation{Invested: F(5), PricePerShare: F(110)}), // no shares
	}
	got, err := ComputeTotals(records, invs("A"))
	if err != nil {
		t.Fatalf("ComputeTotals() error = %v", err)
	}
	// 110 is the latest defined price, even if that observation is incomplete.
	want := Totals{Shares: 10, Invested: 1000, Value: 1100, ProfitLoss: 100}
	if got.PerInvestment["A"] != want {
		t.Errorf("ComputeTotals()[A] = %+v, want %+v", got.PerInvestment["A"], want)
	}
}

func TestComputeTotals_ZeroQualifyingRecords(t *testing.T) {
	got, err := ComputeTotals([]Record{rec("2024-01-01", "B", obs(1, 1, 1))}, invs("A"))
	if err != nil {
		t.Fatalf("ComputeTotals() error = %v", err)
	}
	if got.PerInvestment["A"] != (Totals{}) {
		t.Errorf("ComputeTotals()[A] = %+v, want zero totals", got.PerInvestment["A"])
	}
	if got.Grand != (Totals{}) {
		t.Errorf("ComputeTotals().Grand = %+v, want zero totals", got.Grand)
	}
}

func TestComputeTotals_OrderInvariant(t *testing.T) {
	records := []Record{
		rec("2024-01-05", "A", obs(100.1, 1.5, 66.7), "B", obs(10, 3, 3.3)),
		rec("2024-02-05", "A", obs(200.2, 2.25, 88.9)),
		rec("2024-3-5", "B", obs(30.3, 9, 3.37)),
		rec("2024-04-05", "A", obs(50.5, 0.5, 101), "B", obs(0.7, 0.2, 3.5)),
		rec("2023-12-05", "A", obs(10, 0.1, 100)),
	}
	want, err := ComputeTotals(records, invs("A", "B"))
	if err != nil {
		t.Fatalf("ComputeTotals() error = %v", err)
	}

	reversed := slices.Clone(records)
	slices.Reverse(reversed)
	rotated := append(slices.Clone(records[2:]), records[:2]...)
	swapped := []Record{records[3], records[0], records[4], records[2], records[1]}

	for name, shuffled := range map[string][]Record{"reversed": reversed, "rotated": rotated, "swapped": swapped} {
		t.Run(name, func(t *testing.T) {
			got, err := ComputeTotals(shuffled, invs("A", "B"))
			if err != nil {
				t.Fatalf("ComputeTotals() error = %v", err)
			}
			for _, n := range []string{"A", "B"} {
				if got.PerInvestment[n] != want.PerInvestment[n] {
					t.Errorf("ComputeTotals()[%s] = %+v, want %+v", n, got.PerInvestment[n], want.PerInvestment[n])
				}
			}
			if got.Grand != want.Grand {
				t.Errorf("ComputeTotals().Grand = %+v, want %+v", got.Grand, want.Grand)
			}
		})
	}
}

func TestComputeTotals_MalformedRecord(t *testing.T) {
	records := []Record{rec("2024-01-01", "A", obs(1, 1, 1)), rec("yesterday", "A", obs(1, 1, 1))}
	if _, err := ComputeTotals(records, invs("A")); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("ComputeTotals() error = %v, want ErrMalformedRecord", err)
	}
}

func TestSummary_Rows(t *testing.T) {
	s := Summary{PerInvestment: map[string]Totals{"A": {Shares: 1}, "B": {Shares: 2}}}
	rows := s.Rows(invs("B", "A", "C"))
	if len(rows) != 3 {
		t.Fatalf("Rows() = %v, want 3 rows", rows)
	}
	if rows[0].Name != "B" || rows[0].Shares != 2 || rows[1].Name != "A" || rows[2].Shares != 0 {
		t.Errorf("Rows() = %+v, not in investments order", rows)
	}
}
