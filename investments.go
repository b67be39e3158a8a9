package tracker

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultInvestments is the set a new tracker starts with.
func DefaultInvestments() []Investment {
	return []Investment{
		{Name: "SP500", Color: "#ffe599"},
		{Name: "SP500 Tech Info", Color: "#a4c2f4"},
		{Name: "AI & Big Data", Color: "#f9cb9c"},
	}
}

// IndexInvestment returns the position of the named investment, or -1.
func IndexInvestment(investments []Investment, name string) int {
	return slices.IndexFunc(investments, func(inv Investment) bool { return inv.Name == name })
}

// AddInvestment appends inv to the set. Names must be non empty and unique.
func AddInvestment(investments []Investment, inv Investment) ([]Investment, error) {
	inv.Name = strings.TrimSpace(inv.Name)
	if inv.Name == "" {
		return nil, fmt.Errorf("investment name is required")
	}
	if IndexInvestment(investments, inv.Name) >= 0 {
		return nil, fmt.Errorf("%w %q", ErrDuplicateInvestment, inv.Name)
	}
	return append(slices.Clone(investments), inv), nil
}

// DeleteInvestment removes the named investment and all its observations.
func DeleteInvestment(s Snapshot, name string) Snapshot {
	return Snapshot{
		Investments: slices.DeleteFunc(slices.Clone(s.Investments), func(inv Investment) bool { return inv.Name == name }),
		Records:     RemoveInvestment(s.Records, name),
	}
}
