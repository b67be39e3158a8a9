package tracker

// obs is a helper for test to create a complete observation where the
// invested amount is the value, like user input does.
func obs(value, shares, price float64) Observation {
	return NewObservation(value, shares, value, price)
}

// rec is a helper for test to create a record from (name, observation) pairs.
func rec(on string, kv ...any) Record {
	r := Record{Date: on, Observations: make(map[string]Observation)}
	for i := 0; i+1 < len(kv); i += 2 {
		r.Observations[kv[i].(string)] = kv[i+1].(Observation)
	}
	return r
}

func invs(names ...string) []Investment {
	list := make([]Investment, 0, len(names))
	for _, n := range names {
		list = append(list, Investment{Name: n})
	}
	return list
}
