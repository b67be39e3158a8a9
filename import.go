package tracker

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog"
)

// Suffixes of the flat keys used by the browser version of the tracker.
// An entry for investment "A" looks like:
//
//	{"date": "2024-01-01", "A": 1000, "A_shares": 10, "A_invested": 1000, "A_price_per_share": 100}
const (
	suffixShares   = "_shares"
	suffixInvested = "_invested"
	suffixPrice    = "_price_per_share"
)

// LegacyPaths are the JSONPath expressions locating both collections in an
// exported document.
type LegacyPaths struct {
	Investments string
	Records     string
}

// DefaultLegacyPaths match a dump of the browser storage: an object with the
// "investments" and "investmentData" keys.
var DefaultLegacyPaths = LegacyPaths{
	Investments: "$.investments",
	Records:     "$.investmentData",
}

// ImportLegacy reads an export of the browser tracker and converts its flat
// records into structured ones.
//
// When the investments collection is missing, the default investments are
// used, as the browser version did. Fields that belong to no known investment
// (left behind when an investment was deleted) are dropped with a warning.
func ImportLegacy(r io.Reader, paths LegacyPaths, log zerolog.Logger) (Snapshot, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Snapshot{}, fmt.Errorf("import: not a correct json: %w", err)
	}

	var snap Snapshot
	jinvs, err := lookup(doc, paths.Investments)
	if err != nil {
		log.Info().Str("path", paths.Investments).Err(err).Msg("no investments in export, using defaults")
		snap.Investments = DefaultInvestments()
	} else if snap.Investments, err = decodeLegacyInvestments(jinvs); err != nil {
		return Snapshot{}, fmt.Errorf("import: %q: %w", paths.Investments, err)
	}

	jrecs, err := lookup(doc, paths.Records)
	if err != nil {
		log.Info().Str("path", paths.Records).Err(err).Msg("no records in export")
		return snap, nil
	}
	list, ok := jrecs.([]any)
	if !ok {
		return Snapshot{}, fmt.Errorf("import: %q: want a list of records, got %T", paths.Records, jrecs)
	}
	for i, jrec := range list {
		rec, orphans, err := decodeLegacyRecord(jrec, snap.Investments)
		if err != nil {
			return Snapshot{}, fmt.Errorf("import: record #%d: %w", i, err)
		}
		if len(orphans) > 0 {
			log.Warn().Str("date", rec.Date).Strs("fields", orphans).Msg("dropping fields of unknown investments")
		}
		snap.Records = append(snap.Records, rec)
	}
	if _, err := sortRecords(snap.Records, false); err != nil {
		return Snapshot{}, fmt.Errorf("import: %w", err)
	}
	log.Info().Int("investments", len(snap.Investments)).Int("records", len(snap.Records)).Strs("observed", names(snap.Records)).Msg("export imported")
	return snap, nil
}

// lookup evaluates path on doc. Browser storage holds JSON documents as
// strings: such values are decoded once more.
func lookup(doc any, path string) (any, error) {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, err
	}
	if s, ok := v.(string); ok {
		var inner any
		if err := json.Unmarshal([]byte(s), &inner); err != nil {
			return nil, fmt.Errorf("value at %q is a string but not a json document: %w", path, err)
		}
		v = inner
	}
	return v, nil
}

func decodeLegacyInvestments(v any) ([]Investment, error) {
	// simplest is to marshal it back and let the json package do the checks.
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var list []Investment
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("want a list of {name, color}: %w", err)
	}
	var out []Investment
	for _, inv := range list {
		if out, err = AddInvestment(out, inv); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// decodeLegacyRecord converts one flat record. It returns the keys that did
// not match any investment.
func decodeLegacyRecord(v any, investments []Investment) (Record, []string, error) {
	jobj, ok := v.(map[string]any)
	if !ok {
		return Record{}, nil, fmt.Errorf("want an object, got %T", v)
	}
	jdate, ok := jobj["date"].(string)
	if !ok {
		return Record{}, nil, fmt.Errorf("%w: missing the property %q of type 'string'", ErrMalformedRecord, "date")
	}

	rec := Record{Date: jdate, Observations: make(map[string]Observation)}
	used := map[string]bool{"date": true}
	for _, inv := range investments {
		var o Observation
		fields := []struct {
			key string
			dst **float64
		}{
			{inv.Name, &o.Value},
			{inv.Name + suffixShares, &o.Shares},
			{inv.Name + suffixInvested, &o.Invested},
			{inv.Name + suffixPrice, &o.PricePerShare},
		}
		for _, f := range fields {
			jv, exists := jobj[f.key]
			if !exists {
				continue
			}
			used[f.key] = true
			switch x := jv.(type) {
			case nil: // NaN is written as null
			case float64:
				*f.dst = F(x)
			default:
				return Record{}, nil, fmt.Errorf("property %q must be of type 'number'", f.key)
			}
		}
		if !o.IsEmpty() {
			rec.Observations[inv.Name] = o
		}
	}

	var orphans []string
	for key := range jobj {
		if !used[key] {
			orphans = append(orphans, key)
		}
	}
	slices.Sort(orphans)
	return rec, orphans, nil
}
