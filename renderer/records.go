package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tracker"
	md "github.com/nao1215/markdown"
)

// RecordsMarkdown renders every record with, for each investment, the entered
// value followed by shares and price per share.
func RecordsMarkdown(records []tracker.Record, investments []tracker.Investment, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Investment Data")
	if len(records) == 0 {
		doc.PlainText("No data.")
		return doc.String()
	}

	header := []string{"Date"}
	for _, inv := range investments {
		header = append(header, inv.Name)
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := []string{r.Date}
		for _, inv := range investments {
			o, ok := r.Get(inv.Name)
			if !ok || o.IsEmpty() {
				row = append(row, "-")
				continue
			}
			row = append(row, observation(o, cur))
		}
		rows = append(rows, row)
	}
	doc.Table(md.TableSet{Header: header, Rows: rows})
	return doc.String()
}

// observation formats as "value (shares @ price)" with N/A for missing fields.
func observation(o tracker.Observation, cur string) string {
	na := func(p *float64, f func(float64) string) string {
		if p == nil {
			return "N/A"
		}
		return f(*p)
	}
	amount := func(v float64) string { return Amount(v, cur) }
	return fmt.Sprintf("%s (%s @ %s)", na(o.Value, amount), na(o.Shares, Quantity), na(o.PricePerShare, amount))
}
