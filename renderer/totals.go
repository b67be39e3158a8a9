package renderer

import (
	"bytes"

	"github.com/etnz/tracker"
	md "github.com/nao1215/markdown"
)

// TotalsMarkdown renders the totals table, one line per investment and a
// grand total.
func TotalsMarkdown(s tracker.Summary, investments []tracker.Investment, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Investment Totals")

	rows := make([][]string, 0, len(investments)+1)
	for _, r := range s.Rows(investments) {
		rows = append(rows, []string{
			r.Name,
			Quantity(r.Shares),
			Amount(r.Value, cur),
			Amount(r.Invested, cur),
			SignedAmount(r.ProfitLoss, cur),
		})
	}
	rows = append(rows, []string{
		"**Grand Total**",
		Quantity(s.Grand.Shares),
		Amount(s.Grand.Value, cur),
		Amount(s.Grand.Invested, cur),
		SignedAmount(s.Grand.ProfitLoss, cur),
	})

	doc.Table(md.TableSet{
		Header: []string{"Investment", "Total Shares", "Current Value", "Total Invested", "Profit/Loss"},
		Rows:   rows,
	})
	return doc.String()
}
