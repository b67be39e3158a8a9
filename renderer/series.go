package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/date"
	md "github.com/nao1215/markdown"
)

// SeriesMarkdown renders aggregated points as a table: one line per bucket,
// one column of price per share per investment. Missing prices show as "-".
func SeriesMarkdown(points []tracker.Point, investments []tracker.Investment, g date.Granularity, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Price per Share by %s", g))
	if len(points) == 0 {
		doc.PlainText("No data.")
		return doc.String()
	}

	header := []string{"Date"}
	for _, inv := range investments {
		header = append(header, inv.Name)
	}
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		row := []string{p.Date}
		for _, inv := range investments {
			if v, ok := p.Prices[inv.Name]; ok {
				row = append(row, Amount(v, cur))
			} else {
				row = append(row, "-")
			}
		}
		rows = append(rows, row)
	}
	doc.Table(md.TableSet{Header: header, Rows: rows})
	return doc.String()
}
