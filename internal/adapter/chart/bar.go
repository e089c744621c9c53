// Package chart renders and displays the label distribution of a results table.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	_ "gonum.org/v1/plot/vg/vgimg" // png, jpg and tiff writers

	"github.com/ressKim-io/EvoGuard/sentiment-cli/internal/adapter/report"
)

// Chart text
const (
	Title  = "Sentiment Distribution of Sample Reviews"
	XLabel = "Sentiment"
	YLabel = "Count"
)

// ErrNoData is returned when there is nothing to plot
var ErrNoData = errors.New("no labels to plot")

// Palette is cycled across bars: skyblue, salmon
var Palette = []color.Color{
	color.RGBA{R: 135, G: 206, B: 235, A: 255},
	color.RGBA{R: 250, G: 128, B: 114, A: 255},
}

// LabelCount is the number of rows carrying a label
type LabelCount struct {
	Label string
	Count int
}

// LabelCounts counts rows per label, most frequent first. Ties keep the order
// in which labels first appear in the table.
func LabelCounts(t *report.Table) []LabelCount {
	index := make(map[string]int)
	var counts []LabelCount
	for _, row := range t.Rows {
		i, ok := index[row.Sentiment]
		if !ok {
			i = len(counts)
			index[row.Sentiment] = i
			counts = append(counts, LabelCount{Label: row.Sentiment})
		}
		counts[i].Count++
	}

	sort.SliceStable(counts, func(a, b int) bool {
		return counts[a].Count > counts[b].Count
	})
	return counts
}

// RenderBarChart draws a vertical bar per label and saves it to path. The
// image format follows the file extension.
func RenderBarChart(counts []LabelCount, path string) error {
	if len(counts) == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = Title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.Y.Min = 0

	names := make([]string, len(counts))
	for i, c := range counts {
		bar, err := plotter.NewBarChart(plotter.Values{float64(c.Count)}, vg.Points(40))
		if err != nil {
			return fmt.Errorf("failed to build bar for %s: %w", c.Label, err)
		}
		bar.XMin = float64(i)
		bar.Color = Palette[i%len(Palette)]
		bar.LineStyle.Width = vg.Length(0)
		p.Add(bar)
		names[i] = c.Label
	}
	p.NominalX(names...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}
