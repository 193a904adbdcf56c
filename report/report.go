// Package report computes and prints the post-export summary of a graph.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/theoremus-urban-solutions/transnet-generator/graph"
)

// Summary holds the four statistics printed after a run
type Summary struct {
	Nodes         int
	Edges         int
	Components    int
	AverageDegree float64
}

// Summarize computes the statistics of g. The average degree is the degree sum
// over the node count, rounded to two decimals; an empty graph has 0.
func Summarize(g *graph.Graph) Summary {
	s := Summary{
		Nodes:      g.NumStops(),
		Edges:      g.NumSegments(),
		Components: g.ConnectedComponents(),
	}
	if s.Nodes > 0 {
		s.AverageDegree = round2(float64(g.DegreeSum()) / float64(s.Nodes))
	}
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rows returns the table body, one statistic per row
func (s Summary) Rows() [][]string {
	return [][]string{
		{"Number of nodes", strconv.Itoa(s.Nodes)},
		{"Number of edges", strconv.Itoa(s.Edges)},
		{"Connected components", strconv.Itoa(s.Components)},
		{"Average degree", fmt.Sprintf("%.2f", s.AverageDegree)},
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Padding(0, 1)
	valueStyle  = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

// Render draws the summary as a two-column table
func (s Summary) Render() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Statistic", "Value").
		Rows(s.Rows()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return valueStyle
			default:
				return labelStyle
			}
		})
	return t.Render()
}

// Print writes the rendered table followed by a newline
func Print(w io.Writer, s Summary) error {
	_, err := fmt.Fprintln(w, s.Render())
	return err
}
