package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/transnet-generator/graph"
)

// BuildPajek renders g as Pajek text. Vertices are numbered from 1 in graph
// order; every vertex sits at 0.0 0.0 with an ellipse shape. Attribute values
// are written as text and empty ones are left out.
func BuildPajek(g *graph.Graph) string {
	var b strings.Builder
	stops := g.Stops()
	number := make(map[string]int, len(stops))

	fmt.Fprintf(&b, "*vertices %d\n", len(stops))
	for i, s := range stops {
		number[s.ID] = i + 1
		b.WriteString(pajekTokens(strconv.Itoa(i+1), s.ID, "0.0", "0.0", "ellipse"))
		writePajekAttr(&b, "stop_name", s.Name)
		writePajekAttr(&b, "lat", s.Lat)
		writePajekAttr(&b, "long", s.Long)
		b.WriteByte('\n')
	}

	b.WriteString("*edges\n")
	for _, seg := range g.Segments() {
		b.WriteString(pajekTokens(strconv.Itoa(number[seg.A]), strconv.Itoa(number[seg.B]), "1.0"))
		writePajekAttr(&b, "travel_time", strconv.Itoa(seg.TravelTime))
		b.WriteByte('\n')
	}
	return b.String()
}

func writePajekAttr(b *strings.Builder, key, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	b.WriteByte(' ')
	b.WriteString(pajekTokens(key, value))
}

func pajekTokens(tokens ...string) string {
	q := make([]string, len(tokens))
	for i, t := range tokens {
		q[i] = pajekQuote(t)
	}
	return strings.Join(q, " ")
}

// pajekQuote wraps tokens containing a space in double quotes
func pajekQuote(s string) string {
	if strings.Contains(s, " ") {
		return `"` + s + `"`
	}
	return s
}
