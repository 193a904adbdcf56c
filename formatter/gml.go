package formatter

import (
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/transnet-generator/graph"
)

// BuildGML renders g as GML. Node ids are numbered from 0 in graph order and
// the stop ID becomes the label. Strings are quoted, integers are bare.
func BuildGML(g *graph.Graph) string {
	var b strings.Builder
	stops := g.Stops()
	id := make(map[string]int, len(stops))

	b.WriteString("graph [\n")
	if g.Name != "" {
		writeGMLString(&b, 1, "name", g.Name)
	}
	for i, s := range stops {
		id[s.ID] = i
		b.WriteString("  node [\n")
		writeGMLInt(&b, 2, "id", i)
		writeGMLString(&b, 2, "label", s.ID)
		if s.Name != "" {
			writeGMLString(&b, 2, "stop_name", s.Name)
		}
		if s.Lat != "" {
			writeGMLString(&b, 2, "lat", s.Lat)
		}
		if s.Long != "" {
			writeGMLString(&b, 2, "long", s.Long)
		}
		b.WriteString("  ]\n")
	}
	for _, seg := range g.Segments() {
		b.WriteString("  edge [\n")
		writeGMLInt(&b, 2, "source", id[seg.A])
		writeGMLInt(&b, 2, "target", id[seg.B])
		writeGMLInt(&b, 2, "travel_time", seg.TravelTime)
		b.WriteString("  ]\n")
	}
	b.WriteString("]\n")
	return b.String()
}

func writeGMLInt(b *strings.Builder, depth int, key string, v int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(key)
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(v))
	b.WriteByte('\n')
}

func writeGMLString(b *strings.Builder, depth int, key, v string) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(key)
	b.WriteString(` "`)
	b.WriteString(gmlEscape(v))
	b.WriteString("\"\n")
}

// gmlEscape turns everything outside printable ASCII, plus '"' and '&', into
// &#N; character references
func gmlEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < ' ' || r > '~' || r == '"' || r == '&' {
			b.WriteString("&#")
			b.WriteString(strconv.Itoa(int(r)))
			b.WriteByte(';')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
