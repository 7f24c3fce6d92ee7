package worldexport

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/logicfill/pkg/world"
)

// SVGOptions configures the World Graph visualization.
type SVGOptions struct {
	Width      int    // Canvas width in pixels
	Height     int    // Canvas height in pixels
	ShowLabels bool   // Show Subregion ID labels
	NodeRadius int    // Radius of Subregion nodes (default: 22)
	EdgeWidth  int    // Width of Path lines (default: 2)
	Margin     int    // Canvas margin in pixels (default: 60)
	Title      string // Optional title drawn above the graph
}

// DefaultSVGOptions returns sensible default rendering options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:      1200,
		Height:     900,
		ShowLabels: true,
		NodeRadius: 22,
		EdgeWidth:  2,
		Margin:     60,
		Title:      "World Graph",
	}
}

// ExportSVG renders g as an SVG graph: one node per Subregion, one edge
// per Path, colored by World.
func ExportSVG(g *world.Graph, opts SVGOptions) ([]byte, error) {
	if g == nil {
		return nil, fmt.Errorf("worldexport: graph cannot be nil")
	}
	if opts.Width <= 0 {
		opts.Width = 1200
	}
	if opts.Height <= 0 {
		opts.Height = 900
	}
	if opts.NodeRadius <= 0 {
		opts.NodeRadius = 22
	}
	if opts.EdgeWidth <= 0 {
		opts.EdgeWidth = 2
	}
	if opts.Margin <= 0 {
		opts.Margin = 60
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#181825")

	positions := calculateLayout(g, opts)
	drawEdges(canvas, g, positions, opts)
	drawNodes(canvas, g, positions, opts)
	if opts.Title != "" {
		canvas.Text(opts.Margin, opts.Margin/2, opts.Title, "font-size:24px;fill:#f5f5f5;font-family:sans-serif")
	}
	drawLegend(canvas, opts)

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders g and writes it to path with 0644 permissions.
func SaveSVGToFile(g *world.Graph, path string, opts SVGOptions) error {
	data, err := ExportSVG(g, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

type position struct {
	X, Y float64
}

// calculateLayout places every Subregion on a circle. The teacher's
// export.calculateLayout does the same for dungeon rooms; a force-directed
// layout is unnecessary at this graph's scale and would reintroduce the
// map-iteration-order nondeterminism pkg/locations/table.go avoids
// elsewhere, so node order here is the graph's own declaration order.
func calculateLayout(g *world.Graph, opts SVGOptions) map[world.Subregion]position {
	subregions := g.Subregions()
	positions := make(map[world.Subregion]position, len(subregions))
	if len(subregions) == 0 {
		return positions
	}

	drawWidth := float64(opts.Width - 2*opts.Margin - 2*opts.NodeRadius)
	drawHeight := float64(opts.Height - 2*opts.Margin - 2*opts.NodeRadius - 80)
	centerX := float64(opts.Width) / 2
	centerY := float64(opts.Height-80)/2 + 80
	radius := math.Min(drawWidth, drawHeight) / 2.2

	angleStep := 2 * math.Pi / float64(len(subregions))
	for i, sr := range subregions {
		angle := float64(i) * angleStep
		positions[sr] = position{
			X: centerX + radius*math.Cos(angle),
			Y: centerY + radius*math.Sin(angle),
		}
	}
	return positions
}

func drawEdges(canvas *svg.SVG, g *world.Graph, positions map[world.Subregion]position, opts SVGOptions) {
	for _, sr := range g.Subregions() {
		node, ok := g.Node(sr)
		if !ok {
			continue
		}
		from := positions[sr]
		for _, path := range node.Paths {
			to, ok := positions[path.Target]
			if !ok {
				continue
			}
			canvas.Line(
				int(from.X), int(from.Y), int(to.X), int(to.Y),
				fmt.Sprintf("stroke:%s;stroke-width:%d;opacity:0.55", edgeColor(sr.World), opts.EdgeWidth),
			)
		}
	}
}

func drawNodes(canvas *svg.SVG, g *world.Graph, positions map[world.Subregion]position, opts SVGOptions) {
	for _, sr := range g.Subregions() {
		p, ok := positions[sr]
		if !ok {
			continue
		}
		canvas.Circle(int(p.X), int(p.Y), opts.NodeRadius, fmt.Sprintf("fill:%s;stroke:#0c0c14;stroke-width:2", nodeColor(sr.World)))
		if opts.ShowLabels {
			canvas.Text(int(p.X), int(p.Y)+opts.NodeRadius+14, sr.ID, "font-size:11px;fill:#e6e6e6;font-family:sans-serif;text-anchor:middle")
		}
	}
}

func nodeColor(w world.World) string {
	switch w {
	case world.Hyrule:
		return "#48bb78"
	case world.Lorule:
		return "#9f7aea"
	case world.Dungeons:
		return "#f56565"
	default:
		return "#4a5568"
	}
}

func edgeColor(w world.World) string {
	switch w {
	case world.Hyrule:
		return "#2f855a"
	case world.Lorule:
		return "#6b46c1"
	case world.Dungeons:
		return "#c53030"
	default:
		return "#4a5568"
	}
}

func drawLegend(canvas *svg.SVG, opts SVGOptions) {
	entries := []struct {
		label string
		world world.World
	}{
		{"Hyrule", world.Hyrule},
		{"Lorule", world.Lorule},
		{"Dungeons", world.Dungeons},
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].label < entries[j].label })

	x := opts.Width - opts.Margin - 120
	y := opts.Margin
	for _, e := range entries {
		canvas.Circle(x, y, 6, fmt.Sprintf("fill:%s", nodeColor(e.world)))
		canvas.Text(x+14, y+4, e.label, "font-size:12px;fill:#e6e6e6;font-family:sans-serif")
		y += 20
	}
}
