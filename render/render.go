package render

import (
	"context"

	"github.com/gridwalk/hampath"
	"github.com/gridwalk/hampath/gridgraph"
)

// Segmenter turns an arbitrary image into the {Blocked, Walkable, Start}
// grid gridgraph.Build expects. No implementation ships in this module;
// callers bring their own (an OCR pass, a color-threshold pass, a manual
// grid editor — whatever produced the image in the first place). ctx lets
// a real implementation bound a potentially slow vision pass; ASCII has no
// analogous collaborator to bound, so PathRenderer below takes none.
type Segmenter interface {
	Segment(ctx context.Context, image []byte) ([][]gridgraph.Cell, error)
}

// PathRenderer draws a solved path over the grid it was found on and
// returns the rendered bytes. ASCII is the only renderer this module
// ships; a caller wanting a PNG, an SVG, or an animated trace supplies its
// own implementation.
type PathRenderer interface {
	Render(matrix [][]gridgraph.Cell, path []hampath.Vertex, start, finish hampath.Vertex) ([]byte, error)
}
