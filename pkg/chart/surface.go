package chart

// Surface is the drawing collaborator a chart renders onto. Coordinates are
// in the surface's pixel space with the origin at the top-left corner and y
// increasing downward.
//
// Surfaces are not required to be safe for concurrent use; a chart issues
// its calls sequentially from a single goroutine.
type Surface interface {
	// DrawLine strokes a straight segment.
	DrawLine(stroke string, width float64, from, to Point)
	// DrawRect fills and outlines a rectangle. size.Height is negative for
	// rectangles that extend upward from origin.
	DrawRect(fill, stroke string, origin Point, size Size)
	// DrawText fills text anchored at (x, y).
	DrawText(font Font, align TextAlign, baseline TextBaseline, fill, text string, x, y float64)
}
