package core

// Canvas is the drawing surface a game renders into once per frame.
// Coordinates are field pixels; implementations scale them as needed.
type Canvas interface {
	// Fill paints the whole surface with a single color.
	Fill(c Color)

	// FillRect paints a solid rectangle.
	FillRect(r Rect, c Color)

	// DrawText draws text horizontally centered on cx with its top edge at y.
	// Size is the nominal font height in pixels; character-cell
	// surfaces may ignore it.
	DrawText(cx, y int, text string, size int, c Color)
}
