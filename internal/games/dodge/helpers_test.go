package dodge

import (
	"fmt"

	"github.com/vovakirdan/dodge/internal/core"
)

// scriptedSource replays fixed values, cycling when exhausted, and records
// the bound of every call.
type scriptedSource struct {
	values []int
	next   int
	bounds []int
}

func (s *scriptedSource) Intn(n int) int {
	s.bounds = append(s.bounds, n)
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

// recordingCanvas captures draw calls as readable strings.
type recordingCanvas struct {
	calls []string
	texts []string
	rects map[core.Color][]core.Rect
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{rects: make(map[core.Color][]core.Rect)}
}

func (c *recordingCanvas) Fill(col core.Color) {
	c.calls = append(c.calls, fmt.Sprintf("fill %d", col))
}

func (c *recordingCanvas) FillRect(r core.Rect, col core.Color) {
	c.calls = append(c.calls, fmt.Sprintf("rect %d %+v", col, r))
	c.rects[col] = append(c.rects[col], r)
}

func (c *recordingCanvas) DrawText(cx, y int, text string, size int, col core.Color) {
	c.calls = append(c.calls, fmt.Sprintf("text %q", text))
	c.texts = append(c.texts, text)
}

func held(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}
