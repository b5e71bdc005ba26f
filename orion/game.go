package orion

import "time"

// Game is driven by RunGame. Initialize is called once before the first frame,
// Update and Draw once per frame. If the game also implements io.Closer,
// Close is called after the loop ended.
type Game interface {
	Initialize() error
	Update(dt time.Duration) error
	Draw(screen *Image)
}
