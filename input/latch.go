package input

import "sync"

// Latch turns key press events into per-frame held state for backends that
// only report presses. A key pressed at any point between two polls counts as
// held for the next frame. It is safe to feed from an event goroutine while
// the game loop polls.
type Latch struct {
	sync.Mutex
	keys Set
	quit bool
}

// Press records k as held until the next Poll.
func (l *Latch) Press(k Key) {
	l.Lock()
	defer l.Unlock()

	l.keys = l.keys.With(k)
}

// Quit records a close request. It stays set.
func (l *Latch) Quit() {
	l.Lock()
	defer l.Unlock()

	l.quit = true
}

// Poll returns and clears the latched keys.
func (l *Latch) Poll() (Set, bool) {
	l.Lock()
	defer l.Unlock()

	keys := l.keys
	l.keys = 0
	return keys, l.quit
}
