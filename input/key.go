// Package input describes the keys the game reacts to, independent of the
// backend that reads them.
package input

// Key is a logical key.
type Key uint8

// Keys the game binds.
const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
)

var keyNames = map[Key]string{
	KeyUp:    "up",
	KeyDown:  "down",
	KeyLeft:  "left",
	KeyRight: "right",
	KeyW:     "w",
	KeyA:     "a",
	KeyS:     "s",
	KeyD:     "d",
	KeySpace: "space",
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return "unknown"
}

// Set is a snapshot of the keys held during one frame.
type Set uint32

// NewSet returns a set holding keys.
func NewSet(keys ...Key) Set {
	var s Set
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// With returns s with k held.
func (s Set) With(k Key) Set {
	return s | 1<<k
}

// Held reports whether k is down.
func (s Set) Held(k Key) bool {
	return s&(1<<k) != 0
}

// Source is a backend's input side. Poll is called once per frame and
// returns the keys held since the previous call and whether the player
// asked to quit.
type Source interface {
	Poll() (keys Set, quit bool)
}
