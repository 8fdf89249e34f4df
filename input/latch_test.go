package input

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	s := NewSet(KeyW, KeySpace)
	require.True(t, s.Held(KeyW))
	require.True(t, s.Held(KeySpace))
	require.False(t, s.Held(KeyUp))
	require.False(t, Set(0).Held(KeyW))
}

func TestLatch_PollClearsKeys(t *testing.T) {
	l := &Latch{}
	l.Press(KeyLeft)
	l.Press(KeyA)

	keys, quit := l.Poll()
	require.False(t, quit)
	require.Equal(t, NewSet(KeyLeft, KeyA), keys)

	keys, _ = l.Poll()
	require.Equal(t, Set(0), keys)
}

func TestLatch_QuitSticks(t *testing.T) {
	l := &Latch{}
	l.Quit()
	_, quit := l.Poll()
	require.True(t, quit)
	_, quit = l.Poll()
	require.True(t, quit)
}

func TestLatch_ConcurrentPress(t *testing.T) {
	l := &Latch{}
	wg := &sync.WaitGroup{}
	wg.Add(4)
	for _, k := range []Key{KeyUp, KeyDown, KeyW, KeyS} {
		go func(k Key) {
			l.Press(k)
			wg.Done()
		}(k)
	}
	wg.Wait()

	keys, _ := l.Poll()
	require.Equal(t, NewSet(KeyUp, KeyDown, KeyW, KeyS), keys)
}

func TestKey_String(t *testing.T) {
	require.Equal(t, "space", KeySpace.String())
	require.Equal(t, "unknown", Key(200).String())
}
