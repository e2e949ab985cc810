package carousel

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSlider_Wraps(t *testing.T) {
	s := NewSlider(3)
	require.Equal(t, 0, s.Current())
	require.Equal(t, 1, s.Next())
	require.Equal(t, 2, s.Next())
	require.Equal(t, 0, s.Next())
	require.Equal(t, 2, s.Prev())
	require.Equal(t, 1, s.Show(7))
	require.Equal(t, 2, s.Show(-1))
}

func TestSlider_Empty(t *testing.T) {
	s := NewSlider(0)
	require.Equal(t, -1, s.Current())
	require.Equal(t, -1, s.Next())
	require.Equal(t, -1, s.Show(3))

	called := false
	s.Run(context.Background(), time.Millisecond, func(int) { called = true })
	require.False(t, called)
}

func TestSlider_Run(t *testing.T) {
	s := NewSlider(2)
	ctx, cancel := context.WithCancel(context.Background())

	var mu sync.Mutex
	var seen []int
	done := make(chan struct{})
	go func() {
		s.Run(ctx, 5*time.Millisecond, func(i int) {
			mu.Lock()
			seen = append(seen, i)
			n := len(seen)
			mu.Unlock()
			if n == 3 {
				cancel()
			}
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []int{0, 1, 0}, seen[:3])
}

func TestTrack_ClampsAtEnds(t *testing.T) {
	tr := NewTrack(3, 270)
	require.False(t, tr.Prev())
	require.True(t, tr.Next())
	require.Equal(t, 270, tr.Offset())
	require.True(t, tr.Next())
	require.False(t, tr.Next())
	require.Equal(t, 2, tr.Index())
	require.Equal(t, 540, tr.Offset())
	require.True(t, tr.Prev())
	require.Equal(t, 1, tr.Index())
}
