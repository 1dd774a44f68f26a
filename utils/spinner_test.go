package utils

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinner_StartStop(t *testing.T) {
	var out syncBuffer
	s := NewSpinner(&out, "carving", time.Millisecond, false)
	s.StopMsg = "done"

	s.Start()
	s.Start() // no-op while running
	time.Sleep(5 * time.Millisecond)
	s.Stop()
	s.Stop() // no-op once stopped

	got := out.String()
	assert.True(t, strings.Contains(got, "carving"))
	assert.True(t, strings.HasSuffix(got, "done"))
}
