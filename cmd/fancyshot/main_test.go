package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"fancyshot/pkg/clipboard"
)

type ownedClipboard struct {
	lost chan struct{}
}

func (o *ownedClipboard) WriteImage([]byte) error {
	return nil
}

func (o *ownedClipboard) Lost() <-chan struct{} {
	if o.lost == nil {
		return nil
	}
	return o.lost
}

func TestHoldClipboardWaitsForReplace(t *testing.T) {
	clip := &ownedClipboard{lost: make(chan struct{})}

	const after = 50 * time.Millisecond
	go func() {
		time.Sleep(after)
		close(clip.lost)
	}()

	began := time.Now()
	replaced := holdClipboard(context.Background(), clip, time.Minute, zaptest.NewLogger(t))

	assert.True(t, replaced)
	assert.GreaterOrEqual(t, time.Since(began), after)
	assert.Less(t, time.Since(began), 10*time.Second)
}

func TestHoldClipboardTimesOut(t *testing.T) {
	clip := &ownedClipboard{lost: make(chan struct{})}

	const d = 30 * time.Millisecond
	began := time.Now()
	replaced := holdClipboard(context.Background(), clip, d, zaptest.NewLogger(t))

	assert.False(t, replaced)
	assert.GreaterOrEqual(t, time.Since(began), d)
}

func TestHoldClipboardCancelled(t *testing.T) {
	clip := &ownedClipboard{lost: make(chan struct{})}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, holdClipboard(ctx, clip, time.Minute, zaptest.NewLogger(t)))
}

func TestHoldClipboardNothingToHold(t *testing.T) {
	logger := zaptest.NewLogger(t)
	began := time.Now()

	assert.False(t, holdClipboard(context.Background(), clipboard.Discard{}, time.Minute, logger))
	assert.False(t, holdClipboard(context.Background(), &ownedClipboard{}, time.Minute, logger))
	assert.False(t, holdClipboard(context.Background(), &ownedClipboard{lost: make(chan struct{})}, 0, logger))
	assert.Less(t, time.Since(began), time.Second)
}
