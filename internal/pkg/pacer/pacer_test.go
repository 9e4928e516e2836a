package pacer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWait_Elapses(t *testing.T) {
	p := New()
	defer p.Close()

	start := time.Now()
	err := p.Wait(context.Background(), 20*time.Millisecond)

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestWait_ZeroReturnsImmediately(t *testing.T) {
	p := New()
	defer p.Close()

	assert.NoError(t, p.Wait(context.Background(), 0))
}

func TestWait_ContextCancelled(t *testing.T) {
	p := New()
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := p.Wait(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClose_ReleasesPendingWaits(t *testing.T) {
	p := New()

	errs := make(chan error, 3)
	for i := 0; i < 3; i++ {
		go func() {
			errs <- p.Wait(context.Background(), time.Minute)
		}()
	}

	time.Sleep(20 * time.Millisecond)
	p.Close()

	for i := 0; i < 3; i++ {
		select {
		case err := <-errs:
			assert.ErrorIs(t, err, ErrClosed)
		case <-time.After(time.Second):
			t.Fatal("wait was not released by Close")
		}
	}
}

func TestWait_AfterClose(t *testing.T) {
	p := New()
	p.Close()
	p.Close()

	assert.ErrorIs(t, p.Wait(context.Background(), time.Millisecond), ErrClosed)
}

func TestMillis(t *testing.T) {
	assert.Equal(t, 2*time.Second, Millis(2000))
	assert.Equal(t, time.Duration(0), Millis(0))
}
