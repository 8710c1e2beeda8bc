package routine

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGoNamed(t *testing.T) {
	var executed atomic.Bool
	var wg sync.WaitGroup
	wg.Add(1)

	GoNamed(zap.NewNop(), "worker", func() {
		defer wg.Done()
		executed.Store(true)
	})

	wg.Wait()
	assert.True(t, executed.Load())
}

func TestGoNamed_RecoversPanic(t *testing.T) {
	core, recorded := observer.New(zapcore.ErrorLevel)
	done := make(chan struct{})

	GoNamed(zap.New(core), "panicky", func() {
		defer close(done)
		panic("boom")
	})

	<-done
	assert.Eventually(t, func() bool { return recorded.Len() == 1 }, time.Second, 5*time.Millisecond)
	entry := recorded.All()[0]
	assert.Equal(t, "goroutine panicked", entry.Message)
	assert.Equal(t, "panicky", entry.ContextMap()["routine"])
}

func TestGoNamedWithContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "value")
	got := make(chan string, 1)

	GoNamedWithContext(ctx, zap.NewNop(), "ctx-worker", func(ctx context.Context) {
		got <- ctx.Value(key{}).(string)
	})

	assert.Equal(t, "value", <-got)
}
