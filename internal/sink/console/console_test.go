package console_test

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/flare/internal/sink/console"
)

func TestSinkWriteLine(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	var buf bytes.Buffer
	s := console.NewSink(&buf)

	require.NoError(s.WriteLine(context.Background(), "[10:04:05] [main] 🗣 hello"))
	require.NoError(s.WriteLine(context.Background(), "[10:04:05] [main] ✅ done"))

	assert.Equal("[10:04:05] [main] 🗣 hello\n[10:04:05] [main] ✅ done\n", buf.String())
}

func TestSinkWriteLineCancelledContext(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	s := console.NewSink(&buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.WriteLine(ctx, "line")

	assert.Error(err)
	assert.Empty(buf.String())
}

func TestSinkWriteLineConcurrent(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	s := console.NewSink(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.WriteLine(context.Background(), "line")
		}()
	}
	wg.Wait()

	assert.Len(bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n")), 20)
}
