package agent

import (
	"sync"
	"testing"
	"time"

	"github.com/just-nibble/standup-service/pkg/errcodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAvailable_MissingBinary(t *testing.T) {
	c := &Client{Bin: "definitely-not-an-installed-binary"}
	assert.False(t, c.IsAvailable())
}

func TestIsAvailable_PresentBinary(t *testing.T) {
	c := &Client{Bin: "true", VersionArgs: []string{}}
	assert.True(t, c.IsAvailable())
}

func TestInvoke_EchoesStdinPrompt(t *testing.T) {
	c := &Client{Bin: "cat", PrintArgs: []string{}}

	got, err := c.Invoke("summarize this\n", Options{Timeout: 10 * time.Second})

	require.NoError(t, err)
	assert.Equal(t, "summarize this", got, "output should be trimmed stdout")
}

func TestInvoke_NonZeroExit(t *testing.T) {
	c := &Client{Bin: "sh", PrintArgs: []string{"-c", "echo boom >&2; exit 3"}}

	_, err := c.Invoke("prompt", Options{Timeout: 10 * time.Second})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "code 3")
	assert.Contains(t, err.Error(), "boom")
}

func TestInvoke_SpawnFailure(t *testing.T) {
	c := &Client{Bin: "definitely-not-an-installed-binary"}

	_, err := c.Invoke("prompt", Options{Timeout: time.Second})

	require.Error(t, err)
}

func TestInvoke_Timeout(t *testing.T) {
	c := &Client{Bin: "sleep", PrintArgs: []string{"30"}}

	var mu sync.Mutex
	var kinds []string
	started := time.Now()

	_, err := c.Invoke("prompt", Options{
		Timeout: 200 * time.Millisecond,
		OnProgress: func(ev ProgressEvent) {
			mu.Lock()
			kinds = append(kinds, ev.Type)
			mu.Unlock()
		},
	})

	require.ErrorIs(t, err, errcodes.ErrAgentTimeout)
	assert.Less(t, time.Since(started), 5*time.Second,
		"timeout must fire within a bounded margin of the configured value")

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, kinds, "error")
}

func TestStart_ProgressEvents(t *testing.T) {
	c := &Client{Bin: "cat", PrintArgs: []string{}}

	var mu sync.Mutex
	var events []ProgressEvent
	h, err := c.Start("hello", Options{
		Timeout: 10 * time.Second,
		OnProgress: func(ev ProgressEvent) {
			mu.Lock()
			events = append(events, ev)
			mu.Unlock()
		},
	})
	require.NoError(t, err)

	out, err := h.Wait()
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	mu.Lock()
	defer mu.Unlock()
	kinds := make(map[string]bool)
	var final ProgressEvent
	for _, ev := range events {
		kinds[ev.Type] = true
		final = ev
	}
	assert.True(t, kinds["started"])
	assert.True(t, kinds["stdout"])
	assert.True(t, kinds["complete"])
	assert.Equal(t, int64(len("hello")), final.BytesReceived)
}

func TestAbort_TerminatesAndIsIdempotent(t *testing.T) {
	c := &Client{Bin: "sleep", PrintArgs: []string{"30"}}

	h, err := c.Start("prompt", Options{Timeout: time.Minute})
	require.NoError(t, err)

	h.Abort()
	h.Abort() // safe to call twice

	started := time.Now()
	_, err = h.Wait()
	require.Error(t, err)
	assert.Less(t, time.Since(started), 5*time.Second)

	h.Abort() // safe after completion
}
