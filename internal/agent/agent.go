// Package agent runs the external text-generation CLI as a subprocess.
// The prompt travels over stdin rather than argv, which sidesteps
// argument-length limits and shell escaping.
package agent

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/just-nibble/standup-service/pkg/errcodes"
)

const DefaultTimeout = 5 * time.Minute

// ProgressEvent is emitted to an optional observer on every state change
// and output chunk. Events are informational only and never block the
// producer.
type ProgressEvent struct {
	Type          string // started, stdout, stderr, complete, error
	Message       string
	Timestamp     time.Time
	Elapsed       time.Duration
	BytesReceived int64
}

// Options configures a single invocation.
type Options struct {
	Timeout    time.Duration
	OnProgress func(ProgressEvent)
	OnStderr   func(string)
}

// Client invokes the generation CLI. The zero value is not usable; use
// NewClient.
type Client struct {
	Bin string
	// VersionArgs and PrintArgs override the probe and invocation
	// arguments; nil means the defaults for the claude CLI.
	VersionArgs []string
	PrintArgs   []string
}

func NewClient(bin string) *Client {
	if bin == "" {
		bin = "claude"
	}
	return &Client{Bin: bin}
}

func (c *Client) versionArgs() []string {
	if c.VersionArgs != nil {
		return c.VersionArgs
	}
	return []string{"--version"}
}

func (c *Client) printArgs() []string {
	if c.PrintArgs != nil {
		return c.PrintArgs
	}
	return []string{"--print"}
}

// IsAvailable probes the CLI with a version query. A spawn failure (binary
// not installed) yields false, never an error.
func (c *Client) IsAvailable() bool {
	cmd := exec.Command(c.Bin, c.versionArgs()...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run() == nil
}

// Handle is a running invocation. Wait blocks until completion; Abort is
// idempotent and safe to call after completion.
type Handle struct {
	cmd   *exec.Cmd
	done  chan struct{}
	start time.Time
	opts  Options

	abortOnce sync.Once

	mu       sync.Mutex
	bytes    int64
	timedOut bool

	output string
	err    error
}

// Invoke runs the CLI to completion and returns its trimmed stdout.
func (c *Client) Invoke(prompt string, opts Options) (string, error) {
	h, err := c.Start(prompt, opts)
	if err != nil {
		return "", err
	}
	return h.Wait()
}

// Start spawns the CLI, writes the prompt to its stdin and begins
// collecting output. The returned handle owns exactly one subprocess.
func (c *Client) Start(prompt string, opts Options) (*Handle, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	cmd := exec.Command(c.Bin, c.printArgs()...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, err
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to spawn %s: %w", c.Bin, err)
	}

	h := &Handle{
		cmd:   cmd,
		done:  make(chan struct{}),
		start: time.Now(),
		opts:  opts,
	}
	h.emit("started", fmt.Sprintf("PID: %d", cmd.Process.Pid))

	go func() {
		_, _ = io.WriteString(stdin, prompt)
		_ = stdin.Close()
	}()

	var outBuf, errBuf bytes.Buffer
	var readers sync.WaitGroup
	readers.Add(2)

	go func() {
		defer readers.Done()
		h.drain(stdout, &outBuf, "stdout", nil)
	}()
	go func() {
		defer readers.Done()
		h.drain(stderr, &errBuf, "stderr", opts.OnStderr)
	}()

	timer := time.AfterFunc(opts.Timeout, func() {
		h.mu.Lock()
		h.timedOut = true
		h.mu.Unlock()
		h.kill()
	})

	go func() {
		readers.Wait()
		waitErr := cmd.Wait()
		timer.Stop()

		h.mu.Lock()
		timedOut := h.timedOut
		received := h.bytes
		h.mu.Unlock()

		switch {
		case timedOut:
			h.emit("error", "Timeout exceeded")
			h.err = fmt.Errorf("%w after %s", errcodes.ErrAgentTimeout, opts.Timeout)
		case waitErr != nil:
			h.emit("error", waitErr.Error())
			if exitErr, ok := waitErr.(*exec.ExitError); ok {
				h.err = fmt.Errorf("agent exited with code %d: %s",
					exitErr.ExitCode(), strings.TrimSpace(errBuf.String()))
			} else {
				h.err = waitErr
			}
		default:
			h.emit("complete", fmt.Sprintf("%d bytes", received))
			h.output = strings.TrimSpace(outBuf.String())
		}
		close(h.done)
	}()

	return h, nil
}

// Wait blocks until the subprocess exits, is killed or times out.
func (h *Handle) Wait() (string, error) {
	<-h.done
	return h.output, h.err
}

// Abort terminates the subprocess. Calling it more than once, or after
// completion, is a no-op.
func (h *Handle) Abort() {
	h.abortOnce.Do(h.kill)
}

func (h *Handle) kill() {
	if h.cmd.Process != nil {
		_ = h.cmd.Process.Signal(syscall.SIGTERM)
	}
}

func (h *Handle) drain(r io.Reader, buf *bytes.Buffer, kind string, observer func(string)) {
	chunk := make([]byte, 32*1024)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			h.mu.Lock()
			h.bytes += int64(n)
			h.mu.Unlock()
			msg := ""
			if kind == "stderr" {
				msg = truncate(string(chunk[:n]), 200)
				if observer != nil {
					observer(string(chunk[:n]))
				}
			}
			h.emit(kind, msg)
		}
		if err != nil {
			return
		}
	}
}

func (h *Handle) emit(kind, msg string) {
	if h.opts.OnProgress == nil {
		return
	}
	h.mu.Lock()
	received := h.bytes
	h.mu.Unlock()
	h.opts.OnProgress(ProgressEvent{
		Type:          kind,
		Message:       msg,
		Timestamp:     time.Now(),
		Elapsed:       time.Since(h.start),
		BytesReceived: received,
	})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
