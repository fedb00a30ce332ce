// Package transport implements the client side of the framed protocol:
// it spawns (or wraps a connection to) the helper process and turns
// request/response frame pairs into calls with a fixed timeout.
package transport

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/1psychoQAQ/my-translator/internal/errs"
	"github.com/1psychoQAQ/my-translator/internal/protocol"
)

// CallTimeout bounds every outbound call to the helper. On expiry the
// call fails; the helper is not cancelled and may still complete the
// work, its response simply goes unconsumed.
const CallTimeout = 30 * time.Second

// Client is one connection to the helper process. Calls are strictly
// one at a time, matching the helper's sequential message loop.
type Client struct {
	r       io.Reader
	w       io.Writer
	closer  io.Closer
	cmd     *exec.Cmd
	timeout time.Duration

	// broken is set when a timeout or protocol error leaves the stream
	// position untrustworthy; every later call fails immediately.
	broken bool
}

// NewClient wraps an established duplex stream, used by tests and by
// socket-based setups.
func NewClient(r io.Reader, w io.Writer) *Client {
	return &Client{r: r, w: w, timeout: CallTimeout}
}

// Spawn launches the helper binary and connects to its stdio, the
// native-messaging model: frames on stdin/stdout, logs on stderr.
func Spawn(binary string, args ...string) (*Client, error) {
	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, errs.Wrap(errs.CodeTransportNotFound, err)
	}

	cmd := exec.Command(path, args...)
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, errs.Wrap(errs.CodeTransportFailed, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errs.Wrap(errs.CodeTransportFailed, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, errs.Wrap(errs.CodeTransportFailed, err)
	}

	return &Client{r: stdout, w: stdin, closer: stdin, cmd: cmd, timeout: CallTimeout}, nil
}

// SetTimeout overrides the call timeout; tests shrink it.
func (c *Client) SetTimeout(d time.Duration) { c.timeout = d }

type callResult struct {
	resp *protocol.Response
	err  error
}

// Call sends one message and waits for its response frame.
func (c *Client) Call(action protocol.Action, payload any) (*protocol.Response, error) {
	if c.broken {
		return nil, errs.Wrapf(errs.CodeTransportFailed, "transport poisoned by earlier failure")
	}

	body, err := protocol.EncodeMessage(action, payload)
	if err != nil {
		return nil, errs.Wrap(errs.CodeTransportFailed, err)
	}
	if err := protocol.WriteFrame(c.w, body); err != nil {
		c.broken = true
		return nil, errs.Wrap(errs.CodeTransportFailed, err)
	}

	done := make(chan callResult, 1)
	go func() { done <- c.readResponse() }()

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()
	select {
	case res := <-done:
		if res.err != nil {
			c.broken = true
		}
		return res.resp, res.err
	case <-timer.C:
		c.broken = true
		return nil, errs.Wrapf(errs.CodeTimeout, "no response within %s", c.timeout)
	}
}

func (c *Client) readResponse() callResult {
	frame, err := protocol.ReadFrame(c.r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return callResult{err: errs.Wrapf(errs.CodeTransportFailed, "helper closed the connection")}
		}
		return callResult{err: errs.Wrap(errs.CodeTransportFailed, err)}
	}
	var resp protocol.Response
	if err := json.Unmarshal(frame, &resp); err != nil {
		return callResult{err: errs.Wrap(errs.CodeInvalidResponse, err)}
	}
	return callResult{resp: &resp}
}

// Ping probes helper liveness and returns its build version.
func (c *Client) Ping() (string, error) {
	resp, err := c.Call(protocol.ActionPing, protocol.PingPayload{})
	if err != nil {
		return "", err
	}
	if !resp.Success || resp.Version == "" {
		return "", errs.Wrapf(errs.CodeInvalidResponse, "ping returned no version")
	}
	return resp.Version, nil
}

// Close shuts the transport down and reaps a spawned helper.
func (c *Client) Close() error {
	c.broken = true
	if c.closer != nil {
		_ = c.closer.Close()
	}
	if c.cmd != nil {
		return c.cmd.Wait()
	}
	return nil
}
