// Package submission turns a user's staged input into exactly one request to
// the sentiment endpoint and the endpoint's reply into a result or an error.
package submission

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/spacesedan/sentiment-analyzer/internal/clients"
	"github.com/spacesedan/sentiment-analyzer/internal/models"
)

// Poster sends one encoded payload to the endpoint.
type Poster interface {
	Post(ctx context.Context, contentType string, body []byte) (clients.RawResponse, error)
}

type Option func(*Controller)

// WithObserver registers fn to be called with a fresh Snapshot after every
// change. fn runs on the goroutine that made the change.
func WithObserver(fn func(Snapshot)) Option {
	return func(c *Controller) {
		c.observers = append(c.observers, fn)
	}
}

func WithInitialMode(mode InputMode) Option {
	return func(c *Controller) {
		c.mode = mode
	}
}

type Controller struct {
	client    Poster
	observers []func(Snapshot)

	mu      sync.Mutex
	mode    InputMode
	file    *StagedFile
	text    string
	state   LifecycleState
	result  *models.AnalysisResult
	errMsg  string
	lastErr error
}

func New(client Poster, opts ...Option) *Controller {
	c := &Controller{
		client: client,
		mode:   ModeFile,
		state:  StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetInputMode switches modes. Staged data for the other mode is kept.
func (c *Controller) SetInputMode(mode InputMode) error {
	if _, err := ParseInputMode(string(mode)); err != nil {
		return err
	}
	c.update(func() { c.mode = mode })
	return nil
}

func (c *Controller) StageFile(file StagedFile) {
	c.update(func() { c.file = &file })
}

func (c *Controller) StageText(raw string) {
	c.update(func() { c.text = raw })
}

// Submit sends the staged input for the active mode and blocks until the
// request has either succeeded or failed. The outcome is recorded on the
// controller, not returned: a nil error means a request was made.
//
// ErrSubmissionPending and ErrEmptyInput are returned without touching any
// state. Cancelling ctx after the request has been sent does not abort it.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StatePending {
		c.mu.Unlock()
		slog.Warn("[SubmissionController] Submit ignored, request already pending")
		return ErrSubmissionPending
	}

	mode := c.mode
	p, err := buildPayload(mode, c.file, c.text)
	if err != nil {
		c.mu.Unlock()
		slog.Debug("[SubmissionController] Submit rejected locally",
			slog.String("mode", string(mode)),
			slog.String("error", err.Error()))
		return err
	}

	c.state = StatePending
	c.result = nil
	c.errMsg = ""
	c.lastErr = nil
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	slog.Info("[SubmissionController] Submitting", p.logAttrs()...)
	start := time.Now()

	body, contentType, err := p.encode()
	if err != nil {
		c.onResponse(clients.RawResponse{}, err, start)
		return nil
	}

	resp, err := c.client.Post(context.WithoutCancel(ctx), contentType, body)
	c.onResponse(resp, err, start)
	return nil
}

// onResponse moves a pending submission to its terminal state.
func (c *Controller) onResponse(resp clients.RawResponse, sendErr error, start time.Time) {
	var (
		result *models.AnalysisResult
		err    error
	)
	if sendErr != nil {
		err = &RequestError{Kind: KindTransport, Err: sendErr}
	} else {
		result, err = normalize(resp)
	}

	c.mu.Lock()
	if err != nil {
		c.state = StateFailed
		c.result = nil
		c.errMsg = FAILURE_MESSAGE
		c.lastErr = err
	} else {
		c.state = StateSucceeded
		c.result = result
		c.errMsg = ""
		c.lastErr = nil
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if err != nil {
		attrs := []any{
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)),
		}
		var reqErr *RequestError
		if errors.As(err, &reqErr) && reqErr.Kind == KindDecode {
			attrs = append(attrs, clients.GetPreview(resp.Body))
		}
		slog.Error("[SubmissionController] Analysis failed", attrs...)
	} else {
		slog.Info("[SubmissionController] Analysis succeeded",
			slog.Int("themes", len(result.Themes)),
			slog.Int("comments", len(result.Comments)),
			slog.Duration("elapsed", time.Since(start)))
	}

	c.notify(snap)
}

// LastError returns the detailed cause behind the current ErrorState, if any.
func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Controller) update(fn func()) {
	c.mu.Lock()
	fn()
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

func (c *Controller) notify(snap Snapshot) {
	for _, fn := range c.observers {
		fn(snap)
	}
}
