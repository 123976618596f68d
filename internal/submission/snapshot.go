package submission

import "github.com/spacesedan/sentiment-analyzer/internal/models"

// Snapshot is a read-only view of the controller for the presentation layer.
// Result is shared with the controller and must not be modified.
type Snapshot struct {
	Mode      InputMode
	FileName  string
	FileSize  int64
	Text      string
	State     LifecycleState
	Result    *models.AnalysisResult
	Error     string
	CanSubmit bool
}

func (s Snapshot) Loading() bool {
	return s.State == StatePending
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	snap := Snapshot{
		Mode:   c.mode,
		Text:   c.text,
		State:  c.state,
		Result: c.result,
		Error:  c.errMsg,
	}
	if c.file != nil {
		snap.FileName = c.file.Name
		snap.FileSize = c.file.Size
	}
	if c.state != StatePending {
		_, err := buildPayload(c.mode, c.file, c.text)
		snap.CanSubmit = err == nil
	}
	return snap
}
