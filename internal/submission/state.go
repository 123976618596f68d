package submission

import (
	"fmt"
	"os"
	"path/filepath"
)

type InputMode string

const (
	ModeFile   InputMode = "file"
	ModeManual InputMode = "manual"
)

func ParseInputMode(v string) (InputMode, error) {
	switch InputMode(v) {
	case ModeFile, ModeManual:
		return InputMode(v), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, v)
	}
}

type LifecycleState int

const (
	StateIdle LifecycleState = iota
	StatePending
	StateSucceeded
	StateFailed
)

func (s LifecycleState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("LifecycleState(%d)", int(s))
	}
}

// StagedFile is a file picked by the user. Size is the size reported by the
// filesystem at pick time, which may differ from len(Content) if the file
// changed underneath us.
type StagedFile struct {
	Name    string
	Content []byte
	Size    int64
}

func (f *StagedFile) empty() bool {
	return f == nil || f.Name == ""
}

// LoadStagedFile reads path into memory. Content is not inspected; the
// endpoint decides whether it can parse it.
func LoadStagedFile(path string) (StagedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return StagedFile{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return StagedFile{}, fmt.Errorf("%s is a directory", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return StagedFile{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return StagedFile{
		Name:    filepath.Base(path),
		Content: content,
		Size:    info.Size(),
	}, nil
}
