// Package tui is the interactive front end for the submission controller.
package tui

import (
	"context"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spacesedan/sentiment-analyzer/internal/render"
	"github.com/spacesedan/sentiment-analyzer/internal/submission"
)

type submitDoneMsg struct {
	err error
}

// SnapshotMsg carries a controller snapshot into the running program.
type SnapshotMsg submission.Snapshot

// ForwardTransitions returns a controller observer that passes lifecycle
// transitions to send, typically tea.Program.Send. Staging and mode changes
// are dropped: they happen inside Update, which re-reads the snapshot
// itself, and sending from there would block the event loop.
func ForwardTransitions(send func(tea.Msg)) func(submission.Snapshot) {
	var mu sync.Mutex
	last := submission.StateIdle
	return func(snap submission.Snapshot) {
		mu.Lock()
		changed := snap.State != last
		last = snap.State
		mu.Unlock()
		if changed {
			send(SnapshotMsg(snap))
		}
	}
}

// Model is the Bubble Tea model. It owns the input widgets; all submission
// state lives in the controller.
type Model struct {
	ctrl *submission.Controller
	snap submission.Snapshot

	path     textinput.Model
	comments textarea.Model
	spinner  spinner.Model

	// path of the file currently staged on the controller
	stagedPath string
	// local problem with the picked file, never an ErrorState
	fileErr string
	// set between dispatching a submit and receiving its submitDoneMsg
	submitting bool

	width int
}

func New(ctrl *submission.Controller) Model {
	path := textinput.New()
	path.Placeholder = "path/to/comments.csv"
	path.Prompt = "File: "
	path.Width = 60

	comments := textarea.New()
	comments.Placeholder = "Enter one comment per line..."
	comments.SetWidth(70)
	comments.SetHeight(6)
	comments.ShowLineNumbers = false

	m := Model{
		ctrl:     ctrl,
		path:     path,
		comments: comments,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.snap = ctrl.Snapshot()
	m.comments.SetValue(m.snap.Text)
	m.focusActive()
	return m
}

func (m *Model) focusActive() tea.Cmd {
	if m.snap.Mode == submission.ModeManual {
		m.path.Blur()
		return m.comments.Focus()
	}
	m.comments.Blur()
	return m.path.Focus()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 4 {
			m.comments.SetWidth(min(msg.Width-4, 100))
		}

	case SnapshotMsg:
		m.snap = submission.Snapshot(msg)
		return m, nil

	case submitDoneMsg:
		m.submitting = false
		m.snap = m.ctrl.Snapshot()
		return m, nil

	case spinner.TickMsg:
		if !m.submitting && !m.snap.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.ToggleMode):
			next := submission.ModeManual
			if m.snap.Mode == submission.ModeManual {
				next = submission.ModeFile
			}
			_ = m.ctrl.SetInputMode(next)
			m.snap = m.ctrl.Snapshot()
			cmd := m.focusActive()
			return m, cmd

		case key.Matches(msg, keys.Submit):
			cmd := m.trySubmit()
			return m, cmd
		}

		if m.snap.Mode == submission.ModeManual {
			var cmd tea.Cmd
			m.comments, cmd = m.comments.Update(msg)
			m.ctrl.StageText(m.comments.Value())
			cmds = append(cmds, cmd)
		} else {
			var cmd tea.Cmd
			m.path, cmd = m.path.Update(msg)
			m.fileErr = ""
			cmds = append(cmds, cmd)
		}
		m.snap = m.ctrl.Snapshot()
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	if m.snap.Mode == submission.ModeManual {
		m.comments, cmd = m.comments.Update(msg)
	} else {
		m.path, cmd = m.path.Update(msg)
	}
	return m, cmd
}

// trySubmit stages the picked file if needed and starts the request. It
// returns nil when there is nothing to send.
func (m *Model) trySubmit() tea.Cmd {
	if m.submitting || m.snap.Loading() {
		return nil
	}

	if m.snap.Mode == submission.ModeFile {
		p := strings.TrimSpace(m.path.Value())
		if p != "" && p != m.stagedPath {
			file, err := submission.LoadStagedFile(p)
			if err != nil {
				m.fileErr = err.Error()
				return nil
			}
			m.ctrl.StageFile(file)
			m.stagedPath = p
		}
	}

	m.snap = m.ctrl.Snapshot()
	if !m.snap.CanSubmit {
		return nil
	}

	m.submitting = true
	ctrl := m.ctrl
	submit := func() tea.Msg {
		return submitDoneMsg{err: ctrl.Submit(context.Background())}
	}
	return tea.Batch(m.spinner.Tick, submit)
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(render.TitleBlock())
	b.WriteString("\n\n")
	b.WriteString(render.Tabs(m.snap.Mode))
	b.WriteString("\n\n")

	if m.snap.Mode == submission.ModeManual {
		b.WriteString(m.comments.View())
	} else {
		b.WriteString(m.path.View())
		if m.snap.FileName != "" {
			b.WriteString("\n")
			b.WriteString(render.StagedFile(m.snap.FileName, m.snap.FileSize))
		}
		if m.fileErr != "" {
			b.WriteString("\n")
			b.WriteString(render.Problem(m.fileErr))
		}
	}
	b.WriteString("\n\n")

	b.WriteString(m.submitButton())
	if status := render.Status(m.snap); status != "" && !m.snap.Loading() {
		b.WriteString("\n")
		b.WriteString(status)
	}
	b.WriteString("\n")

	if m.snap.Result != nil {
		b.WriteString(render.Result(m.snap.Result))
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Faint(true).Render(helpLine()))
	return b.String()
}

func (m Model) submitButton() string {
	switch {
	case m.submitting || m.snap.Loading():
		return m.spinner.View() + " " + render.LOADING_TEXT
	case m.snap.CanSubmit || m.hasUnstagedPath():
		return render.Button("Analyze", true)
	default:
		return render.Button("Analyze", false)
	}
}

func (m Model) hasUnstagedPath() bool {
	if m.snap.Mode != submission.ModeFile {
		return false
	}
	return strings.TrimSpace(m.path.Value()) != ""
}
