package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sixcities/internal/logging"
)

type logLinesMsg struct {
	lines []string
	err   error
}

// tailLogsCmd reads the end of the client's own log file.
func (m Model) tailLogsCmd() tea.Cmd {
	path := m.logPath
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		lines, err := logging.Tail(path, LogTailLines)
		return logLinesMsg{lines: lines, err: err}
	}
}

func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Refresh):
		return m, m.tailLogsCmd()
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// updateLogViewport replaces the log content, staying pinned to the bottom
// when the user was already there.
func (m *Model) updateLogViewport() {
	if !m.ready {
		return
	}
	atBottom := m.logViewport.AtBottom()
	if len(m.logLines) == 0 {
		m.logViewport.SetContent(m.theme.Styles().MutedText.Render("No log output yet. Logs go to " + m.logPath))
		return
	}
	m.logViewport.SetContent(strings.Join(m.logLines, "\n"))
	if atBottom {
		m.logViewport.GotoBottom()
	}
}
