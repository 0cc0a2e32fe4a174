package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// errorMsg clears the status line if it still shows the message stamped at.
type errorMsg struct {
	at time.Time
}

// errorMsgAfter schedules clearing of the status message stamped at.
func errorMsgAfter(d time.Duration, at time.Time) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return errorMsg{at: at}
	})
}
