package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"lang/internal/driver"
)

// RunProgress drives work while rendering its progress events to out.
// work receives a sink and must return when done; the events channel is
// closed afterwards so the view finishes.
func RunProgress(out io.Writer, title string, files []string, work func(driver.ProgressSink) error) error {
	events := make(chan driver.Event, 256)
	workErr := make(chan error, 1)

	go func() {
		err := work(driver.ChannelSink{Ch: events})
		close(events)
		workErr <- err
	}()

	program := tea.NewProgram(NewProgressModel(title, files, events), tea.WithOutput(out), tea.WithInput(nil))
	_, uiErr := program.Run()
	if uiErr != nil {
		for range events {
		}
		<-workErr
		return uiErr
	}
	return <-workErr
}
