package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"lang/internal/driver"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.lang", 20, "short.lang"},
		{"very/long/path/name.lang", 10, "very..."},
		{"abcdef", 3, "abc"},
		{"файл.lang", 0, "файл.lang"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestProgressModelAppliesEvents(t *testing.T) {
	events := make(chan driver.Event)
	model := NewProgressModel("diag", []string{"a.lang", "b.lang"}, events)
	m := model.(*progressModel)

	m.Update(eventMsg(driver.Event{File: "a.lang", Stage: driver.StageParse, Status: driver.StatusWorking}))
	if m.items[0].status != "parsing" {
		t.Fatalf("status: %q", m.items[0].status)
	}
	m.Update(eventMsg(driver.Event{File: "a.lang", Status: driver.StatusDone}))
	m.Update(eventMsg(driver.Event{File: "b.lang", Status: driver.StatusError}))
	m.Update(eventMsg(driver.Event{File: "unknown.lang", Status: driver.StatusDone}))
	if got := m.fraction(); got != 1.0 {
		t.Fatalf("fraction = %v, want 1", got)
	}

	_, cmd := m.Update(doneMsg{})
	if cmd == nil {
		t.Fatal("done must quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("done must return tea.Quit")
	}
	view := m.View()
	for _, want := range []string{"done: diag", "a.lang", "b.lang", "error"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestProgressFromStage(t *testing.T) {
	m := NewProgressModel("x", []string{"a"}, nil).(*progressModel)
	m.applyEvent(driver.Event{File: "a", Stage: driver.StageSema, Status: driver.StatusWorking})
	if got := m.fraction(); got != 0.7 {
		t.Fatalf("fraction = %v", got)
	}
}
