package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusType represents the type of status message
type StatusType int

const (
	StatusTypeSuccess StatusType = iota
	StatusTypeWarning
	StatusTypeError
	StatusTypeInfo
)

// StatusFeedback represents a temporary status message
type StatusFeedback struct {
	Message string
	Icon    string
	Type    StatusType
	id      int
}

// StatusManager manages temporary status messages
type StatusManager struct {
	CurrentStatus   *StatusFeedback
	DefaultDuration time.Duration
	nextID          int
}

// NewStatusManager creates a new status manager
func NewStatusManager() *StatusManager {
	return &StatusManager{
		DefaultDuration: 2 * time.Second,
	}
}

// ShowFeedback displays a status message and schedules its removal
func (sm *StatusManager) ShowFeedback(icon, message string, statusType StatusType) tea.Cmd {
	sm.nextID++
	id := sm.nextID
	sm.CurrentStatus = &StatusFeedback{
		Message: message,
		Icon:    icon,
		Type:    statusType,
		id:      id,
	}

	return tea.Tick(sm.DefaultDuration, func(time.Time) tea.Msg {
		return ClearStatusMsg{id: id}
	})
}

// ShowSuccess shows a success message
func (sm *StatusManager) ShowSuccess(message string) tea.Cmd {
	return sm.ShowFeedback("✓", message, StatusTypeSuccess)
}

// ShowWarning shows a warning message
func (sm *StatusManager) ShowWarning(message string) tea.Cmd {
	return sm.ShowFeedback("⚠", message, StatusTypeWarning)
}

// ShowError shows an error message
func (sm *StatusManager) ShowError(message string) tea.Cmd {
	return sm.ShowFeedback("×", message, StatusTypeError)
}

// Handle clears the status if msg belongs to the message still showing. A
// newer message keeps its own full duration.
func (sm *StatusManager) Handle(msg ClearStatusMsg) {
	if sm.CurrentStatus != nil && sm.CurrentStatus.id == msg.id {
		sm.CurrentStatus = nil
	}
}

// GetStatus returns the current status message if active
func (sm *StatusManager) GetStatus() (string, bool) {
	if sm.CurrentStatus == nil {
		return "", false
	}
	return fmt.Sprintf("%s %s", sm.CurrentStatus.Icon, sm.CurrentStatus.Message), true
}

// ClearStatusMsg is sent to clear the status
type ClearStatusMsg struct {
	id int
}
