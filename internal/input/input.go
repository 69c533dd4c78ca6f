package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical action, not a physical key
type Action int

const (
	ActionClose Action = iota
	ActionCount        // Sentinel value for array sizing
)

// Manager maps key events to logical actions.
// Events arrive from the window's key callback on the context thread, so no locking is needed.
type Manager struct {
	keyToActions map[glfw.Key][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
}

// NewManager creates a Manager with Escape bound to ActionClose
func NewManager() *Manager {
	m := &Manager{
		keyToActions: make(map[glfw.Key][]Action),
	}
	m.BindKey(glfw.KeyEscape, ActionClose)
	return m
}

// BindKey binds a physical key to a logical action
func (m *Manager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// HandleKeyEvent updates action state for a key event.
// It is also the injection point for synthetic key presses.
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	actions, ok := m.keyToActions[key]
	if !ok {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range actions {
		if isPressed && !m.currentState[act] {
			m.justPressed[act] = true
		}
		m.currentState[act] = isPressed
	}
}

// PostUpdate clears edge flags; call once at the end of each frame
func (m *Manager) PostUpdate() {
	for i := range ActionCount {
		m.justPressed[i] = false
	}
}

// IsActive reports whether the action is held down or was pressed since the last PostUpdate.
// A press and release inside a single poll still counts.
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return m.currentState[action] || m.justPressed[action]
}
