// Package audit provides a structured history of plan events.
// Events are stored as JSON Lines (JSONL) files, one per plan.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	securejoin "github.com/cyphar/filepath-securejoin"
)

// EventType classifies a plan event.
type EventType string

const (
	EventSave     EventType = "save"
	EventEdit     EventType = "edit"
	EventAllocate EventType = "allocate"
	EventExport   EventType = "export"
	EventError    EventType = "error"
)

// Event represents a single history entry.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Plan      string    `json:"plan"`
	Details   string    `json:"details,omitempty"`
}

// Logger writes and reads plan events.
// Events are stored in {historyDir}/{plan}.events.jsonl.
type Logger struct {
	historyDir string
}

// NewLogger creates a new history logger rooted at historyDir.
func NewLogger(historyDir string) *Logger {
	return &Logger{historyDir: historyDir}
}

// eventPath returns the path to the JSONL event log for a plan.
func (l *Logger) eventPath(plan string) (string, error) {
	path, err := securejoin.SecureJoin(l.historyDir, plan+".events.jsonl")
	if err != nil {
		return "", fmt.Errorf("invalid history path: %w", err)
	}
	return path, nil
}

// Log appends an event to the plan's history.
func (l *Logger) Log(event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	path, err := l.eventPath(event.Plan)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}

// LogEvent is a convenience method that creates and logs an event.
func (l *Logger) LogEvent(eventType EventType, plan, details string) error {
	return l.Log(Event{
		Timestamp: time.Now(),
		Type:      eventType,
		Plan:      plan,
		Details:   details,
	})
}

// Events reads all events for a plan in chronological order.
func (l *Logger) Events(plan string) ([]Event, error) {
	path, err := l.eventPath(plan)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			continue // Skip malformed lines
		}
		events = append(events, event)
	}

	if err := scanner.Err(); err != nil {
		return events, fmt.Errorf("error reading history: %w", err)
	}

	return events, nil
}

// Remove deletes the history for a plan.
func (l *Logger) Remove(plan string) error {
	path, err := l.eventPath(plan)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
