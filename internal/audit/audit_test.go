package audit

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLogger_LogAndEvents(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)

	now := time.Now().Truncate(time.Millisecond)

	events := []Event{
		{Timestamp: now, Type: EventSave, Plan: "campus", Details: "network=192.168.0.0/24 lans=3"},
		{Timestamp: now.Add(time.Second), Type: EventAllocate, Plan: "campus", Details: "subnets=3 leftover=1"},
		{Timestamp: now.Add(2 * time.Second), Type: EventExport, Plan: "campus", Details: "/tmp/campus.txt"},
		{Timestamp: now.Add(3 * time.Second), Type: EventEdit, Plan: "campus"},
	}

	for _, e := range events {
		if err := logger.Log(e); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	result, err := logger.Events("campus")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}

	if len(result) != len(events) {
		t.Fatalf("got %d events, want %d", len(result), len(events))
	}

	for i, e := range result {
		if e.Type != events[i].Type {
			t.Errorf("event %d: type = %q, want %q", i, e.Type, events[i].Type)
		}
		if e.Plan != events[i].Plan {
			t.Errorf("event %d: plan = %q, want %q", i, e.Plan, events[i].Plan)
		}
		if e.Details != events[i].Details {
			t.Errorf("event %d: details = %q, want %q", i, e.Details, events[i].Details)
		}
	}
}

func TestLogger_EventsEmpty(t *testing.T) {
	logger := NewLogger(t.TempDir())

	result, err := logger.Events("nonexistent")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("got %d events, want 0", len(result))
	}
}

func TestLogger_LogEvent(t *testing.T) {
	logger := NewLogger(t.TempDir())

	if err := logger.LogEvent(EventError, "lab", "demands exceed network"); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}

	events, err := logger.Events("lab")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	e := events[0]
	if e.Type != EventError || e.Plan != "lab" || e.Details != "demands exceed network" {
		t.Errorf("event = %+v", e)
	}
	if e.Timestamp.IsZero() {
		t.Error("timestamp should be set automatically")
	}
}

func TestLogger_SkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)

	logger.LogEvent(EventSave, "mixed", "")
	path := filepath.Join(dir, "mixed.events.jsonl")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	f.WriteString("not json\n\n")
	f.Close()
	logger.LogEvent(EventAllocate, "mixed", "")

	events, err := logger.Events("mixed")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("got %d events, want 2", len(events))
	}
}

func TestLogger_ConfinedToDir(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(filepath.Join(dir, "history"))

	if err := logger.LogEvent(EventSave, "../escape", ""); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "escape.events.jsonl")); err == nil {
		t.Error("event log escaped the history directory")
	}
}

func TestLogger_Remove(t *testing.T) {
	logger := NewLogger(t.TempDir())

	logger.LogEvent(EventSave, "removable", "")

	if err := logger.Remove("removable"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	events, err := logger.Events("removable")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events after remove, want 0", len(events))
	}

	// Should not error
	if err := logger.Remove("nonexistent"); err != nil {
		t.Errorf("Remove should not error for nonexistent: %v", err)
	}
}

func TestLogger_EventOrder(t *testing.T) {
	logger := NewLogger(t.TempDir())

	base := time.Now()
	for i := 0; i < 5; i++ {
		logger.Log(Event{
			Timestamp: base.Add(time.Duration(i) * time.Second),
			Type:      EventAllocate,
			Plan:      "order-test",
			Details:   string(rune('A' + i)),
		})
	}

	events, _ := logger.Events("order-test")
	if len(events) != 5 {
		t.Fatalf("got %d events, want 5", len(events))
	}

	// Events are append-only
	for i := 1; i < len(events); i++ {
		if events[i].Timestamp.Before(events[i-1].Timestamp) {
			t.Errorf("event %d timestamp before event %d", i, i-1)
		}
	}
}
