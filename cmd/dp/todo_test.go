package main

import (
	"strings"
	"testing"

	"github.com/avandyck/daypack/internal/models"
)

func TestTodoAddListDone(t *testing.T) {
	cfg := writeTestConfig(t)

	out, err := runCmd(t, "todo", "add", "ship", "the", "report", "-c", cfg, "--priority", "High", "--deadline", "2026-03-01")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(out, "Added todo ") {
		t.Fatalf("add output: %s", out)
	}
	id := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(out), "Added todo "))

	out, err = runCmd(t, "todo", "list", "-c", cfg)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "ship the report") || !strings.Contains(out, "High") {
		t.Fatalf("list output: %s", out)
	}

	out, err = runCmd(t, "todo", "done", id[:8], "-c", cfg)
	if err != nil {
		t.Fatalf("done: %v", err)
	}
	if !strings.Contains(out, string(models.TodoStatusCompleted)) {
		t.Fatalf("done output: %s", out)
	}

	// Completed todos are hidden by default, shown with --all.
	out, err = runCmd(t, "todo", "list", "-c", cfg)
	if err != nil {
		t.Fatalf("list after done: %v", err)
	}
	if !strings.Contains(out, "No todos found.") {
		t.Fatalf("expected empty list, got: %s", out)
	}
	out, err = runCmd(t, "todo", "list", "-c", cfg, "--all")
	if err != nil {
		t.Fatalf("list --all: %v", err)
	}
	if !strings.Contains(out, "ship the report") {
		t.Fatalf("list --all output: %s", out)
	}
}

func TestTodoAddRejectsUnknownPriority(t *testing.T) {
	cfg := writeTestConfig(t)
	if _, err := runCmd(t, "todo", "add", "x", "-c", cfg, "--priority", "Urgent"); err == nil {
		t.Fatal("expected error for unknown priority")
	}
}

func TestTodoDoneNoMatch(t *testing.T) {
	cfg := writeTestConfig(t)
	if _, err := runCmd(t, "todo", "done", "deadbeef", "-c", cfg); err == nil {
		t.Fatal("expected error for unknown todo")
	}
}

func TestResolveTodoID(t *testing.T) {
	todos := []models.Todo{
		{ID: "aaa111"},
		{ID: "aab222"},
		{ID: "bbb333"},
	}
	if _, err := resolveTodoID(todos, "aa"); err == nil {
		t.Fatal("expected ambiguity error")
	}
	id, err := resolveTodoID(todos, "bbb")
	if err != nil || id != "bbb333" {
		t.Fatalf("prefix match: %q, %v", id, err)
	}
	id, err = resolveTodoID(todos, "aaa111")
	if err != nil || id != "aaa111" {
		t.Fatalf("exact match: %q, %v", id, err)
	}
}
