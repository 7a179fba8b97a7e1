package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON([]byte(`{"id":1,"description":"Groceries"}`))
	})

	if !strings.Contains(out, `"description": "Groceries"`) {
		t.Fatalf("expected indented JSON, got %q", out)
	}
}

func TestPrintJSONFallsBackToRaw(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON([]byte("not json"))
	})

	if !strings.Contains(out, "not json") {
		t.Fatalf("expected raw body, got %q", out)
	}
}
