package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"no output strips input ext", "", "maze.txt", "maze"},
		{"output with format ext", "out.svg", "maze.txt", "out"},
		{"output with mermaid ext", "out.mmd", "maze.txt", "out"},
		{"output without format ext", "diagrams/run1", "maze.txt", "diagrams/run1"},
		{"nested input", "", filepath.Join("a", "b.json"), filepath.Join("a", "b")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "maze.txt")

	artifacts := map[string][]byte{
		"mermaid": []byte("flowchart LR\n"),
		"dot":     []byte("digraph G {}\n"),
	}

	err := writeArtifacts(context.Background(), artifacts, []string{"mermaid", "dot"}, input, "")
	if err != nil {
		t.Fatalf("writeArtifacts() error = %v", err)
	}

	for _, path := range []string{filepath.Join(dir, "maze.mmd"), filepath.Join(dir, "maze.dot")} {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("expected artifact file %s: %v", path, err)
		}
		if len(data) == 0 {
			t.Errorf("%s should not be empty", path)
		}
	}
}

func TestWriteArtifactsMissingFormat(t *testing.T) {
	input := filepath.Join(t.TempDir(), "maze.txt")

	err := writeArtifacts(context.Background(), map[string][]byte{}, []string{"svg"}, input, "")
	if err == nil {
		t.Error("missing artifact should fail")
	}
}

func TestWriteArtifactsExplicitOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "maze.txt")
	output := filepath.Join(dir, "diagram.mmd")

	artifacts := map[string][]byte{"mermaid": []byte("flowchart LR\n")}
	if err := writeArtifacts(context.Background(), artifacts, []string{"mermaid"}, input, output); err != nil {
		t.Fatalf("writeArtifacts() error = %v", err)
	}

	if _, err := os.Stat(output); err != nil {
		t.Errorf("artifact should land at the explicit output path: %v", err)
	}
}
