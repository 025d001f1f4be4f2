package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cosmicexplorer/graphvizier/pkg/graphio"
)

func TestRunRender_SVG(t *testing.T) {
	input := writeGraphFile(t, &graphio.Document{
		Name:  "pic",
		Nodes: []graphio.Node{{ID: "a", Label: "A"}, {ID: "b"}},
		Edges: []graphio.Edge{{From: "a", To: "b"}},
	})
	output := filepath.Join(t.TempDir(), "pic.svg")

	opts := renderOpts{output: output, format: "svg", policy: policyStrict}
	if err := runRender(context.Background(), input, &opts); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(got), "<svg") {
		t.Error("output is not an SVG document")
	}
}

func TestRunRender_UnknownFormat(t *testing.T) {
	input := writeGraphFile(t, &graphio.Document{Name: "pic"})

	opts := renderOpts{format: "gif", policy: policyStrict}
	if err := runRender(context.Background(), input, &opts); err == nil {
		t.Error("runRender() error = nil, want format error")
	}
}
