package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cosmicexplorer/graphvizier/pkg/dot"
	"github.com/cosmicexplorer/graphvizier/pkg/errors"
	"github.com/cosmicexplorer/graphvizier/pkg/graphio"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    dot.IDPolicy
		wantErr bool
	}{
		{"strict", dot.PolicyStrict, false},
		{"permissive", dot.PolicyPermissive, false},
		{"lenient", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePolicy(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parsePolicy(%q) error = nil, want error", tt.in)
				}
				if !errors.Is(err, errors.ErrCodeInvalidPolicy) {
					t.Errorf("parsePolicy(%q) error code = %v, want %v", tt.in, errors.GetCode(err), errors.ErrCodeInvalidPolicy)
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePolicy(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parsePolicy(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input  string
		format string
		want   string
	}{
		{"graph.json", "svg", "graph.svg"},
		{"dir/graph.json", "png", "dir/graph.png"},
		{"noext", "svg", "noext.svg"},
	}

	for _, tt := range tests {
		if got := outputPath(tt.input, tt.format); got != tt.want {
			t.Errorf("outputPath(%q, %q) = %q, want %q", tt.input, tt.format, got, tt.want)
		}
	}
}

func writeGraphFile(t *testing.T, doc *graphio.Document) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := graphio.WriteDocumentFile(doc, path); err != nil {
		t.Fatalf("write graph file: %v", err)
	}
	return path
}

func TestRunBuild_WritesDOT(t *testing.T) {
	input := writeGraphFile(t, &graphio.Document{
		Name:  "sample",
		Nodes: []graphio.Node{{ID: "a"}, {ID: "b"}},
		Edges: []graphio.Edge{{From: "a", To: "b"}},
	})
	output := filepath.Join(t.TempDir(), "out.dot")

	opts := buildOpts{output: output, policy: policyStrict}
	if err := runBuild(context.Background(), input, &opts); err != nil {
		t.Fatalf("runBuild() error = %v", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(got), "digraph sample {") {
		t.Errorf("output does not start with digraph header:\n%s", got)
	}
	if !strings.Contains(string(got), "a -> b;") {
		t.Errorf("output missing edge:\n%s", got)
	}
}

func TestRunBuild_NameOverride(t *testing.T) {
	input := writeGraphFile(t, &graphio.Document{Name: "original"})
	output := filepath.Join(t.TempDir(), "out.dot")

	opts := buildOpts{output: output, policy: policyStrict, name: "renamed"}
	if err := runBuild(context.Background(), input, &opts); err != nil {
		t.Fatalf("runBuild() error = %v", err)
	}

	got, _ := os.ReadFile(output)
	if !strings.HasPrefix(string(got), "digraph renamed {") {
		t.Errorf("output does not use the overridden name:\n%s", got)
	}
}

func TestRunBuild_BadPolicy(t *testing.T) {
	input := writeGraphFile(t, &graphio.Document{})

	opts := buildOpts{policy: "nope"}
	if err := runBuild(context.Background(), input, &opts); err == nil {
		t.Error("runBuild() error = nil, want policy error")
	}
}

func TestRunBuild_MissingInput(t *testing.T) {
	opts := buildOpts{policy: policyStrict}
	err := runBuild(context.Background(), filepath.Join(t.TempDir(), "absent.json"), &opts)
	if err == nil {
		t.Error("runBuild() error = nil, want load error")
	}
}

func TestEmitDocument_StrictRejectsBadGraphName(t *testing.T) {
	doc := &graphio.Document{Name: "bad name!"}

	_, err := emitDocument(doc, dot.PolicyStrict, "")
	if err == nil {
		t.Fatal("emitDocument() error = nil, want invalid identifier error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidID) {
		t.Errorf("emitDocument() error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidID)
	}
}

func TestEmitDocument_PermissiveQuotesGraphName(t *testing.T) {
	doc := &graphio.Document{Name: "bad name!"}

	out, err := emitDocument(doc, dot.PolicyPermissive, "")
	if err != nil {
		t.Fatalf("emitDocument() error = %v", err)
	}
	if !strings.HasPrefix(out, `digraph "bad name!" {`) {
		t.Errorf("output does not quote the graph name:\n%s", out)
	}
}
