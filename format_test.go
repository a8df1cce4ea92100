package scfs

import (
	"context"
	"strings"
	"testing"
)

func TestMatrix_String(t *testing.T) {
	criteria := DefaultCriteria()
	criteria.Clusters = []string{ClusterLocal}
	m, err := New(&criteria)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := m.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != len(featureRegistry)+1 {
		t.Fatalf("rendered %d lines, want header + %d rows", len(lines), len(featureRegistry))
	}
	if !strings.Contains(lines[0], "feature") || !strings.Contains(lines[0], "local") {
		t.Errorf("header %q missing columns", lines[0])
	}
	for i, e := range featureRegistry {
		line := lines[i+1]
		if !strings.Contains(line, e.id.String()) {
			t.Errorf("line %d missing feature id %s", i+1, e.id)
		}
		if !strings.Contains(line, "active(0)") {
			t.Errorf("line %d missing local status: %q", i+1, line)
		}
		if !strings.Contains(line, e.description) {
			t.Errorf("line %d missing description %q", i+1, e.description)
		}
	}
}

func TestMatrix_StringPadsIncompleteRows(t *testing.T) {
	m := syntheticMatrix(2, []string{ClusterLocal, ClusterDevnet}, nil)
	m.rows[0].push(ActiveAt(0))
	m.rows[1].push(ActiveAt(0))
	m.rows[0].push(Status{State: Pending})
	// rows[1] misses its devnet column, as after an aborted run.

	out := m.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[2], "-") {
		t.Errorf("incomplete row %q not padded", lines[2])
	}
}
