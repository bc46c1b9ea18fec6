package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/trevorsandy/lpub3dNext/pkg/pipeline"
)

const parseFixture = `0 FILE main.ldr
0 Untitled Model
0 !LPUB PLI CONSTRAIN WIDTH 400
1 4 0 0 0 1 0 0 0 1 0 0 0 1 3001.dat
0 STEP
1 14 0 0 0 1 0 0 0 1 0 0 0 1 3020.dat
0 STEP
`

func writeParseFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.mpd")
	if err := os.WriteFile(path, []byte(parseFixture), 0o644); err != nil {
		t.Fatalf("write model: %v", err)
	}
	return path
}

func TestRunParse(t *testing.T) {
	c := New(io.Discard, LogInfo)
	model := writeParseFixture(t)

	if err := c.runParse(context.Background(), model, false, false, ""); err != nil {
		t.Fatalf("runParse: %v", err)
	}
}

func TestRunParseWritesReport(t *testing.T) {
	c := New(io.Discard, LogInfo)
	model := writeParseFixture(t)
	out := filepath.Join(t.TempDir(), "report.json")

	if err := c.runParse(context.Background(), model, false, false, out); err != nil {
		t.Fatalf("runParse: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var report parseReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Steps != 2 {
		t.Errorf("steps = %d, want 2", report.Steps)
	}
	if report.BomParts != 2 {
		t.Errorf("bom parts = %d, want 2", report.BomParts)
	}
	if len(report.Failures) != 0 {
		t.Errorf("failures = %v, want none", report.Failures)
	}
}

func TestRunParseStrictFails(t *testing.T) {
	c := New(io.Discard, LogInfo)
	path := filepath.Join(t.TempDir(), "bad.ldr")
	src := "0 !LPUB PLI CONSTRAIN DIAGONAL 4\n1 4 0 0 0 1 0 0 0 1 0 0 0 1 3001.dat\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write model: %v", err)
	}

	if err := c.runParse(context.Background(), path, true, false, ""); err == nil {
		t.Fatal("strict parse of malformed directive should fail")
	}
}

func TestRunParseMissingFile(t *testing.T) {
	c := New(io.Discard, LogInfo)
	err := c.runParse(context.Background(), filepath.Join(t.TempDir(), "absent.ldr"), false, false, "")
	if err == nil {
		t.Fatal("missing model should fail")
	}
}

func TestActionTable(t *testing.T) {
	c := New(io.Discard, LogInfo)
	model := writeParseFixture(t)

	runner := pipeline.NewRunner(nil, nil, c.Logger)
	doc, err := runner.Parse(context.Background(), pipeline.Options{Model: model})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	out := actionTable(doc)
	if !strings.Contains(out, "STEP") {
		t.Errorf("table missing STEP row:\n%s", out)
	}
	if !strings.Contains(out, "Result") {
		t.Errorf("table missing header:\n%s", out)
	}
}
