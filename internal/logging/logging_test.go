package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{" JSON ", FormatJSON, false},
		{"xml", FormatText, true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo, FormatJSON)
	log.Debug("hidden")
	log.Info("created song", "path", "out/Solar.pdf")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 record, got %d: %s", len(lines), buf.String())
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("invalid JSON record: %v", err)
	}
	if record["msg"] != "created song" || record["path"] != "out/Solar.pdf" {
		t.Errorf("unexpected record: %v", record)
	}
	if id, _ := record["run_id"].(string); len(id) != 36 {
		t.Errorf("expected a uuid run_id, got %v", record["run_id"])
	}
}

func TestNewDebugText(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, LevelDebug, FormatText).Debug("configuration loaded", "entries", 3)

	out := buf.String()
	for _, want := range []string{"level=DEBUG", "entries=3", "run_id="} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestRunIDsDiffer(t *testing.T) {
	var a, b bytes.Buffer
	New(&a, LevelInfo, FormatJSON).Info("x")
	New(&b, LevelInfo, FormatJSON).Info("x")

	var ra, rb map[string]any
	json.Unmarshal(a.Bytes(), &ra)
	json.Unmarshal(b.Bytes(), &rb)
	if ra["run_id"] == rb["run_id"] {
		t.Error("expected distinct run ids")
	}
}
