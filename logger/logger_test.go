package logger

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout runs f with os.Stdout redirected to a pipe and returns the
// output.
func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	f()

	_ = w.Close()
	b, _ := io.ReadAll(r)
	_ = r.Close()
	return string(b)
}

func TestLoggerIncludesServiceAndTimestamp(t *testing.T) {
	out := captureStdout(t, func() {
		log := New("cinecircle-test")
		log.Info().Msg("hello")
	})

	line := strings.TrimSpace(out)
	if line == "" {
		t.Fatal("expected log output")
	}

	var event map[string]interface{}
	if err := json.Unmarshal([]byte(line), &event); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if event["service"] != "cinecircle-test" {
		t.Errorf("service = %v, want cinecircle-test", event["service"])
	}
	if _, ok := event["time"]; !ok {
		t.Error("expected a time field")
	}
	if event["message"] != "hello" {
		t.Errorf("message = %v, want hello", event["message"])
	}
}
