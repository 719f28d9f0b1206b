package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestLoggerInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	if Get() == nil {
		t.Fatal("logger is nil after initialization")
	}

	if err := Init(WithFormat("yaml")); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(WithWriter(&buf), WithFormat("json")); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	Get().Info(context.Background(), "request sent",
		String("path", "/balance"),
		Int("status", 200),
		Duration("took", 15*time.Millisecond),
	)

	out := buf.String()
	for _, want := range []string{`"msg":"request sent"`, `"path":"/balance"`, `"status":200`, `"source":"logger_test.go`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(WithWriter(&buf)); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	ctx := context.Background()
	Get().Debug(ctx, "hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug line written at info level: %q", buf.String())
	}

	if err := SetLevelString("debug"); err != nil {
		t.Fatalf("SetLevelString: %v", err)
	}
	Get().Debug(ctx, "shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("debug line missing: %q", buf.String())
	}

	if err := SetLevelString("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestLoggerNamed(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(WithWriter(&buf), WithFormat("json")); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	Named("xendit").Info(context.Background(), "test message", String("k", "v"))
	if !strings.Contains(buf.String(), `"xendit":{"k":"v"`) {
		t.Fatalf("group missing from output: %q", buf.String())
	}
}

func TestSecretMasking(t *testing.T) {
	cases := map[string]string{
		"":                         "****",
		"abc":                      "****",
		"xnd_development_abcd1234": "****1234",
	}
	for in, want := range cases {
		if got := Secret("key", in).Value; got != want {
			t.Errorf("Secret(%q) = %v, want %q", in, got, want)
		}
	}
}

func TestNop(t *testing.T) {
	Nop().Error(context.Background(), "dropped", Error(nil))
}
