package cli

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msomdec/board/internal/domain"
)

// run executes the root command against a fresh SQLite file in dir.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("BOARD_SECURITY_BCRYPT_COST", "4")
	t.Setenv("BOARD_LOG_LEVEL", "error")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--dsn", filepath.Join(dir, "board.db")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestSeedAndList(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "seed", "--count", "12")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !strings.Contains(out, "created 12 questions") {
		t.Fatalf("unexpected seed output: %q", out)
	}

	out, err = run(t, dir, "question", "list", "--limit", "5", "--offset", "10")
	if err != nil {
		t.Fatalf("question list: %v", err)
	}
	for _, want := range []string{"test-data:[011]", "test-data:[012]", "anonymous", "2 of 12"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "test-data:[010]") {
		t.Errorf("list output should start after offset:\n%s", out)
	}
}

func TestSeed_CustomPrefix(t *testing.T) {
	dir := t.TempDir()

	if _, err := run(t, dir, "seed", "--count", "1", "--prefix", "demo"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	out, err := run(t, dir, "question", "get", "1")
	if err != nil {
		t.Fatalf("question get: %v", err)
	}
	if !strings.Contains(out, "#1 demo:[001]") || !strings.Contains(out, seedContent) {
		t.Fatalf("unexpected question output:\n%s", out)
	}
}

func TestSeed_RejectsNonPositiveCount(t *testing.T) {
	if _, err := run(t, t.TempDir(), "seed", "--count", "0"); err == nil {
		t.Fatal("expected error for --count 0")
	}
}

func TestUserAddAndGet(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "user", "add", "alice", "--email", "alice@example.com", "--password", "password123")
	if err != nil {
		t.Fatalf("user add: %v", err)
	}
	if !strings.Contains(out, "created user alice") {
		t.Fatalf("unexpected output: %q", out)
	}

	out, err = run(t, dir, "user", "get", "alice")
	if err != nil {
		t.Fatalf("user get: %v", err)
	}
	if !strings.Contains(out, "alice@example.com") {
		t.Fatalf("unexpected output: %q", out)
	}

	_, err = run(t, dir, "user", "add", "alice", "--email", "other@example.com", "--password", "password123")
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestQuestionGet_NotFound(t *testing.T) {
	_, err := run(t, t.TempDir(), "question", "get", "42")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQuestionGet_InvalidID(t *testing.T) {
	if _, err := run(t, t.TempDir(), "question", "get", "abc"); err == nil {
		t.Fatal("expected error for non-numeric id")
	}
}

func TestUnsupportedDriver(t *testing.T) {
	_, err := run(t, t.TempDir(), "--driver", "mysql", "question", "list")
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestAuthorLabel(t *testing.T) {
	id := int64(7)
	cases := []struct {
		in   *int64
		want string
	}{
		{nil, "anonymous"},
		{&id, fmt.Sprintf("user %d", id)},
	}
	for _, c := range cases {
		if got := authorLabel(c.in); got != c.want {
			t.Errorf("authorLabel(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
