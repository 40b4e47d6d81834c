// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"github.com/toeirei/tuikit/internal/i18n"
	"github.com/toeirei/tuikit/internal/logging"
)

// isolate points the config lookup at an empty directory and restores the
// swappable hooks afterwards.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	origTerm, origRun := isTerminal, runProgram
	t.Cleanup(func() {
		isTerminal, runProgram = origTerm, origRun
		i18n.Init("en")
	})
	return dir
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errb bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetIn(strings.NewReader(""))
	err := cmd.Execute()
	return ansi.Strip(out.String()), errb.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestBreadcrumbs_StaticCollapse(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "breadcrumbs", "Home", "Library", "Data", "Item", "--max-items", "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Home", "Item", "..."} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
	if strings.Contains(out, "Library") {
		t.Fatalf("middle items should be collapsed: %q", out)
	}

	out, _, err = execute(t, "breadcrumbs", "Home", "Library", "Data", "Item", "--max-items", "3", "--expanded")
	if err != nil || !strings.Contains(out, "Library") {
		t.Fatalf("expanded trail should show every item, got %q (%v)", out, err)
	}
}

func TestBreadcrumbs_PathAndErrors(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "breadcrumbs", "--path", "/usr/local/bin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"usr", "local", "bin"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}

	if _, _, err := execute(t, "breadcrumbs"); err == nil {
		t.Fatalf("an empty trail should fail")
	}
	if _, _, err := execute(t, "breadcrumbs", "--path", "/tmp", "extra"); err == nil {
		t.Fatalf("--path together with labels should fail")
	}
	if _, _, err := execute(t, "breadcrumbs", "a", "b", "--max-items", "2", "--before=-1"); err == nil {
		t.Fatalf("an invalid collapse configuration should fail")
	}
}

func TestTimelineAndAccordionFiles(t *testing.T) {
	isolate(t)
	events := writeFile(t, "events.yaml", `
- title: Planned
  body: Kick-off
- title: Shipped
  active: true
`)
	out, _, err := execute(t, "timeline", "-f", events)
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if !strings.Contains(out, "Planned") || strings.Index(out, "Planned") > strings.Index(out, "Shipped") {
		t.Fatalf("unexpected timeline output:\n%s", out)
	}
	out, _, err = execute(t, "timeline", "-f", events, "--reverse")
	if err != nil || strings.Index(out, "Shipped") > strings.Index(out, "Planned") {
		t.Fatalf("reverse should put the newest first:\n%s (%v)", out, err)
	}
	if _, _, err := execute(t, "timeline", "-f", events, "--align", "diagonal"); err == nil {
		t.Fatalf("an unknown alignment should be rejected")
	}
	if _, _, err := execute(t, "timeline"); err == nil {
		t.Fatalf("a missing file flag should fail")
	}

	sections := writeFile(t, "sections.yaml", `
sections:
  - title: General
    body: Visible body
    open: true
  - title: Advanced
    body: Hidden body
`)
	out, _, err = execute(t, "accordion", "-f", sections, "--static")
	if err != nil {
		t.Fatalf("accordion: %v", err)
	}
	if !strings.Contains(out, "General") || !strings.Contains(out, "Visible body") {
		t.Fatalf("open section should be rendered:\n%s", out)
	}
	if strings.Contains(out, "Hidden body") {
		t.Fatalf("closed section should stay collapsed:\n%s", out)
	}
}

func TestArticle_StaticAndTranslated(t *testing.T) {
	isolate(t)
	doc := writeFile(t, "notes.md", "First paragraph.\n\nSecond paragraph.\n\nThird paragraph.\n")

	out, _, err := execute(t, "article", "-f", doc, "--preview-blocks", "1", "--static")
	if err != nil {
		t.Fatalf("article: %v", err)
	}
	if !strings.Contains(out, "NOTES") || !strings.Contains(out, "Read More") {
		t.Fatalf("expected title and button:\n%s", out)
	}
	if strings.Contains(out, "Third paragraph") {
		t.Fatalf("preview should hide later blocks:\n%s", out)
	}

	out, _, err = execute(t, "article", "-f", doc, "--preview-blocks", "1", "--language", "de")
	if err != nil || !strings.Contains(out, "Weiterlesen") {
		t.Fatalf("expected the German label, got %q (%v)", out, err)
	}

	out, _, err = execute(t, "article", "-f", doc, "--full")
	if err != nil || !strings.Contains(out, "Third paragraph") || strings.Contains(out, "Read More") {
		t.Fatalf("--full should show everything:\n%s (%v)", out, err)
	}
}

// drive plays keys against m the way a program would and returns once the
// model quits.
func drive(m tea.Model, keys ...tea.Msg) tea.Model {
	var run func(tea.Cmd) bool
	run = func(cmd tea.Cmd) bool {
		if cmd == nil {
			return false
		}
		switch msg := cmd().(type) {
		case nil:
			return false
		case tea.QuitMsg:
			return true
		case tea.BatchMsg:
			for _, c := range msg {
				if run(c) {
					return true
				}
			}
			return false
		default:
			var next tea.Cmd
			m, next = m.Update(msg)
			return run(next)
		}
	}
	if run(m.Init()) {
		return m
	}
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = m.Update(k)
		if run(cmd) {
			break
		}
	}
	return m
}

func fakeProgram(keys ...tea.Msg) func(*cobra.Command, tea.Model, ...tea.ProgramOption) (tea.Model, error) {
	return func(_ *cobra.Command, m tea.Model, _ ...tea.ProgramOption) (tea.Model, error) {
		return drive(m, keys...), nil
	}
}

func exitCode(err error) int {
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	if err != nil {
		return -1
	}
	return 0
}

func TestConfirm_ExitCodes(t *testing.T) {
	isolate(t)
	isTerminal = func(io.Writer) bool { return true }

	runProgram = fakeProgram(tea.KeyMsg{Type: tea.KeyEnter})
	out, _, err := execute(t, "confirm", "--title", "Delete?", "--message", "Really")
	if exitCode(err) != 0 || strings.TrimSpace(out) != "OK" {
		t.Fatalf("expected OK with status 0, got %q (%v)", out, err)
	}

	runProgram = fakeProgram(tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})
	out, _, err = execute(t, "confirm", "--action", "Keep", "--action", "Drop", "--action", "Later")
	if exitCode(err) != 1 || strings.TrimSpace(out) != "Drop" {
		t.Fatalf("expected Drop with status 1, got %q (%v)", out, err)
	}

	runProgram = fakeProgram(tea.KeyMsg{Type: tea.KeyEsc})
	out, _, err = execute(t, "confirm", "--message", "Really")
	if exitCode(err) != exitDismissed || out != "" {
		t.Fatalf("dismissal should exit %d without output, got %q (%v)", exitDismissed, out, err)
	}

	runProgram = fakeProgram(tea.KeyMsg{Type: tea.KeyCtrlC})
	if _, _, err := execute(t, "confirm"); exitCode(err) != exitDismissed {
		t.Fatalf("ctrl+c should count as dismissed, got %v", err)
	}

	if _, _, err := execute(t, "confirm", "--size", "huge"); err == nil || exitCode(err) == 0 {
		t.Fatalf("an unknown size should be rejected, got %v", err)
	}

	isTerminal = func(io.Writer) bool { return false }
	if _, errOut, err := execute(t, "confirm"); exitCode(err) != 1 || !strings.Contains(errOut, "not a terminal") {
		t.Fatalf("confirm needs a terminal, got %q (%v)", errOut, err)
	}
}

func TestBrowse_NeedsTerminal(t *testing.T) {
	isolate(t)
	if _, _, err := execute(t, "browse", t.TempDir()); !errors.Is(err, errNoTerminal) {
		t.Fatalf("expected errNoTerminal, got %v", err)
	}
	file := writeFile(t, "plain.txt", "x")
	if _, _, err := execute(t, "browse", file); err == nil {
		t.Fatalf("a file is not a directory")
	}

	isTerminal = func(io.Writer) bool { return true }
	var ran bool
	var options int
	runProgram = func(_ *cobra.Command, m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
		ran = true
		options = len(opts)
		return m, nil
	}
	if _, _, err := execute(t, "browse", t.TempDir()); err != nil || !ran {
		t.Fatalf("expected the program to run, err=%v", err)
	}
	// alt screen and mouse cell motion
	if options != 2 {
		t.Fatalf("framed programs should enable the alt screen and the mouse, got %d options", options)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom", "tuikit.yaml")

	out, _, err := execute(t, "config", "init", path)
	if err != nil || !strings.Contains(out, path) {
		t.Fatalf("init: %q (%v)", out, err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if _, _, err := execute(t, "config", "init", path); err == nil {
		t.Fatalf("an existing file should not be replaced without --force")
	}
	if _, _, err := execute(t, "config", "init", path, "--force"); err != nil {
		t.Fatalf("--force should replace the file: %v", err)
	}

	if err := os.WriteFile(path, []byte("dialog:\n  size: large\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, _, err = execute(t, "--config", path, "config", "show")
	if err != nil || !strings.Contains(out, "size: large") {
		t.Fatalf("show should reflect the file:\n%s (%v)", out, err)
	}
	if _, _, err := execute(t, "--config", filepath.Join(dir, "missing.yaml"), "config", "show"); err == nil {
		t.Fatalf("a missing --config file should fail")
	}
}

func TestInvalidEnvironmentValue(t *testing.T) {
	isolate(t)
	t.Setenv("TUIKIT_DIALOG_SIZE", "enormous")
	_, _, err := execute(t, "version")
	if err == nil || !strings.Contains(err.Error(), "invalid enum value") {
		t.Fatalf("expected an enum error, got %v", err)
	}
}

func TestLogFile(t *testing.T) {
	dir := isolate(t)
	log := filepath.Join(dir, "tuikit.log")
	t.Cleanup(func() {
		if c, ok := logOutput.(io.Closer); ok && logOutput != os.Stderr {
			_ = c.Close()
		}
		logOutput = os.Stderr
		logging.SetOutput(os.Stderr)
		_ = logging.SetLevel("info")
	})
	if _, _, err := execute(t, "--verbose", "--log-file", log, "breadcrumbs", "a", "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := os.ReadFile(log)
	if err != nil || !strings.Contains(string(b), "breadcrumbs: 2 items") {
		t.Fatalf("expected debug output in the log file, got %q (%v)", b, err)
	}
}

func TestVersionCommand(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "version: ") || !strings.Contains(out, "commit: ") {
		t.Fatalf("unexpected version output %q", out)
	}
}
