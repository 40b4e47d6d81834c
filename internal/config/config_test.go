package config_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	cfg "github.com/toeirei/tuikit/internal/config"
	"github.com/toeirei/tuikit/ui/tui/models/components/dialog"
	"github.com/toeirei/tuikit/ui/tui/models/components/timeline"
	"github.com/toeirei/tuikit/ui/tui/theme"
)

func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	// Force the user config dir into tmp.
	t.Setenv("XDG_CONFIG_HOME", tmp)
	return tmp
}

func TestLoadConfig_MissingFile_ReturnsDefaults(t *testing.T) {
	isolate(t)

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		t.Fatalf("expected ConfigFileNotFoundError, got: %T %v", err, err)
	}
	if want := cfg.Default(); !reflect.DeepEqual(got, want) {
		t.Fatalf("defaults mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadConfig_EmptyCandidate_TreatedAsNotFound(t *testing.T) {
	tmp := isolate(t)

	cfgDir := filepath.Join(tmp, "tuikit")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	f, err := os.Create(filepath.Join(cfgDir, "tuikit.yaml"))
	if err != nil {
		t.Fatalf("create empty file: %v", err)
	}
	f.Close()

	_, err = cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		t.Fatalf("expected ConfigFileNotFoundError, got: %T %v", err, err)
	}
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	isolate(t)

	c := cfg.Default()
	c.Language = "de"
	c.Timeline.Align = timeline.AlignAlternate
	c.Dialog.Size = dialog.SizeLarge
	c.Breadcrumbs.MaxItems = 4

	if err := cfg.WriteConfigFile(&c, false); err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}

	path, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected config file at %s: %v", path, err)
	}
	if !strings.Contains(string(data), "align: alternate") {
		t.Fatalf("expected enums written as names:\n%s", data)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if !reflect.DeepEqual(got, c) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, c)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "cfg.yaml")
	yaml := "language: de\ntimeline:\n  orientation: horizontal\n  dot_variant: outlined\nbreadcrumbs:\n  max_items: 3\n  background: dark\n"
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "de" {
		t.Fatalf("expected de, got %q", got.Language)
	}
	if got.Timeline.Orientation != timeline.Horizontal || got.Timeline.DotVariant != timeline.DotOutlined {
		t.Fatalf("unexpected timeline config %+v", got.Timeline)
	}
	if got.Breadcrumbs.MaxItems != 3 || got.Breadcrumbs.ItemsAfterCollapse != 1 {
		t.Fatalf("unexpected breadcrumbs config %+v", got.Breadcrumbs)
	}
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(file, []byte("dialog:\n  size: small\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	t.Setenv("TUIKIT_DIALOG_SIZE", "fullscreen")
	t.Setenv("TUIKIT_ARTICLE_PREVIEW_BLOCKS", "5")

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Dialog.Size != dialog.SizeFullscreen {
		t.Fatalf("expected fullscreen, got %v", got.Dialog.Size)
	}
	if got.Article.PreviewBlocks != 5 {
		t.Fatalf("expected 5 preview blocks, got %d", got.Article.PreviewBlocks)
	}
}

func TestLoadConfig_InvalidEnum(t *testing.T) {
	isolate(t)
	t.Setenv("TUIKIT_TIMELINE_ALIGN", "diagonal")

	_, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err == nil {
		t.Fatalf("expected an error for an unknown alignment")
	}
	if !strings.Contains(err.Error(), cfg.ErrInvalidEnum.Error()) {
		t.Fatalf("expected invalid enum error, got %v", err)
	}
}

func TestThemeConfig_AppliesOverrides(t *testing.T) {
	th := cfg.ThemeConfig{Accent: "#ff0000"}.Theme()
	if th.Accent != lipgloss.Color("#ff0000") {
		t.Fatalf("unexpected accent %v", th.Accent)
	}
	if th.Text != theme.Default.Text {
		t.Fatalf("unset colours should keep the default, got %v", th.Text)
	}
}
