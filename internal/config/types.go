// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/toeirei/tuikit/ui/tui/models/components/breadcrumbs"
	"github.com/toeirei/tuikit/ui/tui/models/components/dialog"
	"github.com/toeirei/tuikit/ui/tui/models/components/timeline"
	"github.com/toeirei/tuikit/ui/tui/theme"
)

// ErrInvalidEnum is returned when a config value names no known variant.
var ErrInvalidEnum = errors.New("invalid enum value")

type Config struct {
	Language    string            `mapstructure:"language" yaml:"language"`
	Log         LogConfig         `mapstructure:"log" yaml:"log"`
	Theme       ThemeConfig       `mapstructure:"theme" yaml:"theme"`
	Breadcrumbs BreadcrumbsConfig `mapstructure:"breadcrumbs" yaml:"breadcrumbs"`
	Timeline    TimelineConfig    `mapstructure:"timeline" yaml:"timeline"`
	Dialog      DialogConfig      `mapstructure:"dialog" yaml:"dialog"`
	Article     ArticleConfig     `mapstructure:"article" yaml:"article"`
	Accordion   AccordionConfig   `mapstructure:"accordion" yaml:"accordion"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	// File receives log output. Empty means stderr for static output and
	// discard for interactive sessions.
	File string `mapstructure:"file" yaml:"file"`
}

// ThemeConfig holds colour overrides as lipgloss colour strings (ANSI
// codes or hex values).
type ThemeConfig struct {
	Text      string `mapstructure:"text" yaml:"text"`
	Faint     string `mapstructure:"faint" yaml:"faint"`
	Accent    string `mapstructure:"accent" yaml:"accent"`
	OnAccent  string `mapstructure:"on_accent" yaml:"on_accent"`
	Border    string `mapstructure:"border" yaml:"border"`
	Button    string `mapstructure:"button" yaml:"button"`
	Highlight string `mapstructure:"highlight" yaml:"highlight"`
}

func (t ThemeConfig) Theme() theme.Theme {
	return theme.Default.With(theme.Overrides{
		Text:      t.Text,
		Faint:     t.Faint,
		Accent:    t.Accent,
		OnAccent:  t.OnAccent,
		Border:    t.Border,
		Button:    t.Button,
		Highlight: t.Highlight,
	})
}

type BreadcrumbsConfig struct {
	MaxItems            int                    `mapstructure:"max_items" yaml:"max_items"`
	ItemsBeforeCollapse int                    `mapstructure:"items_before_collapse" yaml:"items_before_collapse"`
	ItemsAfterCollapse  int                    `mapstructure:"items_after_collapse" yaml:"items_after_collapse"`
	Separator           string                 `mapstructure:"separator" yaml:"separator"`
	CollapseText        string                 `mapstructure:"collapse_text" yaml:"collapse_text"`
	Size                breadcrumbs.Size       `mapstructure:"size" yaml:"size"`
	Background          breadcrumbs.Background `mapstructure:"background" yaml:"background"`
	Underline           bool                   `mapstructure:"underline" yaml:"underline"`
	Wrap                bool                   `mapstructure:"wrap" yaml:"wrap"`
	Hyperlinks          bool                   `mapstructure:"hyperlinks" yaml:"hyperlinks"`
}

// Collapse returns the collapse configuration carried by c.
func (c BreadcrumbsConfig) Collapse() breadcrumbs.Config {
	return breadcrumbs.Config{
		MaxItems:            c.MaxItems,
		ItemsBeforeCollapse: c.ItemsBeforeCollapse,
		ItemsAfterCollapse:  c.ItemsAfterCollapse,
	}
}

type TimelineConfig struct {
	Orientation timeline.Orientation `mapstructure:"orientation" yaml:"orientation"`
	Align       timeline.Align       `mapstructure:"align" yaml:"align"`
	DotVariant  timeline.DotVariant  `mapstructure:"dot_variant" yaml:"dot_variant"`
	Reverse     bool                 `mapstructure:"reverse" yaml:"reverse"`
	Animate     bool                 `mapstructure:"animate" yaml:"animate"`
}

type DialogConfig struct {
	Size            dialog.Size `mapstructure:"size" yaml:"size"`
	ShowCloseButton bool        `mapstructure:"show_close_button" yaml:"show_close_button"`
}

type ArticleConfig struct {
	PreviewBlocks int `mapstructure:"preview_blocks" yaml:"preview_blocks"`
	MaxWidth      int `mapstructure:"max_width" yaml:"max_width"`
}

type AccordionConfig struct {
	Exclusive bool `mapstructure:"exclusive" yaml:"exclusive"`
}

// Defaults returns the flat viper defaults. Every key of Config is present
// so environment variables can override any of them.
func Defaults() map[string]any {
	return map[string]any{
		"language":                          "en",
		"log.level":                         "info",
		"log.file":                          "",
		"theme.text":                        "",
		"theme.faint":                       "",
		"theme.accent":                      "",
		"theme.on_accent":                   "",
		"theme.border":                      "",
		"theme.button":                      "",
		"theme.highlight":                   "",
		"breadcrumbs.max_items":             0,
		"breadcrumbs.items_before_collapse": 1,
		"breadcrumbs.items_after_collapse":  1,
		"breadcrumbs.separator":             breadcrumbs.SeparatorSlash,
		"breadcrumbs.collapse_text":         "",
		"breadcrumbs.size":                  "medium",
		"breadcrumbs.background":            "none",
		"breadcrumbs.underline":             true,
		"breadcrumbs.wrap":                  false,
		"breadcrumbs.hyperlinks":            false,
		"timeline.orientation":              "vertical",
		"timeline.align":                    "left",
		"timeline.dot_variant":              "filled",
		"timeline.reverse":                  false,
		"timeline.animate":                  true,
		"dialog.size":                       "medium",
		"dialog.show_close_button":          true,
		"article.preview_blocks":            3,
		"article.max_width":                 80,
		"accordion.exclusive":               false,
	}
}

// Default is the decoded form of Defaults.
func Default() Config {
	return Config{
		Language: "en",
		Log:      LogConfig{Level: "info"},
		Breadcrumbs: BreadcrumbsConfig{
			ItemsBeforeCollapse: 1,
			ItemsAfterCollapse:  1,
			Separator:           breadcrumbs.SeparatorSlash,
			Size:                breadcrumbs.SizeMedium,
			Background:          breadcrumbs.BackgroundNone,
			Underline:           true,
		},
		Timeline: TimelineConfig{
			Orientation: timeline.Vertical,
			Align:       timeline.AlignLeft,
			DotVariant:  timeline.DotFilled,
			Animate:     true,
		},
		Dialog: DialogConfig{
			Size:            dialog.SizeMedium,
			ShowCloseButton: true,
		},
		Article: ArticleConfig{
			PreviewBlocks: 3,
			MaxWidth:      80,
		},
	}
}

func parser[T any](parse func(string) (T, error)) func(string) (any, error) {
	return func(s string) (any, error) { return parse(s) }
}

var enumParsers = map[reflect.Type]func(string) (any, error){
	reflect.TypeFor[breadcrumbs.Size]():       parser(breadcrumbs.ParseSize),
	reflect.TypeFor[breadcrumbs.Background](): parser(breadcrumbs.ParseBackground),
	reflect.TypeFor[timeline.Orientation]():   parser(timeline.ParseOrientation),
	reflect.TypeFor[timeline.Align]():         parser(timeline.ParseAlign),
	reflect.TypeFor[timeline.DotVariant]():    parser(timeline.ParseDotVariant),
	reflect.TypeFor[dialog.Size]():            parser(dialog.ParseSize),
}

// enumHook turns strings into the component enums registered above.
func enumHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		parse, ok := enumParsers[to]
		if !ok || from.Kind() != reflect.String {
			return data, nil
		}
		v, err := parse(data.(string))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidEnum, err)
		}
		return v, nil
	}
}
