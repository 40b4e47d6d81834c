// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

// Package browse is a small file browser: a breadcrumb trail of the active
// path above a lazily loaded directory tree.
package browse

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/bobg/go-generics/v4/slices"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/toeirei/tuikit/internal/data"
	"github.com/toeirei/tuikit/internal/i18n"
	"github.com/toeirei/tuikit/internal/logging"
	"github.com/toeirei/tuikit/ui/tui/content"
	"github.com/toeirei/tuikit/ui/tui/models/components/breadcrumbs"
	"github.com/toeirei/tuikit/ui/tui/models/components/dialog"
	"github.com/toeirei/tuikit/ui/tui/models/components/menu"
	"github.com/toeirei/tuikit/ui/tui/models/components/stack"
	windowtitle "github.com/toeirei/tuikit/ui/tui/models/helpers/title"
	"github.com/toeirei/tuikit/ui/tui/models/views/root"
	"github.com/toeirei/tuikit/ui/tui/theme"
	"github.com/toeirei/tuikit/ui/tui/util"
)

const (
	focusCrumbs = 0
	focusTree   = 1

	actionCopy  = "copy"
	actionClose = "close"
)

type Model struct {
	// Dir is the directory the tree is rooted at.
	Dir        string
	ShowHidden bool
	KeyMap     KeyMap

	// Copy writes to the system clipboard. Tests replace it.
	Copy    func(string) error
	readDir func(string) ([]os.DirEntry, error)
	stat    func(string) (os.FileInfo, error)

	theme  theme.Theme
	crumbs *breadcrumbs.Model
	tree   *menu.Model
	stack  *stack.Model
	focus  int
	// active is the path of the entry under the tree cursor.
	active string
}

type NewOpt = func(m *Model)

func WithTheme(t theme.Theme) NewOpt {
	return func(m *Model) {
		m.theme = t
		m.tree.SetTheme(t)
		m.crumbs.Styles = breadcrumbs.DefaultStyles(t)
	}
}

// WithBreadcrumbs configures the path trail.
func WithBreadcrumbs(opts ...breadcrumbs.NewOpt) NewOpt {
	return func(m *Model) {
		for _, opt := range opts {
			opt(m.crumbs)
		}
	}
}

func WithHidden(show bool) NewOpt {
	return func(m *Model) { m.ShowHidden = show }
}

func WithClipboard(fn func(string) error) NewOpt {
	return func(m *Model) { m.Copy = fn }
}

func New(dir string, opts ...NewOpt) *Model {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	m := &Model{
		Dir:     dir,
		KeyMap:  DefaultKeyMap(),
		Copy:    clipboard.WriteAll,
		readDir: os.ReadDir,
		stat:    os.Stat,
		theme:   theme.Default,
		crumbs:  breadcrumbs.New(nil, breadcrumbs.WithItemsBeforeCollapse(1), breadcrumbs.WithItemsAfterCollapse(2)),
		tree:    menu.New(),
		focus:   focusTree,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.stack = stack.New(
		stack.WithOrientation(stack.Vertical),
		stack.WithItem(util.ModelPointer(m.crumbs), stack.FitSize(crumbHeight)),
		stack.WithItem(util.ModelPointer(m.tree), stack.VariableSize(1)),
		stack.WithFocus(stack.FocusIndex(m.focus)),
	)
	m.setDir(dir)
	return m
}

func crumbHeight(model util.Model, _ int) int {
	// one line for the trail plus a blank line below it
	return lipgloss.Height(model.View()) + 1
}

// entries lists dir for the tree. Directories come first and load their
// own entries when opened.
func (m *Model) entries(dir string) ([]menu.Item, error) {
	list, err := m.readDir(dir)
	if err != nil {
		return nil, err
	}
	if !m.ShowHidden {
		list = slices.Filter(list, func(e os.DirEntry) bool {
			return !strings.HasPrefix(e.Name(), ".")
		})
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].IsDir() && !list[j].IsDir()
	})
	return slices.Map(list, func(e os.DirEntry) menu.Item {
		path := filepath.Join(dir, e.Name())
		item := menu.Item{ID: path, Label: e.Name()}
		if e.IsDir() {
			item.Label += string(filepath.Separator)
			item.Load = func() ([]menu.Item, error) { return m.entries(path) }
		}
		return item
	}), nil
}

// setDir roots the tree at dir. Errors leave the previous tree in place and
// are reported through the returned command.
func (m *Model) setDir(dir string) tea.Cmd {
	items, err := m.entries(dir)
	if err != nil {
		logging.Warnf("browse: reading %s: %v", dir, err)
		return root.SetStatus(i18n.T("browse.read_failed", dir, err))
	}
	m.Dir = dir
	m.tree.SetItems(items)
	if len(items) > 0 {
		m.active = items[0].ID
	} else {
		m.active = dir
	}
	m.crumbs.SetItems(data.PathItems(m.active))
	return tea.Batch(windowtitle.Set(m.active), m.stack.Relayout())
}

// Active returns the path under the cursor.
func (m Model) Active() string {
	return m.active
}

func (m Model) Init() tea.Cmd {
	return m.stack.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.KeyMap.Switch):
			return m.switchFocus()
		case key.Matches(msg, m.KeyMap.Info) && m.focus == focusTree:
			return m.showInfo(m.active)
		case key.Matches(msg, m.KeyMap.Copy):
			return m.copyPath(m.active)
		}
	case menu.Moved:
		if len(msg.Path) == 0 {
			return nil
		}
		m.active = msg.Path[len(msg.Path)-1].ID
		m.crumbs.SetItems(data.PathItems(m.active))
		return tea.Batch(windowtitle.Set(m.active), m.stack.Relayout())
	case menu.ItemSelected:
		return m.showInfo(msg.Item.ID)
	case menu.LoadFailed:
		logging.Warnf("browse: loading %s: %v", msg.Item.ID, msg.Err)
		return root.SetStatus(i18n.T("browse.read_failed", msg.Item.ID, msg.Err))
	case breadcrumbs.ItemSelected:
		return m.jump(msg.Item.ID)
	case breadcrumbs.Expanded:
		return m.stack.Relayout()
	}
	return m.stack.Update(msg)
}

func (m *Model) switchFocus() tea.Cmd {
	if m.focus == focusTree {
		m.focus = focusCrumbs
	} else {
		m.focus = focusTree
	}
	cmd, km := m.stack.SetFocus(stack.FocusIndex(m.focus))
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(util.MergeKeyMaps(km, m.KeyMap)))
}

// jump re-roots the tree at path, or at its directory when path is a file.
func (m *Model) jump(path string) tea.Cmd {
	info, err := m.stat(path)
	if err != nil {
		return root.SetStatus(i18n.T("browse.read_failed", path, err))
	}
	if !info.IsDir() {
		path = filepath.Dir(path)
	}
	cmd := m.setDir(path)
	if m.focus == focusCrumbs {
		return tea.Batch(cmd, m.switchFocus())
	}
	return cmd
}

func (m *Model) copyPath(path string) tea.Cmd {
	if err := m.Copy(path); err != nil {
		logging.Warnf("browse: clipboard: %v", err)
		return root.SetStatus(i18n.T("browse.copy_failed", err))
	}
	return root.SetStatus(i18n.T("browse.copied", path))
}

// showInfo opens a dialog describing path.
func (m *Model) showInfo(path string) tea.Cmd {
	info, err := m.stat(path)
	if err != nil {
		return root.SetStatus(i18n.T("browse.read_failed", path, err))
	}
	d := dialog.New(
		filepath.Base(path),
		content.Text(describe(path, info)),
		dialog.WithActions(
			dialog.Action{ID: actionCopy, Label: i18n.T("browse.action.copy")},
			dialog.Action{ID: actionClose, Label: i18n.T("dialog.close")},
		),
		dialog.WithFocusedAction(1),
		dialog.WithTheme(m.theme),
	)
	return dialog.Show(d, func(r dialog.Result) tea.Cmd {
		if r.ActionID == actionCopy {
			return m.copyPath(path)
		}
		return nil
	})
}

func describe(path string, info os.FileInfo) string {
	kind := i18n.T("browse.kind.file")
	if info.IsDir() {
		kind = i18n.T("browse.kind.dir")
	}
	rows := [][2]string{
		{i18n.T("browse.info.path"), path},
		{i18n.T("browse.info.kind"), kind},
		{i18n.T("browse.info.size"), humanize.IBytes(uint64(max(info.Size(), 0)))},
		{i18n.T("browse.info.mode"), info.Mode().String()},
		{i18n.T("browse.info.modified"), humanize.Time(info.ModTime())},
	}
	width := 0
	for _, r := range rows {
		width = max(width, len([]rune(r[0])))
	}
	lines := slices.Map(rows, func(r [2]string) string {
		return fmt.Sprintf("%-*s  %s", width, r[0], r[1])
	})
	return strings.Join(lines, "\n")
}

func (m Model) View() string {
	return m.stack.View()
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	cmd, km := m.stack.Focus()
	return cmd, util.MergeKeyMaps(km, m.KeyMap)
}

func (m *Model) Blur() {
	m.stack.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
