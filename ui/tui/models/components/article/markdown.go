// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.
package article

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/toeirei/tuikit/ui/tui/theme"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

const wrapBreakpoints = " ,.;-+|"

var (
	markdown     goldmark.Markdown
	markdownOnce sync.Once
)

func parser() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return markdown
}

// RenderBlocks renders every top-level markdown block of source on its own.
// A width of zero disables wrapping.
func RenderBlocks(source string, t theme.Theme, width int) []string {
	if strings.TrimSpace(source) == "" {
		return nil
	}
	src := []byte(source)
	doc := parser().Parser().Parse(text.NewReader(src))

	// terminal output only, skip profile detection so tests see colours too
	renderer := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.ANSI256))
	renderer.SetColorProfile(termenv.ANSI256)

	var blocks []string
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		w := &blockWriter{
			source:   src,
			theme:    t,
			width:    width,
			renderer: renderer,
		}
		_ = ast.Walk(node, w.walk)
		if out := strings.Trim(w.out.String(), "\n"); out != "" {
			blocks = append(blocks, out)
		}
	}
	return blocks
}

type listLevel struct {
	ordered bool
	next    int
	tight   bool
}

// blockWriter turns one goldmark block into styled terminal lines. Inline
// content is buffered and wrapped when its enclosing block closes.
type blockWriter struct {
	source   []byte
	theme    theme.Theme
	width    int
	renderer *lipgloss.Renderer

	out    strings.Builder
	inline strings.Builder

	prefixes []string
	// bullet replaces the prefix of the next emitted line
	bullet string
	lists  []listLevel

	bold, italic, strike, underline int
}

func (w *blockWriter) style() lipgloss.Style {
	return w.renderer.NewStyle()
}

func (w *blockWriter) prefix() string {
	return strings.Join(w.prefixes, "")
}

func (w *blockWriter) available() int {
	if w.width <= 0 {
		return 0
	}
	return max(w.width-ansi.StringWidth(w.prefix()), 10)
}

func (w *blockWriter) wrap(s string) string {
	if n := w.available(); n > 0 {
		return ansi.Wrap(s, n, wrapBreakpoints)
	}
	return s
}

func (w *blockWriter) tight() bool {
	return len(w.lists) > 0 && w.lists[len(w.lists)-1].tight
}

// emit writes s line by line, each line behind the current prefix.
func (w *blockWriter) emit(s string) {
	prefix := w.prefix()
	for _, line := range strings.Split(s, "\n") {
		if w.bullet != "" {
			w.out.WriteString(w.bullet)
			w.bullet = ""
		} else {
			w.out.WriteString(prefix)
		}
		w.out.WriteString(line)
		w.out.WriteByte('\n')
	}
}

func (w *blockWriter) blank() {
	s := w.out.String()
	if s != "" && !strings.HasSuffix(s, "\n\n") {
		w.out.WriteByte('\n')
	}
}

func (w *blockWriter) styled(s string) string {
	return w.style().
		Foreground(w.theme.Text).
		Bold(w.bold > 0).
		Italic(w.italic > 0).
		Strikethrough(w.strike > 0).
		Underline(w.underline > 0).
		Render(s)
}

func (w *blockWriter) faint(s string) string {
	return w.style().Foreground(w.theme.Faint).Render(s)
}

func (w *blockWriter) lines(node ast.Node) string {
	var b strings.Builder
	segments := node.Lines()
	for i := range segments.Len() {
		segment := segments.At(i)
		b.Write(segment.Value(w.source))
	}
	return strings.TrimRight(b.String(), "\n")
}

// plain collects the unstyled text below node.
func (w *blockWriter) plain(node ast.Node) string {
	var b strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Text:
			b.Write(n.Segment.Value(w.source))
		case *ast.String:
			b.Write(n.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func (w *blockWriter) highlight(code, language string) string {
	if language == "" {
		return w.faint(code)
	}
	var b strings.Builder
	if err := quick.Highlight(&b, code, language, "terminal256", "monokai"); err != nil {
		return w.faint(code)
	}
	// lexers append a final newline, drop it along with any trailing resets
	lines := strings.Split(b.String(), "\n")
	for len(lines) > 1 && ansi.Strip(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func (w *blockWriter) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node.Kind() {
	case ast.KindParagraph, ast.KindTextBlock:
		if entering {
			w.inline.Reset()
			break
		}
		if s := w.inline.String(); s != "" {
			w.inline.Reset()
			w.emit(w.wrap(s))
			if !w.tight() {
				w.blank()
			}
		}

	case ast.KindHeading:
		if entering {
			w.inline.Reset()
			break
		}
		w.heading(node.(*ast.Heading))

	case ast.KindFencedCodeBlock:
		if !entering {
			break
		}
		code := node.(*ast.FencedCodeBlock)
		w.blank()
		w.emit(w.highlight(w.lines(node), string(code.Language(w.source))))
		w.blank()
		return ast.WalkSkipChildren, nil

	case ast.KindCodeBlock:
		if !entering {
			break
		}
		w.blank()
		w.emit(w.faint(w.lines(node)))
		w.blank()
		return ast.WalkSkipChildren, nil

	case ast.KindBlockquote:
		if entering {
			w.prefixes = append(w.prefixes, w.style().Foreground(w.theme.Border).Render("│")+" ")
		} else {
			w.prefixes = w.prefixes[:len(w.prefixes)-1]
			w.blank()
		}

	case ast.KindList:
		if entering {
			list := node.(*ast.List)
			w.lists = append(w.lists, listLevel{
				ordered: list.IsOrdered(),
				next:    list.Start,
				tight:   list.IsTight,
			})
		} else {
			w.lists = w.lists[:len(w.lists)-1]
			if !w.tight() {
				w.blank()
			}
		}

	case ast.KindListItem:
		if entering {
			w.listItem()
		} else {
			w.prefixes = w.prefixes[:len(w.prefixes)-1]
			if !w.tight() {
				w.blank()
			}
		}

	case ast.KindThematicBreak:
		if !entering {
			break
		}
		width := w.available()
		if width == 0 {
			width = 20
		}
		w.blank()
		w.emit(w.style().Foreground(w.theme.Border).Render(strings.Repeat("─", width)))
		w.blank()

	case ast.KindHTMLBlock, ast.KindRawHTML:
		return ast.WalkSkipChildren, nil

	case ast.KindText:
		if entering {
			t := node.(*ast.Text)
			w.inline.WriteString(w.styled(string(t.Segment.Value(w.source))))
			switch {
			case t.HardLineBreak():
				w.inline.WriteString("\n")
			case t.SoftLineBreak():
				w.inline.WriteString(" ")
			}
		}

	case ast.KindString:
		if entering {
			w.inline.WriteString(w.styled(string(node.(*ast.String).Value)))
		}

	case ast.KindEmphasis:
		counter := &w.italic
		if node.(*ast.Emphasis).Level >= 2 {
			counter = &w.bold
		}
		if entering {
			*counter++
		} else {
			*counter--
		}

	case ast.KindCodeSpan:
		if !entering {
			break
		}
		w.inline.WriteString(w.style().Foreground(w.theme.Accent).Render(w.plain(node)))
		return ast.WalkSkipChildren, nil

	case ast.KindLink:
		if entering {
			w.underline++
		} else {
			w.underline--
			if dest := string(node.(*ast.Link).Destination); dest != "" {
				w.inline.WriteString(" " + w.faint("("+dest+")"))
			}
		}

	case ast.KindAutoLink:
		if entering {
			url := string(node.(*ast.AutoLink).URL(w.source))
			w.inline.WriteString(w.style().Foreground(w.theme.Faint).Underline(true).Render(url))
		}
		return ast.WalkSkipChildren, nil

	case ast.KindImage:
		if !entering {
			break
		}
		w.inline.WriteString(w.faint("[" + w.plain(node) + "]"))
		return ast.WalkSkipChildren, nil

	case extast.KindStrikethrough:
		if entering {
			w.strike++
		} else {
			w.strike--
		}

	case extast.KindTaskCheckBox:
		if entering {
			mark := "[ ] "
			if node.(*extast.TaskCheckBox).IsChecked {
				mark = "[x] "
			}
			w.inline.WriteString(w.styled(mark))
		}

	case extast.KindTable:
		if !entering {
			break
		}
		w.table(node)
		return ast.WalkSkipChildren, nil
	}
	return ast.WalkContinue, nil
}

func (w *blockWriter) heading(h *ast.Heading) {
	s := ansi.Strip(w.inline.String())
	w.inline.Reset()
	if s == "" {
		return
	}
	style := w.style().Bold(true).Foreground(w.theme.Text)
	if h.Level <= 2 {
		style = style.Foreground(w.theme.Accent)
	}
	if h.Level == 1 {
		s = strings.ToUpper(s)
	}
	w.blank()
	w.emit(w.wrap(style.Render(s)))
	w.blank()
}

func (w *blockWriter) listItem() {
	level := &w.lists[len(w.lists)-1]
	bullet := "• "
	if level.ordered {
		bullet = fmt.Sprintf("%d. ", level.next)
		level.next++
	}
	w.bullet = w.prefix() + bullet
	w.prefixes = append(w.prefixes, strings.Repeat(" ", ansi.StringWidth(bullet)))
}

// table lays out a GFM table with padded columns. Cell text loses its
// inline styling.
func (w *blockWriter) table(node ast.Node) {
	var rows [][]string
	for row := node.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, strings.TrimSpace(w.plain(cell)))
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return
	}

	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], ansi.StringWidth(cell))
		}
	}

	border := w.style().Foreground(w.theme.Border)
	var lines []string
	for r, row := range rows {
		cells := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cell += strings.Repeat(" ", widths[i]-ansi.StringWidth(cell))
			if r == 0 {
				cells[i] = w.style().Bold(true).Foreground(w.theme.Text).Render(cell)
			} else {
				cells[i] = w.styled(cell)
			}
		}
		lines = append(lines, strings.Join(cells, border.Render(" │ ")))
		if r == 0 {
			rules := make([]string, len(widths))
			for i, width := range widths {
				rules[i] = strings.Repeat("─", width)
			}
			lines = append(lines, border.Render(strings.Join(rules, "─┼─")))
		}
	}
	w.blank()
	w.emit(strings.Join(lines, "\n"))
	w.blank()
}
