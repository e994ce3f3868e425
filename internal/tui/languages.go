package tui

import (
	"fmt"
	"io"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"langmap/internal/langdata"
	"langmap/internal/palette"
)

type languageItem struct {
	lang     langdata.Language
	color    palette.Color
	selected bool
}

func (i languageItem) Title() string       { return i.lang.Name }
func (i languageItem) Description() string { return i.lang.Code }
func (i languageItem) FilterValue() string { return i.lang.Name + " " + i.lang.NativeName }

// languageDelegate draws one line per language with its highlight swatch.
type languageDelegate struct{}

func (languageDelegate) Height() int                             { return 1 }
func (languageDelegate) Spacing() int                            { return 0 }
func (languageDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (languageDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(languageItem)
	if !ok {
		return
	}
	mark := dimStyle.Render("□")
	if it.selected {
		mark = swatch(it.color)
	}
	name := runewidth.Truncate(it.lang.Name, max(4, m.Width()-4), "…")
	if index == m.Index() {
		fmt.Fprintf(w, "%s %s %s", cursorStyle.Render("›"), mark, cursorStyle.Render(name))
		return
	}
	fmt.Fprintf(w, "  %s %s", mark, name)
}

func newLanguageList() list.Model {
	l := list.New(nil, languageDelegate{}, 0, 0)
	l.Title = "Languages"
	l.Styles.Title = titleStyle
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	return l
}

// refreshLanguages rebuilds the selector items so swatches follow the
// current selection.
func (m *Model) refreshLanguages() tea.Cmd {
	all := m.data.AllLanguages()
	items := make([]list.Item, 0, len(all))
	for _, l := range all {
		c, ok := m.selection.Color(l.Code)
		items = append(items, languageItem{lang: l, color: c, selected: ok})
	}
	return m.langs.SetItems(items)
}

// selectionSummary mirrors the selector header.
func (m Model) selectionSummary() string {
	switch n := m.selection.Len(); n {
	case 0:
		return "No languages selected"
	case 1:
		return "1 language selected"
	default:
		return fmt.Sprintf("%d languages selected", n)
	}
}
