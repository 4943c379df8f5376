// Package tui provides the interactive registry browser using BubbleTea.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/klauern/plugindex/internal/model"
	"github.com/klauern/plugindex/internal/ui"
)

// browserKeyMap defines the key bindings for the registry browser.
type browserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Detail   key.Binding
	Filter   key.Binding
	ClearFlt key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func defaultBrowserKeyMap() browserKeyMap {
	return browserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Detail: key.NewBinding(
			key.WithKeys("enter", "v"),
			key.WithHelp("enter/v", "details"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		ClearFlt: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b/esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Styles for the registry browser.
var browserStyles = struct {
	Title       lipgloss.Style
	Help        lipgloss.Style
	Filter      lipgloss.Style
	FilterInput lipgloss.Style
	Status      lipgloss.Style
	DetailBox   lipgloss.Style
	DetailTitle lipgloss.Style
}{
	Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Padding(0, 1),
	Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	FilterInput: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
	DetailBox:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	DetailTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
}

type browserPhase int

const (
	browserPhaseList browserPhase = iota
	browserPhaseDetail
)

// BrowserModel is the BubbleTea model for browsing a built registry.
type BrowserModel struct {
	table     table.Model
	docs      []*model.Document
	filtered  []*model.Document
	keys      browserKeyMap
	filter    string
	filtering bool
	width     int
	height    int
	phase     browserPhase
	detail    *model.Document
	viewport  viewport.Model
	ready     bool
	quitting  bool
}

// NewBrowserModel creates a browser over the given documents.
func NewBrowserModel(docs []*model.Document) BrowserModel {
	m := BrowserModel{
		docs:     docs,
		filtered: docs,
		keys:     defaultBrowserKeyMap(),
	}
	m.table = newBrowserTable(docs, 0)
	return m
}

func newBrowserTable(docs []*model.Document, height int) table.Model {
	columns := []table.Column{
		{Title: "TOOLKIT", Width: 18},
		{Title: "ROLE", Width: 8},
		{Title: "NAME", Width: 26},
		{Title: "DESCRIPTION", Width: 44},
	}

	rows := make([]table.Row, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, table.Row{d.Toolkit, string(d.Role), d.Name, d.Description})
	}

	if height <= 0 {
		height = 15
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("6"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	t.SetStyles(styles)

	return t
}

// Init implements tea.Model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-6, 3))
		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, max(msg.Height-8, 3))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = max(msg.Height-8, 3)
		}
		return m, nil

	case tea.KeyMsg:
		if m.phase == browserPhaseDetail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

// updateList handles keys for the list phase.
func (m BrowserModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.Type {
		case tea.KeyEnter:
			m.filtering = false
		case tea.KeyEsc:
			m.filtering = false
			m.filter = ""
			m.applyFilter()
		case tea.KeyBackspace:
			if len(m.filter) > 0 {
				m.filter = m.filter[:len(m.filter)-1]
				m.applyFilter()
			}
		case tea.KeySpace:
			m.filter += " "
			m.applyFilter()
		case tea.KeyRunes:
			m.filter += string(msg.Runes)
			m.applyFilter()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, nil
	case key.Matches(msg, m.keys.ClearFlt):
		m.filter = ""
		m.applyFilter()
		return m, nil
	case key.Matches(msg, m.keys.Detail):
		if doc := m.selected(); doc != nil {
			m.detail = doc
			m.phase = browserPhaseDetail
			if m.ready {
				m.viewport.SetContent(detailContent(doc))
				m.viewport.GotoTop()
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// updateDetail handles keys for the detail phase.
func (m BrowserModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.phase = browserPhaseList
		m.detail = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// selected returns the document under the cursor, nil when the filtered
// list is empty.
func (m BrowserModel) selected() *model.Document {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.filtered) {
		return nil
	}
	return m.filtered[idx]
}

// applyFilter narrows the visible documents by a case-insensitive match
// against toolkit, role, name, and description.
func (m *BrowserModel) applyFilter() {
	if m.filter == "" {
		m.filtered = m.docs
	} else {
		needle := strings.ToLower(m.filter)
		var filtered []*model.Document
		for _, d := range m.docs {
			haystack := strings.ToLower(d.Toolkit + " " + string(d.Role) + " " + d.Name + " " + d.Description)
			if strings.Contains(haystack, needle) {
				filtered = append(filtered, d)
			}
		}
		m.filtered = filtered
	}

	rows := make([]table.Row, 0, len(m.filtered))
	for _, d := range m.filtered {
		rows = append(rows, table.Row{d.Toolkit, string(d.Role), d.Name, d.Description})
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// detailContent renders one document's front matter and body for the
// detail viewport.
func detailContent(doc *model.Document) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Toolkit:  %s\n", doc.Toolkit))
	b.WriteString(fmt.Sprintf("Role:     %s\n", ui.RoleTitle(doc.Role)))
	b.WriteString(fmt.Sprintf("Path:     %s\n", doc.RelPath))
	if len(doc.Tools) > 0 {
		b.WriteString(fmt.Sprintf("Tools:    %s\n", strings.Join(doc.Tools, ", ")))
	}
	if hint := doc.ArgumentHint(); hint != "" {
		b.WriteString(fmt.Sprintf("Args:     %s\n", hint))
	}
	b.WriteString("\n")
	b.WriteString(strings.TrimSpace(doc.Body))

	return b.String()
}

// View implements tea.Model.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	if m.phase == browserPhaseDetail && m.detail != nil {
		title := browserStyles.DetailTitle.Render(m.detail.Name)
		body := m.viewport.View()
		help := browserStyles.Help.Render("↑/↓ scroll · b/esc back · q quit")
		return browserStyles.DetailBox.Render(title+"\n\n"+body) + "\n" + help
	}

	var b strings.Builder
	b.WriteString(browserStyles.Title.Render("plugindex browser"))
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")

	if m.filtering || m.filter != "" {
		b.WriteString(browserStyles.Filter.Render("filter: "))
		b.WriteString(browserStyles.FilterInput.Render(m.filter))
		b.WriteString("\n")
	}

	status := fmt.Sprintf("%d/%d documents", len(m.filtered), len(m.docs))
	b.WriteString(browserStyles.Status.Render(status))
	b.WriteString("\n")
	b.WriteString(browserStyles.Help.Render("enter details · / filter · q quit"))

	return b.String()
}

// Browse runs the interactive browser over a set of documents.
func Browse(docs []*model.Document) error {
	p := tea.NewProgram(NewBrowserModel(docs), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
