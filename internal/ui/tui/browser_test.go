package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/klauern/plugindex/internal/model"
)

func browserDocs() []*model.Document {
	return []*model.Document{
		{
			Name:        "code-reviewer",
			Description: "Reviews Go changes before merge",
			Toolkit:     "go-toolkit",
			Role:        model.RoleAgent,
			RelPath:     "go-toolkit/agents/code-reviewer.md",
			Tools:       []string{"Read", "Grep"},
			Body:        "You are a senior reviewer.",
		},
		{
			Name:        "deploy-playbook",
			Description: "Writes Ansible playbooks",
			Toolkit:     "ansible-toolkit",
			Role:        model.RoleSkill,
			RelPath:     "ansible-toolkit/skills/deploy-playbook/SKILL.md",
			Body:        "Playbook authoring procedure.",
		},
		{
			Name:        "smart-commit",
			Description: "Commits staged work",
			Toolkit:     "go-toolkit",
			Role:        model.RoleCommand,
			RelPath:     "go-toolkit/commands/smart-commit.md",
			Body:        "Commit instructions.",
		},
	}
}

func TestNewBrowserModel(t *testing.T) {
	m := NewBrowserModel(browserDocs())

	if len(m.docs) != 3 {
		t.Errorf("expected 3 documents, got %d", len(m.docs))
	}
	if len(m.filtered) != 3 {
		t.Errorf("expected 3 filtered documents, got %d", len(m.filtered))
	}
	if m.phase != browserPhaseList {
		t.Errorf("expected list phase, got %d", m.phase)
	}
}

func TestBrowserModel_Filter(t *testing.T) {
	m := NewBrowserModel(browserDocs())
	m.filter = "ansible"
	m.applyFilter()

	if len(m.filtered) != 1 {
		t.Fatalf("expected 1 filtered document, got %d", len(m.filtered))
	}
	if m.filtered[0].Name != "deploy-playbook" {
		t.Errorf("expected deploy-playbook, got %s", m.filtered[0].Name)
	}
}

func TestBrowserModel_FilterMatchesRole(t *testing.T) {
	m := NewBrowserModel(browserDocs())
	m.filter = "command"
	m.applyFilter()

	if len(m.filtered) != 1 {
		t.Fatalf("expected 1 filtered document, got %d", len(m.filtered))
	}
	if m.filtered[0].Name != "smart-commit" {
		t.Errorf("expected smart-commit, got %s", m.filtered[0].Name)
	}
}

func TestBrowserModel_ClearFilter(t *testing.T) {
	m := NewBrowserModel(browserDocs())
	m.filter = "ansible"
	m.applyFilter()

	if len(m.filtered) != 1 {
		t.Fatalf("expected 1 filtered document, got %d", len(m.filtered))
	}

	m.filter = ""
	m.applyFilter()

	if len(m.filtered) != 3 {
		t.Errorf("expected 3 documents after clearing filter, got %d", len(m.filtered))
	}
}

func TestBrowserModel_QuitKey(t *testing.T) {
	m := NewBrowserModel(browserDocs())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command, got nil")
	}
	if !updated.(BrowserModel).quitting {
		t.Error("expected quitting to be set")
	}
}

func TestBrowserModel_DetailPhase(t *testing.T) {
	m := NewBrowserModel(browserDocs())

	// Size the model so the viewport exists before entering details.
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(BrowserModel)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(BrowserModel)

	if m.phase != browserPhaseDetail {
		t.Fatalf("expected detail phase, got %d", m.phase)
	}
	if m.detail == nil || m.detail.Name != "code-reviewer" {
		t.Fatalf("expected code-reviewer detail, got %+v", m.detail)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	m = updated.(BrowserModel)

	if m.phase != browserPhaseList {
		t.Errorf("expected list phase after back, got %d", m.phase)
	}
}

func TestDetailContent(t *testing.T) {
	docs := browserDocs()
	content := detailContent(docs[0])

	for _, want := range []string{"go-toolkit", "Agent", "Read, Grep", "senior reviewer"} {
		if !strings.Contains(content, want) {
			t.Errorf("detail content missing %q:\n%s", want, content)
		}
	}
}

func TestBrowserModel_View(t *testing.T) {
	m := NewBrowserModel(browserDocs())

	view := m.View()
	if !strings.Contains(view, "3/3 documents") {
		t.Errorf("view missing status line:\n%s", view)
	}
}
