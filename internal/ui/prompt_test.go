package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/watchlist/internal/shared"
)

func typeInto(m promptModel, s string) promptModel {
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(promptModel)
	}
	return m
}

func press(m promptModel, k tea.KeyType) (promptModel, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(promptModel), cmd
}

func TestPromptModel(t *testing.T) {
	t.Run("enter submits value", func(t *testing.T) {
		m := typeInto(newPromptModel("Username", false), "admin")

		if !strings.Contains(m.View(), "admin") {
			t.Errorf("visible prompt should echo input, got %q", m.View())
		}

		m, cmd := press(m, tea.KeyEnter)
		if cmd == nil {
			t.Fatal("expected quit command on enter")
		}

		got, err := m.result()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "admin" {
			t.Errorf("expected admin, got %q", got)
		}
	})

	t.Run("hidden input is not echoed", func(t *testing.T) {
		m := typeInto(newPromptModel("Password", true), "hunter2")

		if strings.Contains(m.View(), "hunter2") {
			t.Errorf("hidden prompt leaked input: %q", m.View())
		}

		m, _ = press(m, tea.KeyEnter)
		if strings.Contains(m.View(), "hunter2") {
			t.Errorf("final view leaked input: %q", m.View())
		}

		got, err := m.result()
		if err != nil || got != "hunter2" {
			t.Errorf("expected hunter2, got %q (%v)", got, err)
		}
	})

	t.Run("escape cancels", func(t *testing.T) {
		tc := []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC}

		for _, k := range tc {
			m := typeInto(newPromptModel("Password", true), "abc")
			m, _ = press(m, k)

			if _, err := m.result(); !errors.Is(err, shared.ErrCancelled) {
				t.Errorf("key %v: expected ErrCancelled, got %v", k, err)
			}
		}
	})

	t.Run("unfinished prompt is cancelled", func(t *testing.T) {
		if _, err := newPromptModel("Username", false).result(); !errors.Is(err, shared.ErrCancelled) {
			t.Errorf("expected ErrCancelled, got %v", err)
		}
	})
}

func TestPalette(t *testing.T) {
	p := NewPalette("#000000", "#000000", "#000000", "#000000", "#000000")
	for name, out := range map[string]string{
		"title": p.Title("watchlist"),
		"ok":    p.OK("watchlist"),
		"err":   p.Err("watchlist"),
		"warn":  p.Warn("watchlist"),
		"help":  p.Help("watchlist"),
	} {
		if !strings.Contains(out, "watchlist") {
			t.Errorf("%s style dropped text: %q", name, out)
		}
	}
}
