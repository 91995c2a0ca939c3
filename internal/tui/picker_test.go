package tui

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func pick(t *testing.T, p Picker, keys ...tea.KeyMsg) (Picker, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, key := range keys {
		var model tea.Model
		model, cmd = p.Update(key)
		p = model.(Picker)
	}
	return p, cmd
}

func TestPickerDefaultsToAllSelected(t *testing.T) {
	p := NewPicker([]string{"Aria", "Beo", "Cai"}, true)
	if got := p.Selected(); !slices.Equal(got, []string{"Aria", "Beo", "Cai"}) {
		t.Fatalf("Selected() = %v", got)
	}
	if got := NewPicker([]string{"Aria"}, false).Selected(); len(got) != 0 {
		t.Fatalf("expected nothing selected, got %v", got)
	}
}

func TestPickerToggleAndSubmit(t *testing.T) {
	p := NewPicker([]string{"Aria", "Beo", "Cai"}, true)
	p, cmd := pick(t, p,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if !p.Submitted() || cmd == nil {
		t.Fatal("enter should submit")
	}
	if got := p.Selected(); !slices.Equal(got, []string{"Aria", "Cai"}) {
		t.Fatalf("Selected() = %v", got)
	}
}

func TestPickerToggleAll(t *testing.T) {
	p := NewPicker([]string{"Aria", "Beo"}, true)
	p, _ = pick(t, p, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if len(p.Selected()) != 0 {
		t.Fatalf("toggle all from full should clear, got %v", p.Selected())
	}
	p, _ = pick(t, p, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if len(p.Selected()) != 2 {
		t.Fatalf("toggle all from empty should select all, got %v", p.Selected())
	}
}

func TestPickerCursorBounds(t *testing.T) {
	p := NewPicker([]string{"Aria", "Beo"}, false)
	p, _ = pick(t, p,
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
	)
	if got := p.Selected(); !slices.Equal(got, []string{"Beo"}) {
		t.Fatalf("Selected() = %v", got)
	}
}

func TestPickerCancel(t *testing.T) {
	p, cmd := pick(t, NewPicker([]string{"Aria"}, true), tea.KeyMsg{Type: tea.KeyEsc})
	if !p.Cancelled() || p.Submitted() || cmd == nil {
		t.Fatal("esc should cancel")
	}
}

func TestPickerEmptyList(t *testing.T) {
	p, _ := pick(t, NewPicker(nil, true), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if len(p.Selected()) != 0 {
		t.Fatal("empty picker should select nothing")
	}
}

func TestPickerView(t *testing.T) {
	view := NewPicker([]string{"Aria", "Beo"}, true).View()
	for _, want := range []string{"Select characters", "Aria", "Beo", "> "} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestPickCharactersRunsProgram(t *testing.T) {
	var out bytes.Buffer
	selected, err := PickCharacters(context.Background(), []string{"Aria", "Beo"}, true, Options{
		Input:  strings.NewReader("\r"),
		Output: &out,
	})
	if err != nil {
		t.Fatalf("PickCharacters: %v", err)
	}
	if !slices.Equal(selected, []string{"Aria", "Beo"}) {
		t.Fatalf("selected = %v", selected)
	}
}

func TestPickCharactersCancelled(t *testing.T) {
	var out bytes.Buffer
	_, err := PickCharacters(context.Background(), []string{"Aria"}, true, Options{
		Input:  strings.NewReader("q"),
		Output: &out,
	})
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
}
