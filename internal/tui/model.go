// Package tui is the interactive settings editor shown before the game
// starts.
package tui

import (
	"errors"
	"strconv"

	"palcfg/internal/config"
	"palcfg/internal/labels"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Result is how the editor was closed.
type Result int

const (
	// ResultExit closes the editor without saving.
	ResultExit Result = iota
	// ResultLaunch means the settings were saved and the game should start.
	ResultLaunch
)

// Model is the bubbletea model of the settings editor.
type Model struct {
	store    *config.Store
	path     string
	labels   *labels.Labels
	sections []section
	fields   []field

	keys     KeyMap
	help     help.Model
	input    textinput.Model
	cursor   int
	editing  bool
	showHelp bool
	status   string
	failed   bool
	result   Result
	width    int
}

// New creates an editor over store showing the fields of profile. Launching
// saves to path.
func New(store *config.Store, profile config.Profile, path string, l *labels.Labels) Model {
	sections := layout(store, profile, l)
	var fields []field
	for _, s := range sections {
		fields = append(fields, s.fields...)
	}

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 1024

	return Model{
		store:    store,
		path:     path,
		labels:   l,
		sections: sections,
		fields:   fields,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		input:    input,
		width:    80,
	}
}

// Run shows the editor until the user exits or launches.
func Run(model Model, opts ...tea.ProgramOption) (Result, error) {
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return ResultExit, err
	}
	if m, ok := final.(Model); ok {
		return m.result, nil
	}
	return ResultExit, nil
}

// Result reports how the editor was closed.
func (model Model) Result() Result {
	return model.result
}

func (model Model) Init() tea.Cmd {
	return nil
}

func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		model.width = typed.Width
		model.help.Width = typed.Width
		return model, nil
	case tea.KeyMsg:
		if model.editing {
			return model.updateEditing(typed)
		}
		return model.handleKey(typed)
	}
	return model, nil
}

func (model Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Quit):
		model.result = ResultExit
		return model, tea.Quit
	case key.Matches(msg, model.keys.Launch):
		if err := config.MarkLaunched(model.store, model.path); err != nil {
			model = model.fail(err)
			return model, nil
		}
		model.result = ResultLaunch
		return model, tea.Quit
	case key.Matches(msg, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}
	case key.Matches(msg, model.keys.Down):
		if model.cursor < len(model.fields)-1 {
			model.cursor++
		}
	case key.Matches(msg, model.keys.Left):
		model = model.step(-1)
	case key.Matches(msg, model.keys.Right):
		model = model.step(1)
	case key.Matches(msg, model.keys.Toggle):
		model = model.toggle()
	case key.Matches(msg, model.keys.Edit):
		if f, ok := model.current(); ok && f.widget == widgetText {
			value, _ := model.store.EntryValue(f.name)
			model.input.SetValue(value)
			model.input.CursorEnd()
			model.editing = true
			model.status = ""
			return model, model.input.Focus()
		}
		model = model.toggle()
	case key.Matches(msg, model.keys.Defaults):
		for _, f := range model.fields {
			_ = model.store.RestoreEntryDefault(f.name)
		}
		model = model.ok(model.labels.Default)
	case key.Matches(msg, model.keys.Revert):
		for _, f := range model.fields {
			_ = model.store.RestoreEntryFileValue(f.name)
		}
		model = model.ok(model.labels.Revert)
	case key.Matches(msg, model.keys.Help):
		model.showHelp = !model.showHelp
		model.help.ShowAll = model.showHelp
	}
	return model, nil
}

// updateEditing feeds keys to the text input. Enter commits strictly: a
// value the entry would have to correct is refused and the old one kept.
func (model Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Edit):
		f, _ := model.current()
		model.editing = false
		model.input.Blur()
		if err := model.store.SetEntryValue(f.name, model.input.Value()); err != nil {
			return model.fail(err), nil
		}
		model.status = ""
		return model, nil
	case key.Matches(msg, model.keys.Cancel):
		model.editing = false
		model.input.Blur()
		return model, nil
	}
	var cmd tea.Cmd
	model.input, cmd = model.input.Update(msg)
	return model, cmd
}

func (model Model) current() (field, bool) {
	if model.cursor < 0 || model.cursor >= len(model.fields) {
		return field{}, false
	}
	return model.fields[model.cursor], true
}

// toggle flips a check box and cycles a combo box, wrapping around.
func (model Model) toggle() Model {
	f, ok := model.current()
	if !ok {
		return model
	}
	switch f.widget {
	case widgetCheck:
		value, _ := model.store.EntryValue(f.name)
		next := "1"
		if value == "1" {
			next = "0"
		}
		if err := model.store.SetEntryValue(f.name, next); err != nil {
			return model.fail(err)
		}
	case widgetCombo:
		index, err := model.store.EntryValueAsIndex(f.name)
		if err != nil {
			return model.fail(err)
		}
		if err := model.store.SetEntryIndexAsValue(f.name, index+1); err != nil {
			if !errors.Is(err, config.ErrIndexOutOfRange) {
				return model.fail(err)
			}
			_ = model.store.SetEntryIndexAsValue(f.name, 0)
		}
	}
	return model
}

// step moves a combo box by one choice or a scale by one notch, stopping at
// either end.
func (model Model) step(delta int) Model {
	f, ok := model.current()
	if !ok {
		return model
	}
	switch f.widget {
	case widgetCheck:
		next := "0"
		if delta > 0 {
			next = "1"
		}
		if err := model.store.SetEntryValue(f.name, next); err != nil {
			return model.fail(err)
		}
	case widgetCombo:
		index, err := model.store.EntryValueAsIndex(f.name)
		if err != nil {
			return model.fail(err)
		}
		if index+delta < 0 {
			return model
		}
		if err := model.store.SetEntryIndexAsValue(f.name, index+delta); err != nil && !errors.Is(err, config.ErrIndexOutOfRange) {
			return model.fail(err)
		}
	case widgetScale:
		e, err := model.store.Entry(f.name)
		if err != nil {
			return model.fail(err)
		}
		r, ok := e.Domain().(config.Range)
		if !ok {
			return model
		}
		n, err := strconv.ParseInt(e.Value(), 10, 64)
		if err != nil {
			return model
		}
		next := e.Correct(strconv.FormatInt(n+int64(delta)*notch(r), 10))
		if err := e.SetValue(next); err != nil {
			return model.fail(err)
		}
	}
	return model
}

// notch is the scale step: single units for short ranges, fives otherwise.
func notch(r config.Range) int64 {
	if r.Span() <= 10 {
		return 1
	}
	return 5
}

func (model Model) ok(status string) Model {
	model.status = status
	model.failed = false
	return model
}

func (model Model) fail(err error) Model {
	model.status = err.Error()
	model.failed = true
	return model
}
