package tui

import (
	"jsonedit/internal/config"
	"jsonedit/internal/editor"
	"jsonedit/internal/log"
	"jsonedit/internal/tui/components"
	"jsonedit/internal/tui/keys"
	"jsonedit/internal/tui/styles"
	"jsonedit/internal/tui/views"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type Model struct {
	// Core state
	state editor.State

	// Terminal
	width  int
	height int

	// Rendering
	keys keys.KeyMap
	list *components.PairList
	view *views.MainView

	// Set when the user interrupted with ctrl+c
	aborted bool
}

// New creates the model for cfg. A nil cfg uses the defaults.
func New(cfg *config.Config) *Model {
	if cfg == nil {
		cfg = config.New()
	}

	st := styles.New(cfg.Theme)
	km := keys.DefaultKeyMap()
	list := components.NewPairList(st, cfg.Display.KeyWidth, cfg.MaskMatcher())

	m := &Model{
		state: editor.New(),
		keys:  km,
		list:  list,
		view: &views.MainView{
			Styles: st,
			List:   list,
			Footer: components.NewStatusBar(st, km),
		},
	}
	m.resize(0, 0)
	m.list.SetPairs(m.state.Pairs())
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	log.Info("editor started")
	return nil
}

// View implements tea.Model
func (m *Model) View() string {
	if m.state.Done() || m.aborted {
		return ""
	}
	return m.view.Render(m)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(views.BodySize(width, height))
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		log.Warn("interrupted, discarding pairs")
		m.aborted = true
		return m, tea.Quit
	}

	if m.state.Screen() == editor.Main && key.Matches(msg, m.keys.Up, m.keys.Down) {
		return m, m.list.Update(msg)
	}

	for _, in := range keys.Translate(msg) {
		prev := m.state
		next, effect := editor.Reduce(prev, in)
		m.state = next
		logTransition(prev, next, in)

		if effect == editor.EffectQuit {
			log.LogWithFields(log.F("pairs", next.Pairs().Len())).Info("quit confirmed")
			return m, tea.Quit
		}
	}

	m.list.SetPairs(m.state.Pairs())
	return m, nil
}

func logTransition(prev, next editor.State, in editor.Input) {
	if prev.Screen() != next.Screen() {
		log.LogWithFields(
			log.F("from", prev.Screen().String()),
			log.F("to", next.Screen().String()),
			log.F("input", in.String()),
		).Debug("screen changed")
	}

	if prev.Screen() != editor.Editing || next.Screen() != editor.Main {
		return
	}

	k := prev.PendingKey()
	switch {
	case in.Kind == editor.Esc:
		log.Debug("draft discarded")
	case k == "":
		log.Debug("empty key, nothing committed")
	default:
		_, existed := prev.Pairs().Get(k)
		log.LogWithFields(
			log.F("key", k),
			log.F("overwrite", existed),
			log.F("pairs", next.Pairs().Len()),
		).Info("pair committed")
	}
}

// State returns the editor state.
func (m *Model) State() editor.State {
	return m.state
}

// Done reports whether the user confirmed quitting.
func (m *Model) Done() bool {
	return m.state.Done()
}

// Aborted reports whether the user interrupted with ctrl+c.
func (m *Model) Aborted() bool {
	return m.aborted
}

// Getters used by the views

func (m *Model) Screen() editor.Screen {
	return m.state.Screen()
}

func (m *Model) EditingField() (editor.Field, bool) {
	return m.state.EditingField()
}

func (m *Model) Pairs() editor.Pairs {
	return m.state.Pairs()
}

func (m *Model) PendingKey() string {
	return m.state.PendingKey()
}

func (m *Model) PendingValue() string {
	return m.state.PendingValue()
}

func (m *Model) Width() int {
	return m.width
}

func (m *Model) Height() int {
	return m.height
}
