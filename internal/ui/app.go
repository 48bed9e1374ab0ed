package ui

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"kite/internal/orbit"
	"kite/internal/search"
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Client  orbit.Searcher
	Logger  *log.Logger // event trace sink; nil disables tracing
}

// Model is the root application state for Bubble Tea. It is the imperative
// driver around the pure core: it sequences events, feeds them to
// search.Reduce, and performs the one side-effecting call (the transport
// search) as a command whose result is re-enqueued as an event.
type Model struct {
	// Collaborators
	ctx    context.Context
	client orbit.Searcher
	logger *log.Logger

	// UI chrome
	keys  keyMap
	theme Theme

	// Core state and its derived view
	state search.ViewState
	desc  search.ViewDescription

	// Filter form, aligned index-for-index with orbit.Fields
	inputs   []textinput.Model
	focusIdx int

	width  int
	height int
	ready  bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	state := search.NewViewState()

	m := Model{
		ctx:    ctx,
		client: opts.Client,
		logger: opts.Logger,
		keys:   DefaultKeyMap(),
		theme:  DefaultTheme(),
		state:  state,
		desc:   search.Describe(state),
		inputs: newFilterInputs(),
	}
	m.inputs[0].Focus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case searchSucceededMsg:
		return m, m.dispatch(search.SearchSucceeded{Page: msg.page})

	case searchFailedMsg:
		return m, m.dispatch(search.SearchFailed{Failure: msg.failure})
	}

	// Everything else (cursor blinks and friends) goes to the focused input.
	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextField):
		cmd := m.commitFocused()
		m.moveFocus(1)
		return m, cmd

	case key.Matches(msg, m.keys.PrevField):
		cmd := m.commitFocused()
		m.moveFocus(-1)
		return m, cmd

	case key.Matches(msg, m.keys.Submit):
		// Commit the field under the cursor first so the triggered search
		// snapshots what the user sees.
		var cmds []tea.Cmd
		if cmd := m.commitFocused(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		if cmd := m.dispatch(search.SearchTriggered{}); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	return m, cmd
}

// dispatch runs one event through the reducer, re-derives the view when the
// event was dirty, and returns the follow-up command a trigger demands. Every
// event and the post-reduction query are traced to the log sink.
func (m *Model) dispatch(event search.Event) tea.Cmd {
	m.logf("event %s: %+v", event.Type(), event)

	next, dirty := search.Reduce(m.state, event)
	m.state = next
	if dirty {
		m.desc = search.Describe(next)
	}
	m.logf("query: %+v", next.Query)

	if _, ok := event.(search.SearchTriggered); ok {
		return searchCmd(m.ctx, m.client, next.Query)
	}
	return nil
}

func (m *Model) logf(format string, args ...any) {
	if m.logger != nil {
		m.logger.Printf(format, args...)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Title.Render("Search Templates"))
	b.WriteString("\n\n")
	b.WriteString(m.renderForm())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")
	b.WriteString(m.renderTable())
	return b.String()
}

// renderStatus paints the line between the form and the table: the in-flight
// indicator or the current row count.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	if m.desc.Pending {
		return styles.WarningText.Render("Searching...")
	}
	switch n := len(m.desc.Table.Rows); {
	case n == 1:
		return styles.MutedText.Render("1 template")
	case n > 1:
		return styles.MutedText.Render(strconv.Itoa(n) + " templates")
	default:
		return styles.FaintText.Render("No results yet")
	}
}

// Messages

type searchSucceededMsg struct {
	page orbit.QueryResult
}

type searchFailedMsg struct {
	failure *orbit.Failure
}

// Commands

// searchCmd issues the transport call with a snapshot of the query and wraps
// the single outcome back into a message for the event loop. Overlapping
// searches are allowed; whichever result message is processed last wins.
func searchCmd(ctx context.Context, client orbit.Searcher, query orbit.Query) tea.Cmd {
	return func() tea.Msg {
		page, err := client.Search(ctx, query)
		if err != nil {
			return searchFailedMsg{failure: orbit.AsFailure(err)}
		}
		return searchSucceededMsg{page: page}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, progOpts...)
	_, err := p.Run()
	return err
}
