package ui

import (
	"reflect"
	"strings"

	"github.com/atomicstack/listpager/internal/backend"
	"github.com/atomicstack/listpager/internal/pager"
	"github.com/atomicstack/listpager/internal/source"
	"github.com/atomicstack/listpager/internal/theme"
	"github.com/atomicstack/listpager/internal/ui/command"
	uistate "github.com/atomicstack/listpager/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Mode int

const (
	ModeList Mode = iota
	ModeGoto
)

const listContainer = "listpager"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	PageSize   int
	Display    pager.Display
	Matcher    pager.Matcher
	Query      string
	Width      int
	Height     int
	ShowFooter bool
	// Reloads, when set, delivers fresh item lists that replace the current
	// ones.
	Reloads <-chan backend.Event
	Source  string
}

// Model implements the Bubble Tea model and the pager.View for one list.
type Model struct {
	store  *pager.Store
	bus    *command.Bus
	list   *pager.SliceList
	filter *pager.Filter

	rows    []*row
	byItem  map[pager.Item]*row
	pager   *pagerWidget
	display pager.Display

	reloads <-chan backend.Event
	source  string
	errMsg  string

	query            uistate.Query
	queryCursor      cursor.Model
	queryCursorDirty bool
	gotoInput        textinput.Model

	keys        KeyMap
	mode        Mode
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	handlers map[reflect.Type]msgHandler
}

// NewModel paginates entries and attaches search to them.
func NewModel(entries []*source.Entry, opts Options) *Model {
	display := opts.Display
	if display == "" {
		display = pager.DefaultDisplay
	}
	m := &Model{
		display:    display,
		reloads:    opts.Reloads,
		source:     opts.Source,
		keys:       DefaultKeyMap(),
		mode:       ModeList,
		showFooter: opts.ShowFooter,
	}
	items := m.setRows(entries)
	m.list = pager.NewSliceList(listContainer, items...)
	m.store = pager.NewStore(m)
	m.bus = command.New(m.store)
	m.store.Paginate(m.list, pager.Config{PageSize: opts.PageSize})
	searchOpts := []pager.SearchOption{pager.WithMatchFunc(pager.ItemText)}
	if opts.Matcher != nil {
		searchOpts = append(searchOpts, pager.WithMatcher(opts.Matcher))
	}
	m.filter = m.store.Attach(m.list, searchOpts...)

	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}

	c := cursor.New()
	c.Style = *styles.Cursor
	c.TextStyle = *styles.Query
	c.SetChar(" ")
	m.queryCursor = c

	in := textinput.New()
	in.Prompt = "page: "
	in.Placeholder = "number"
	in.CharLimit = 12
	m.gotoInput = in

	if strings.TrimSpace(opts.Query) != "" {
		m.query.Set(opts.Query, len([]rune(opts.Query)))
		m.runSearch()
	}
	m.registerHandlers()
	return m
}

// Handle returns the pager session handle backing the model.
func (m *Model) Handle() pager.Handle {
	return m.filter.Handle()
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.queryCursor.Focus(), m.waitForReload())
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateQueryCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(reloadMsg{}):         m.handleReloadMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.queryCursorDirty {
		m.queryCursorDirty = false
		m.queryCursor.Blink = false
		if cmd := m.queryCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

// State reports the pager state of the model's session.
func (m *Model) State() pager.State {
	st, _ := m.store.State(m.Handle())
	return st
}
