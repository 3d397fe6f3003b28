package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sixcities/internal/listing"
	"github.com/five82/sixcities/internal/prefs"
	"github.com/five82/sixcities/internal/sixcities"
	"github.com/five82/sixcities/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewOffers View = iota
	ViewDetail
	ViewFavorites
	ViewLogs
)

// Operations is what the UI asks of the operations layer.
type Operations interface {
	Login(ctx context.Context, creds sixcities.AuthData) error
	Logout(ctx context.Context) error
	FetchOffers(ctx context.Context) error
	FetchFavorites(ctx context.Context) error
	OpenOffer(ctx context.Context, id string) error
	LeaveOffer()
	ToggleOfferFavorite(ctx context.Context, offer sixcities.Offer) error
	ToggleCurrentFavorite(ctx context.Context) error
	CreateComment(ctx context.Context, id string, form sixcities.ReviewForm) error
	SelectCity(city sixcities.City)
	SelectSort(sort listing.SortName)
	Hover(id string)
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Ops       Operations
	Logger    *slog.Logger
	LogPath   string
	Prefs     prefs.Prefs
	PrefsPath string
	Tick      time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	ops       Operations
	logger    *slog.Logger
	logPath   string
	prefs     prefs.Prefs
	prefsPath string
	tick      time.Duration
	keys      keyMap

	// UI state
	theme  Theme
	view   View
	width  int
	height int
	ready  bool

	// Data state
	snapshot state.State
	memo     *listing.Memo

	selected    int
	favSelected int

	detailViewport viewport.Model
	logViewport    viewport.Model
	logLines       []string

	spinner spinner.Model
	busy    int

	form     *form
	showHelp bool

	notice    string
	noticeErr bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	tick := opts.Tick
	if tick == 0 {
		tick = DefaultUIInterval
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:       ctx,
		store:     opts.Store,
		ops:       opts.Ops,
		logger:    logger,
		logPath:   opts.LogPath,
		prefs:     opts.Prefs,
		prefsPath: prefsPath,
		tick:      tick,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(opts.Prefs.Theme),
		view:      ViewOffers,
		memo:      &listing.Memo{},
		spinner:   spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
	if m.store != nil {
		m.snapshot = m.store.State()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(m.tick),
		m.spinner.Tick,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(msg.Width, m.contentHeight())
			m.logViewport = viewport.New(msg.Width, m.contentHeight())
		}
		m.ready = true
		m.detailViewport.Width, m.detailViewport.Height = msg.Width, m.contentHeight()
		m.logViewport.Width, m.logViewport.Height = msg.Width, m.contentHeight()
		m.updateDetailViewport()
		m.updateLogViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.applySnapshot(state.State(msg))
		return m, nil

	case opDoneMsg:
		if m.busy > 0 {
			m.busy--
		}
		m.refreshSnapshot()
		m.handleOpDone(msg)
		return m, nil

	case logLinesMsg:
		if msg.err != nil {
			m.setNotice("read log: "+msg.err.Error(), true)
			return m, nil
		}
		m.logLines = msg.lines
		m.updateLogViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.form != nil {
		return m.renderForm()
	}
	return m.renderMain()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		return m.handleFormKey(msg)
	}
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	m.setNotice("", false)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Account):
		return m.toggleAccount()

	case key.Matches(msg, m.keys.ViewOffers), key.Matches(msg, m.keys.Escape):
		m.backToOffers()
		return m, nil

	case key.Matches(msg, m.keys.ViewFavorites):
		return m.openFavorites()

	case key.Matches(msg, m.keys.ViewLogs):
		m.leaveDetail()
		m.view = ViewLogs
		return m, m.tailLogsCmd()
	}

	switch m.view {
	case ViewOffers:
		return m.handleOffersKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	case ViewFavorites:
		return m.handleFavoritesKey(msg)
	case ViewLogs:
		return m.handleLogsKey(msg)
	}
	return m, nil
}

func (m *Model) leaveDetail() {
	if m.view != ViewDetail {
		return
	}
	m.ops.LeaveOffer()
	m.refreshSnapshot()
}

func (m *Model) backToOffers() {
	m.leaveDetail()
	m.view = ViewOffers
}

func (m Model) toggleAccount() (tea.Model, tea.Cmd) {
	if m.snapshot.User.Authorized() {
		return m, m.runOp(opLogout, m.ops.Logout)
	}
	m.form = newLoginForm()
	return m, m.form.focusCmd()
}

// requireLogin opens the login form when nobody is signed in. It reports
// whether the caller may proceed.
func (m *Model) requireLogin(reason string) bool {
	if m.snapshot.User.Authorized() {
		return true
	}
	m.form = newLoginForm()
	m.form.err = reason
	return false
}

func (m Model) openFavorites() (tea.Model, tea.Cmd) {
	m.leaveDetail()
	m.view = ViewFavorites
	m.favSelected = 0
	if !m.snapshot.User.Authorized() {
		return m, nil
	}
	return m, m.runOp(opFetchFavorites, m.ops.FetchFavorites)
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.tick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.view == ViewLogs {
		cmds = append(cmds, m.tailLogsCmd())
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) refreshSnapshot() {
	if m.store != nil {
		m.applySnapshot(m.store.State())
	}
}

func (m *Model) applySnapshot(s state.State) {
	m.snapshot = s
	m.clampSelection()
	m.updateDetailViewport()
}

func (m *Model) clampSelection() {
	if n := len(m.currentOffers()); m.selected >= n {
		m.selected = max(n-1, 0)
	}
	if n := len(m.snapshot.Favorites.Favorites); m.favSelected >= n {
		m.favSelected = max(n-1, 0)
	}
}

func (m *Model) savePrefs() {
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save prefs failed", "error", err)
	}
}

func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

func (m Model) contentHeight() int {
	return max(m.height-headerLines, 1)
}

// Operation names carried by opDoneMsg.
const (
	opLogin          = "login"
	opLogout         = "logout"
	opFetchOffers    = "load offers"
	opFetchFavorites = "load favorites"
	opOpenOffer      = "open offer"
	opToggleFavorite = "toggle favorite"
	opReview         = "post review"
)

// runOp runs fn off the UI goroutine and reports back with opDoneMsg.
func (m *Model) runOp(name string, fn func(context.Context) error) tea.Cmd {
	m.busy++
	parent := m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, OperationTimeout)
		defer cancel()
		return opDoneMsg{name: name, err: fn(ctx)}
	}
}

func (m *Model) handleOpDone(msg opDoneMsg) {
	if m.form != nil {
		m.form.submitting = false
	}

	if msg.err != nil {
		m.logger.Warn("operation failed", "op", msg.name, "error", msg.err)
		if m.form != nil && errors.Is(msg.err, sixcities.ErrInvalidInput) {
			m.form.err = strings.TrimPrefix(msg.err.Error(), sixcities.ErrInvalidInput.Error()+": ")
			return
		}
		m.setNotice(msg.name+" failed: "+msg.err.Error(), true)
		return
	}

	switch msg.name {
	case opLogin:
		if m.form == nil {
			return
		}
		if !m.snapshot.User.Authorized() {
			m.form.err = "Login failed. Check your email and password."
			return
		}
		m.form = nil
		m.setNotice("Signed in as "+m.userEmail(), false)
	case opLogout:
		m.setNotice("Signed out", false)
		if m.view == ViewFavorites {
			m.view = ViewOffers
		}
	case opReview:
		m.form = nil
		m.setNotice("Thanks for your review", false)
	}
}

func (m Model) userEmail() string {
	if u := m.snapshot.User.User; u != nil {
		return u.Email
	}
	return ""
}

// renderMain renders the header, command bar and active view.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n\n")
	b.WriteString(m.renderContent())
	return b.String()
}

func (m Model) renderContent() string {
	switch m.view {
	case ViewOffers:
		return m.renderOffers()
	case ViewDetail:
		return m.detailViewport.View()
	case ViewFavorites:
		return m.renderFavorites()
	case ViewLogs:
		return m.logViewport.View()
	default:
		return ""
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.State

type opDoneMsg struct {
	name string
	err  error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.State())
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
