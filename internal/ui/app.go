package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/certcheck/internal/prefs"
	"github.com/five82/certcheck/internal/state"
)

// Loader fetches the dataset and publishes it to the store.
type Loader interface {
	Load(ctx context.Context) error
}

// Options configures the UI.
type Options struct {
	Context     context.Context
	Loader      Loader
	Store       *state.Store
	Logger      *zap.Logger
	LookupDelay time.Duration // pause before a lookup resolves
	ThemeName   string
	PrefsPath   string
	Now         func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx         context.Context
	loader      Loader
	store       *state.Store
	logger      *zap.Logger
	prefsPath   string
	lookupDelay time.Duration
	now         func() time.Time

	// UI state
	theme    Theme
	keys     keyMap
	input    textinput.Model
	spinner  spinner.Model
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	snapshot  state.Snapshot
	form      form
	lookupSeq int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	delay := opts.LookupDelay
	if delay < 0 {
		delay = 0
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	theme := GetTheme(themeName)

	m := Model{
		ctx:         ctx,
		loader:      opts.Loader,
		store:       opts.Store,
		logger:      logger.Named("ui"),
		prefsPath:   prefsPath,
		lookupDelay: delay,
		now:         now,
		theme:       theme,
		keys:        DefaultKeyMap(),
		input:       newCertificateInput(theme),
		spinner:     newSpinner(theme),
	}
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}
	return m
}

func newCertificateInput(theme Theme) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "e.g. CERT-2024-001"
	ti.Prompt = "› "
	ti.CharLimit = 64
	ti.Width = 40
	applyInputTheme(&ti, theme)
	return ti
}

func applyInputTheme(ti *textinput.Model, theme Theme) {
	styles := theme.Styles()
	ti.PromptStyle = styles.AccentText
	ti.TextStyle = styles.Text
	ti.PlaceholderStyle = styles.FaintText
	ti.Cursor.Style = styles.AccentText
}

func newSpinner(theme Theme) spinner.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Styles().AccentText
	return sp
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.loader != nil && m.store != nil {
		cmds = append(cmds, loadDatasetCmd(m.ctx, m.loader, m.store))
	}
	return tea.Batch(cmds...)
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
		m.input.Width = clamp(m.contentWidth()-8, 16, 60)
		return m, nil

	case datasetMsg:
		return m.handleDataset(msg)

	case lookupDueMsg:
		return m.handleLookupDue(msg)

	case spinner.TickMsg:
		// Let the tick chain lapse while nothing is in flight.
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.setTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				m.logger.Warn("save theme preference", zap.Error(err))
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Retry):
		return m.retryLoad()

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Reset):
		if m.form.reset() {
			m.input.Reset()
		}
		return m, nil
	}

	if !m.inputEnabled() {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if !m.snapshot.Ready() || m.form.pending() {
		return m, nil
	}
	query := m.input.Value()
	if !m.form.submit(query) {
		m.logger.Debug("lookup rejected", zap.Error(m.form.err))
		return m, nil
	}

	m.lookupSeq++
	m.input.Blur()
	m.logger.Debug("lookup scheduled",
		zap.String("query", query),
		zap.Duration("delay", m.lookupDelay))
	return m, tea.Batch(m.spinner.Tick, lookupAfter(m.lookupDelay, m.lookupSeq))
}

func (m Model) handleLookupDue(msg lookupDueMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.lookupSeq || !m.form.pending() {
		return m, nil
	}
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}
	query := m.form.query
	m.form.resolve(m.snapshot, m.now())

	fields := []zap.Field{
		zap.String("query", query),
		zap.Stringer("outcome", m.form.phase),
	}
	if m.form.err != nil {
		fields = append(fields, zap.Error(m.form.err))
	}
	m.logger.Info("lookup", fields...)

	return m, m.input.Focus()
}

func (m Model) retryLoad() (tea.Model, tea.Cmd) {
	if m.snapshot.Status != state.StatusFailed || m.loader == nil || m.store == nil {
		return m, nil
	}
	m.snapshot.Status = state.StatusLoading
	m.logger.Info("retrying dataset load", zap.Int("attempt", m.snapshot.Attempts+1))
	return m, tea.Batch(m.spinner.Tick, loadDatasetCmd(m.ctx, m.loader, m.store))
}

func (m Model) handleDataset(msg datasetMsg) (tea.Model, tea.Cmd) {
	m.snapshot = msg.snapshot
	if !m.snapshot.Ready() {
		m.input.Blur()
		return m, nil
	}
	return m, m.input.Focus()
}

func (m *Model) setTheme(name string) {
	m.theme = GetTheme(name)
	applyInputTheme(&m.input, m.theme)
	m.spinner.Style = m.theme.Styles().AccentText
}

// busy reports whether the spinner has something to show.
func (m Model) busy() bool {
	switch m.snapshot.Status {
	case state.StatusPending, state.StatusLoading:
		return true
	}
	return m.form.pending()
}

// inputEnabled reports whether the certificate field accepts edits.
func (m Model) inputEnabled() bool {
	return m.snapshot.Ready() && !m.form.pending()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
