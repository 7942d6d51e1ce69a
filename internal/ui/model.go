package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"swiper/internal/animation"
	"swiper/internal/config"
	"swiper/internal/domain"
	"swiper/internal/eventbus"
	"swiper/internal/gesture"
	"swiper/internal/native"
	"swiper/internal/paging"
	"swiper/internal/ui/views"
	"swiper/internal/window"
)

// maxSettleFrames bounds how long an in-flight animation is fast-forwarded
// before the terminal is handed over or the viewport is rebuilt
const maxSettleFrames = 10000

// Model hosts a swipe controller in a Bubble Tea program
type Model struct {
	bus      eventbus.EventBus
	config   *config.Config
	provider domain.Provider
	native   paging.NativeView

	// UI-specific state
	width      int
	height     int
	keys       KeyMap
	showHelp   bool
	renderer   *views.Renderer
	helpRender *HelpRenderer

	// Paging, rebuilt on every resize
	anim       *animation.Animator
	controller *paging.SwipeController
	window     *window.Renderer
	tracker    *gesture.Tracker

	scanning      bool
	statusMessage string
	statusIsError bool
}

// NewModel creates a new UI model. nativeView may be nil, which disables
// opening the page set in ov. The model hosts the swipe backend only.
func NewModel(bus eventbus.EventBus, cfg *config.Config, provider domain.Provider, nativeView paging.NativeView) (*Model, error) {
	keys := DefaultKeyMap()
	m := &Model{
		bus:        bus,
		config:     cfg,
		provider:   provider,
		native:     nativeView,
		width:      80,
		height:     24,
		keys:       keys,
		renderer:   views.NewRenderer(),
		helpRender: NewHelpRenderer(keys),
		anim:       animation.New(cfg.Animation.FPS),
	}
	// provisional mount until the first WindowSizeMsg
	if err := m.mount(); err != nil {
		return nil, err
	}
	m.width, m.height = 0, 0
	return m, nil
}

// Controller exposes the paging controller of the current mount
func (m *Model) Controller() paging.Controller {
	return m.controller
}

// mount builds the paging stack for the current viewport, carrying the
// index over from the previous mount
func (m *Model) mount() error {
	index := m.config.InitialPage
	if m.controller != nil {
		m.tracker.Cancel()
		m.anim.Settle(maxSettleFrames)
		index = m.controller.Index()
	}

	layout := views.PageLayout(m.width, m.height, m.config.PagingAxis())
	opts := paging.OptionsFromConfig(m.config, float64(layout.Extent()))
	opts.InitialPage = index
	opts.OnPageSelected = m.onPageSelected

	c, err := paging.New(m.config, opts, paging.Deps{
		Provider: m.provider,
		Animator: m.anim,
		Bus:      m.bus,
	})
	if err != nil {
		return fmt.Errorf("failed to mount pager: %w", err)
	}
	swipe, ok := c.(*paging.SwipeController)
	if !ok {
		return fmt.Errorf("backend %q cannot be hosted in the terminal UI", m.config.Backend)
	}

	if m.controller != nil {
		m.window.Close()
		m.controller.Close()
	}
	m.controller = swipe
	m.window = window.NewRenderer(m.controller, m.provider)
	m.tracker = gesture.NewTracker(m.config.PagingAxis(), m.controller)
	return nil
}

func (m *Model) onPageSelected(e domain.PageSelectedEvent) {
	log.Printf("Page selected: %d", e.Position)
	m.statusMessage = ""
	m.statusIsError = false
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("swiper")
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if err := m.mount(); err != nil {
			log.Printf("Error remounting pager: %v", err)
			return m, m.setStatus(err.Error(), true)
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		if m.showHelp {
			return m, nil
		}
		if m.tracker.HandleMouse(msg) {
			return m, m.anim.Pump()
		}
		return m, nil

	case animation.FrameMsg:
		return m, m.anim.HandleFrame(msg)

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case nativeClosedMsg:
		if msg.err != nil {
			log.Printf("Native pager failed: %v", msg.err)
			return m, m.setStatus(fmt.Sprintf("ov failed: %v", msg.err), true)
		}
		m.controller.SetPageAnimated(msg.position, true)
		return m, m.anim.Pump()

	case tickMsg:
		if m.scanning {
			return m, tick()
		}
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		m.statusIsError = false
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return nil
	}
	if m.showHelp {
		if msg.String() == "esc" {
			m.showHelp = false
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.tracker.Cancel()
		m.controller.NextPage()
	case key.Matches(msg, m.keys.Previous):
		m.tracker.Cancel()
		m.controller.PreviousPage()
	case key.Matches(msg, m.keys.First):
		m.tracker.Cancel()
		m.controller.SetPageAnimated(0, true)
	case key.Matches(msg, m.keys.Open):
		return m.openNative()
	}
	return m.anim.Pump()
}

// openNative hands the terminal to ov, starting on the current page
func (m *Model) openNative() tea.Cmd {
	if m.native == nil {
		return m.setStatus("ov is not available", true)
	}
	m.tracker.Cancel()
	m.anim.Settle(maxSettleFrames)

	cmd := native.NewExecCommand(m.native, m.provider, m.controller.Index())
	return tea.Exec(cmd, func(err error) tea.Msg {
		return nativeClosedMsg{position: cmd.Position, err: err}
	})
}

// handleEvent processes domain events forwarded from the application bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ScanStartedEvent:
		m.scanning = true
		return tick()
	case eventbus.PageDiscoveredEvent:
		if e.Index >= m.controller.Index()-1 && e.Index <= m.controller.Index()+1 {
			m.window.Refresh()
		}
	case eventbus.ScanCompletedEvent:
		m.scanning = false
		m.window.Refresh()
		return m.setStatus(fmt.Sprintf("Found %d pages", e.PagesFound), false)
	case eventbus.ErrorEvent:
		log.Printf("Error event: %s: %v", e.Message, e.Err)
		return m.setStatus(e.Message, true)
	}
	return nil
}

func (m *Model) setStatus(msg string, isError bool) tea.Cmd {
	m.statusMessage = msg
	m.statusIsError = isError
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	snap := m.controller.Snapshot()
	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Axis:          m.config.PagingAxis(),
		Descriptors:   m.window.Descriptors(),
		Index:         snap.Index,
		HasNext:       m.hasPage(snap.Index + 1),
		Title:         m.title(snap.Index),
		Phase:         snap.Phase,
		Scanning:      m.scanning,
		StatusMessage: m.statusMessage,
		StatusIsError: m.statusIsError,
		ShowHelp:      m.showHelp,
	}
	if m.showHelp {
		state.HelpView = m.helpRender.renderHelpContent(state.Axis)
	}
	return m.renderer.Render(state)
}

func (m *Model) hasPage(index int) bool {
	if m.provider == nil {
		return false
	}
	_, ok := m.provider.PageAt(index)
	return ok
}

func (m *Model) title(index int) string {
	if m.provider == nil {
		return ""
	}
	page, ok := m.provider.PageAt(index)
	if !ok {
		return ""
	}
	if tp, ok := page.(domain.TextPage); ok {
		return tp.Title
	}
	return ""
}

// tickMsg drives the scanning spinner
type tickMsg time.Time

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
