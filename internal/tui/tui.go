// Package tui renders a live terminal preview of the panel: the controller
// runs on a ticker and each frame is shown as the packed debug rendering.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	glam "github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/openmarquee/marquee/internal/core/engine"
	"github.com/openmarquee/marquee/internal/core/raster"
)

// Options configures the preview.
type Options struct {
	Controller *engine.Controller
	// Interval is the tick period; defaults to 100ms.
	Interval time.Duration
	// OnTick runs before each frame so the host can refresh variables.
	OnTick func(now time.Time)
}

const helpMarkdown = `# Panel preview

| Key | Action |
| --- | ------ |
| space | pause / resume the tick loop |
| ? | toggle this help |
| q | quit |

Each frame is the packed panel buffer: every ` + "`*`" + ` is a lit pixel.
`

type tickMsg time.Time

type model struct {
	opts     Options
	spin     spinner.Model
	frame    string
	frames   int
	paused   bool
	showHelp bool
	help     string

	panelStyle  lipgloss.Style
	statusStyle lipgloss.Style
}

func newModel(opts Options) *model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	// Stay monochrome on dumb terminals, like the panels themselves.
	border := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	status := lipgloss.NewStyle()
	if termenv.DefaultOutput().ColorProfile() != termenv.Ascii {
		border = border.BorderForeground(lipgloss.Color("240"))
		status = status.Foreground(lipgloss.Color("245"))
	}

	help := helpMarkdown
	if r, err := glam.NewTermRenderer(glam.WithAutoStyle(), glam.WithWordWrap(60)); err == nil {
		if rendered, err := r.Render(helpMarkdown); err == nil {
			help = rendered
		}
	}

	return &model{
		opts:        opts,
		spin:        sp,
		help:        help,
		panelStyle:  border,
		statusStyle: status,
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.tick())
}

func (m *model) tick() tea.Cmd {
	return tea.Tick(m.opts.Interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		}

	case tickMsg:
		if !m.paused {
			m.renderFrame()
		}
		return m, m.tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) renderFrame() {
	ctrl := m.opts.Controller
	now := ctrl.Clock().Now()
	if m.opts.OnTick != nil {
		m.opts.OnTick(now)
	}

	img := ctrl.Next()
	w, h := ctrl.PanelSize()
	if img == nil {
		img = raster.New(w, h, 0)
	}
	packed := raster.Pack(img, 0, 0, w, h)
	m.frame = raster.RenderFrame(packed, w, (h+7)/8)
	m.frames++
	ctrl.PrevVars().CopyFrom(ctrl.Vars())
}

func (m *model) View() string {
	var sb strings.Builder

	if m.frame == "" {
		sb.WriteString(m.spin.View())
		sb.WriteString(" waiting for the first frame\n")
	} else {
		sb.WriteString(m.panelStyle.Render(strings.TrimRight(m.frame, "\n")))
		sb.WriteByte('\n')
	}

	state := m.spin.View() + " running"
	if m.paused {
		state = "paused"
	}
	sb.WriteString(m.statusStyle.Render(fmt.Sprintf("%s · frame %d · space pause · ? help · q quit", state, m.frames)))
	sb.WriteByte('\n')

	if m.showHelp {
		sb.WriteString(m.help)
	}
	return sb.String()
}

// Run starts the preview and blocks until the user quits or ctx ends.
func Run(ctx context.Context, opts Options) error {
	if opts.Controller == nil {
		return fmt.Errorf("tui: no controller")
	}
	if opts.Interval <= 0 {
		opts.Interval = 100 * time.Millisecond
	}
	p := tea.NewProgram(newModel(opts), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
