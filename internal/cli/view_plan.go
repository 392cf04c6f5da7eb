package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/workcal/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type planViewerKeyMap struct {
	Quit key.Binding
	Top  key.Binding
	End  key.Binding
}

func defaultPlanViewerKeys() planViewerKeyMap {
	return planViewerKeyMap{
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Top:  key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		End:  key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "end")),
	}
}

// planViewer pages a rendered plan. The viewport is sized on the first
// WindowSizeMsg; until then View shows nothing.
type planViewer struct {
	content  string
	keys     planViewerKeyMap
	vp       viewport.Model
	ready    bool
	quitting bool
}

func newPlanViewer(content string) planViewer {
	return planViewer{content: content, keys: defaultPlanViewerKeys()}
}

func (m planViewer) Init() tea.Cmd { return nil }

func (m planViewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(msg.Height-2, 1)
		if !m.ready {
			m.vp = viewport.New(msg.Width, height)
			m.vp.MouseWheelEnabled = true
			m.vp.SetContent(m.content)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = height
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.vp.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.End):
			m.vp.GotoBottom()
			return m, nil
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m planViewer) View() string {
	if !m.ready || m.quitting {
		return ""
	}
	return m.vp.View() + "\n" + m.footer()
}

func (m planViewer) footer() string {
	pos := fmt.Sprintf("[%d%%]", int(m.vp.ScrollPercent()*100))
	if m.vp.AtTop() {
		pos = "[TOP]"
	} else if m.vp.AtBottom() {
		pos = "[END]"
	}
	hints := []string{pos, "↑/↓ scroll", "g/G top/end", "q quit"}
	return formatter.Dim(strings.Join(hints, "  "))
}

func runPlanViewer(content string) error {
	_, err := tea.NewProgram(newPlanViewer(content), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
