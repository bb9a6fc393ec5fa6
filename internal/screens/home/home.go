package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"mathventure/internal/puzzlegen"
	"mathventure/internal/router"
	"mathventure/internal/screen"
	"mathventure/internal/screens/history"
	"mathventure/internal/screens/setup"
	"mathventure/internal/store"
	"mathventure/internal/ui/components"
	"mathventure/internal/ui/theme"
)

const banner = `
 __  __       _   _                      _
|  \/  | __ _| |_| |____   _____ _ __ | |_ _   _ _ __ ___
| |\/| |/ _' | __| '_ \ \ / / _ \ '_ \| __| | | | '__/ _ \
| |  | | (_| | |_| | | \ V /  __/ | | | |_| |_| | | |  __/
|_|  |_|\__,_|\__|_| |_|\_/ \___|_| |_|\__|\__,_|_|  \___|
`

// HomeScreen is the entry screen with the main navigation menu.
type HomeScreen struct {
	menu components.Menu
	gen  *puzzlegen.Generator
	repo store.EventRepo
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. repo may be nil when the database could not
// be opened; history is disabled in that case and sessions go unrecorded.
func New(gen *puzzlegen.Generator, repo store.EventRepo) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START PRACTICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(gen, repo)}
			}
		}},
		{Label: "HISTORY", Disabled: repo == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(repo)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
		gen:  gen,
		repo: repo,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render(banner))
	sections = append(sections, theme.Subtitle.Width(width).Render(
		"Adaptive arithmetic practice. The puzzles keep pace with you."))

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
