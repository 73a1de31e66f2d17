package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/state"
	"taskdeck/internal/ui/views"
)

// App is the root model. It owns the two stores and hands them to the task
// view; the composition layer reads both, the stores never read each other.
type App struct {
	view   *views.TaskView
	width  int
	height int
}

// NewApp creates the application model
func NewApp(tasks *state.TaskStore, comments *state.CommentStore) *App {
	return &App{
		view: views.NewTaskView(tasks, comments),
	}
}

func (a *App) Init() tea.Cmd {
	return a.view.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = size.Width
		a.height = size.Height
	}

	_, cmd := a.view.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	return a.view.View()
}
