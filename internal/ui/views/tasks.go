package views

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskdeck/internal/api"
	"taskdeck/internal/models"
	"taskdeck/internal/state"
	"taskdeck/internal/ui/keys"
	"taskdeck/internal/ui/styles"
)

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// Pane represents which side of the split has focus
type Pane int

const (
	PaneTasks Pane = iota
	PaneComments
)

// TaskView is the main two-pane view: task list on the left, the selected
// task with its comments on the right. Selection, form modes and comment
// editing live in the state.Session; the stores own the cached data.
type TaskView struct {
	tasks    *state.TaskStore
	comments *state.CommentStore
	session  *state.Session
	styles   *styles.Styles
	keys     keys.KeyMap

	width  int
	height int

	pane          Pane
	taskCursor    int
	scrollY       int
	commentCursor int

	// Task form (create or edit, per session.FormMode)
	formTitle textinput.Model
	formDesc  textarea.Model
	formFocus int // 0=title, 1=desc, 2=save
	formErrs  map[string][]string
	editOrig  *models.Task // snapshot when the form opened in edit mode

	// Comment form (compose or edit, per session.EditingCommentID)
	composing      bool
	commentAuthor  textinput.Model
	commentContent textarea.Model
	commentFocus   int // 0=author, 1=content, 2=save (edit mode skips author)
	commentErrs    map[string][]string

	// Delete confirmation
	confirmingDelete bool
	deleteTargetID   int64
	deleteTargetName string
}

// NewTaskView creates the main view
func NewTaskView(tasks *state.TaskStore, comments *state.CommentStore) *TaskView {
	s := styles.NewStyles()

	formTitle := textinput.New()
	formTitle.Placeholder = "Task title"
	formTitle.CharLimit = models.TitleMaxLen + 1 // let over-length input through so validation can reject it

	formDesc := textarea.New()
	formDesc.Placeholder = "Description (optional)"
	formDesc.CharLimit = 2000
	formDesc.SetWidth(50)
	formDesc.SetHeight(4)
	formDesc.ShowLineNumbers = false

	commentAuthor := textinput.New()
	commentAuthor.Placeholder = "Your name"
	commentAuthor.CharLimit = models.AuthorMaxLen + 1

	commentContent := textarea.New()
	commentContent.Placeholder = "Write a comment..."
	commentContent.CharLimit = models.ContentMaxLen + 1
	commentContent.SetWidth(50)
	commentContent.SetHeight(4)
	commentContent.ShowLineNumbers = false

	return &TaskView{
		tasks:          tasks,
		comments:       comments,
		session:        &state.Session{},
		styles:         s,
		keys:           keys.DefaultKeyMap(),
		formTitle:      formTitle,
		formDesc:       formDesc,
		commentAuthor:  commentAuthor,
		commentContent: commentContent,
	}
}

// Session exposes the composition state, mainly for the root model.
func (v *TaskView) Session() *state.Session {
	return v.session
}

type tasksFetchedMsg struct{ err error }
type commentsFetchedMsg struct{ err error }

type taskSavedMsg struct {
	task    *models.Task
	created bool
	err     error
}

type taskDeletedMsg struct {
	id  int64
	err error
}

type commentSavedMsg struct{ err error }
type commentDeletedMsg struct{ err error }

// Init initializes the view
func (v *TaskView) Init() tea.Cmd {
	return v.fetchTasks
}

func (v *TaskView) fetchTasks() tea.Msg {
	err := v.tasks.Fetch(context.Background())
	return tasksFetchedMsg{err: err}
}

func (v *TaskView) fetchComments(taskID int64) tea.Cmd {
	return func() tea.Msg {
		err := v.comments.FetchForTask(context.Background(), taskID)
		return commentsFetchedMsg{err: err}
	}
}

// Update handles messages
func (v *TaskView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(v.width)
		inputWidth := clamp(contentWidth-10, 20, 50)
		v.formDesc.SetWidth(inputWidth)
		v.commentContent.SetWidth(inputWidth)
		return v, nil

	case tasksFetchedMsg:
		return v, v.afterTaskListChange()

	case commentsFetchedMsg:
		if v.commentCursor >= len(v.comments.Comments()) {
			v.commentCursor = max(0, len(v.comments.Comments())-1)
		}
		return v, nil

	case taskSavedMsg:
		return v.afterTaskSaved(msg)

	case taskDeletedMsg:
		if msg.err != nil {
			return v, nil
		}
		v.session.TaskDeleted(msg.id)
		return v, v.afterTaskListChange()

	case commentSavedMsg:
		if msg.err != nil {
			var verr *models.ValidationError
			if errors.As(msg.err, &verr) {
				v.commentErrs = verr.Fields
			}
			// Form stays open with its entered values intact
			return v, nil
		}
		v.closeCommentForm()
		return v, nil

	case commentDeletedMsg:
		if v.commentCursor >= len(v.comments.Comments()) {
			v.commentCursor = max(0, len(v.comments.Comments())-1)
		}
		return v, nil

	case tea.KeyMsg:
		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}
		if v.session.FormMode != state.FormClosed {
			return v.updateTaskForm(msg)
		}
		if v.composing || v.session.EditingCommentID != 0 {
			return v.updateCommentForm(msg)
		}
		return v.updateBrowse(msg)
	}

	return v, nil
}

// afterTaskListChange re-syncs selection with the current list: auto-select
// the first task when none is selected, drop a selection that no longer
// exists, and keep the cursor on the selected task.
func (v *TaskView) afterTaskListChange() tea.Cmd {
	tasks := v.tasks.Tasks()
	changed := v.session.SyncTasks(tasks)

	v.taskCursor = v.indexOfSelected()
	v.ensureVisible()

	if v.session.SelectedTaskID == 0 {
		v.comments.Reset()
		v.commentCursor = 0
		return nil
	}
	if changed {
		v.commentCursor = 0
		return v.fetchComments(v.session.SelectedTaskID)
	}
	return nil
}

func (v *TaskView) afterTaskSaved(msg taskSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		var verr *models.ValidationError
		if errors.As(msg.err, &verr) {
			v.formErrs = verr.Fields
		}
		// Form stays open with its entered values intact
		return v, nil
	}

	v.formErrs = nil
	v.editOrig = nil
	if msg.created {
		// A successful create selects the new task
		v.session.TaskCreated(msg.task.ID)
		v.taskCursor = v.indexOfSelected()
		v.ensureVisible()
		v.commentCursor = 0
		return v, v.fetchComments(msg.task.ID)
	}
	v.session.TaskUpdated()
	return v, nil
}

func (v *TaskView) indexOfSelected() int {
	for i, t := range v.tasks.Tasks() {
		if t.ID == v.session.SelectedTaskID {
			return i
		}
	}
	return 0
}

func (v *TaskView) selectedTask() *models.Task {
	for _, t := range v.tasks.Tasks() {
		if t.ID == v.session.SelectedTaskID {
			task := t
			return &task
		}
	}
	return nil
}

func (v *TaskView) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Tab):
		if v.pane == PaneTasks {
			v.pane = PaneComments
		} else {
			v.pane = PaneTasks
		}
		return v, nil

	case key.Matches(msg, v.keys.Up):
		return v, v.moveCursor(-1)

	case key.Matches(msg, v.keys.Down):
		return v, v.moveCursor(1)

	case key.Matches(msg, v.keys.Enter):
		// Re-selecting the selected task refetches its comments
		if v.pane == PaneTasks && v.session.SelectedTaskID != 0 {
			v.session.Select(v.session.SelectedTaskID)
			return v, v.fetchComments(v.session.SelectedTaskID)
		}
		return v, nil

	case key.Matches(msg, v.keys.Refresh):
		return v, v.fetchTasks

	case key.Matches(msg, v.keys.New):
		if v.pane == PaneComments {
			return v, v.startNewComment()
		}
		v.startCreateTask()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Comment):
		return v, v.startNewComment()

	case key.Matches(msg, v.keys.Edit):
		if v.pane == PaneComments {
			return v, v.startEditComment()
		}
		if task := v.selectedTask(); task != nil {
			v.startEditTask(task)
			return v, textinput.Blink
		}
		return v, nil

	case key.Matches(msg, v.keys.Delete):
		if v.pane == PaneComments {
			return v, v.deleteCommentUnderCursor()
		}
		if task := v.selectedTask(); task != nil {
			v.confirmingDelete = true
			v.deleteTargetID = task.ID
			v.deleteTargetName = task.Title
		}
		return v, nil
	}

	return v, nil
}

func (v *TaskView) moveCursor(dir int) tea.Cmd {
	if v.pane == PaneComments {
		n := len(v.comments.Comments())
		if n > 0 {
			v.commentCursor = clamp(v.commentCursor+dir, 0, n-1)
		}
		return nil
	}

	tasks := v.tasks.Tasks()
	if len(tasks) == 0 {
		return nil
	}
	next := clamp(v.taskCursor+dir, 0, len(tasks)-1)
	if next == v.taskCursor {
		return nil
	}
	v.taskCursor = next
	v.ensureVisible()

	// Moving the cursor changes the selection and fetches its comments
	v.session.Select(tasks[next].ID)
	v.commentCursor = 0
	return v.fetchComments(tasks[next].ID)
}

func (v *TaskView) ensureVisible() {
	visibleItems := v.visibleTaskRows()
	if v.taskCursor < v.scrollY {
		v.scrollY = v.taskCursor
	} else if v.taskCursor >= v.scrollY+visibleItems {
		v.scrollY = v.taskCursor - visibleItems + 1
	}
}

func (v *TaskView) visibleTaskRows() int {
	// Each task item is 1 title line + 1 meta line
	availableHeight := v.height - 8
	if availableHeight < 2 {
		availableHeight = 2
	}
	rows := availableHeight / 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

// ─── Task form ───

func (v *TaskView) startCreateTask() {
	// Opening the form in either mode discards whatever was in it before
	v.session.OpenCreateForm()
	v.formErrs = nil
	v.editOrig = nil
	v.formFocus = 0
	v.formTitle.Reset()
	v.formDesc.Reset()
	v.updateFormFocus()
}

func (v *TaskView) startEditTask(task *models.Task) {
	v.session.OpenEditForm(task.ID)
	v.formErrs = nil
	orig := *task
	v.editOrig = &orig
	v.formFocus = 0
	v.formTitle.SetValue(task.Title)
	v.formDesc.SetValue(task.Description)
	v.updateFormFocus()
}

func (v *TaskView) updateFormFocus() {
	v.formTitle.Blur()
	v.formDesc.Blur()
	switch v.formFocus {
	case 0:
		v.formTitle.Focus()
	case 1:
		v.formDesc.Focus()
	}
}

func (v *TaskView) updateTaskForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.session.CloseForm()
		v.formErrs = nil
		v.editOrig = nil
		return v, nil

	case msg.String() == "ctrl+s":
		return v, v.saveTask()

	case key.Matches(msg, v.keys.Tab):
		v.formFocus = (v.formFocus + 1) % 3
		v.updateFormFocus()
		return v, nil

	case msg.String() == "shift+tab":
		v.formFocus = (v.formFocus + 2) % 3
		v.updateFormFocus()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if v.formFocus == 0 {
			v.formFocus = 1
			v.updateFormFocus()
			return v, nil
		}
		if v.formFocus == 2 {
			return v, v.saveTask()
		}
		// Enter in the description textarea inserts a newline
	}

	var cmd tea.Cmd
	switch v.formFocus {
	case 0:
		v.formTitle, cmd = v.formTitle.Update(msg)
	case 1:
		v.formDesc, cmd = v.formDesc.Update(msg)
	}
	return v, cmd
}

func (v *TaskView) saveTask() tea.Cmd {
	title := strings.TrimSpace(v.formTitle.Value())
	desc := strings.TrimSpace(v.formDesc.Value())
	mode := v.session.FormMode
	id := v.session.FormTaskID
	orig := v.editOrig

	return func() tea.Msg {
		if mode == state.FormEdit {
			// Send only the fields that changed
			in := api.UpdateTaskInput{}
			if orig == nil || title != orig.Title {
				in.Title = &title
			}
			if orig == nil || desc != orig.Description {
				in.Description = &desc
			}
			if in.Title == nil && in.Description == nil {
				return taskSavedMsg{task: orig}
			}
			task, err := v.tasks.Update(context.Background(), id, in)
			return taskSavedMsg{task: task, err: err}
		}

		task, err := v.tasks.Create(context.Background(), title, desc)
		return taskSavedMsg{task: task, created: true, err: err}
	}
}

// ─── Comment form ───

func (v *TaskView) startNewComment() tea.Cmd {
	if v.session.SelectedTaskID == 0 {
		return nil
	}
	// New comment and comment edit are mutually exclusive
	v.session.StopCommentEdit()
	v.composing = true
	v.commentErrs = nil
	v.commentFocus = 0
	v.commentAuthor.Reset()
	v.commentContent.Reset()
	v.updateCommentFocus()
	return textinput.Blink
}

func (v *TaskView) startEditComment() tea.Cmd {
	comments := v.comments.Comments()
	if len(comments) == 0 || v.commentCursor >= len(comments) {
		return nil
	}
	c := comments[v.commentCursor]
	v.composing = false
	v.session.StartCommentEdit(c.ID)
	v.commentErrs = nil
	v.commentFocus = 1 // author is immutable on edit, start in content
	v.commentContent.SetValue(c.Content)
	v.updateCommentFocus()
	return textarea.Blink
}

func (v *TaskView) closeCommentForm() {
	v.composing = false
	v.session.StopCommentEdit()
	v.commentErrs = nil
	v.commentAuthor.Reset()
	v.commentContent.Reset()
	v.commentAuthor.Blur()
	v.commentContent.Blur()
}

func (v *TaskView) updateCommentFocus() {
	v.commentAuthor.Blur()
	v.commentContent.Blur()
	switch v.commentFocus {
	case 0:
		v.commentAuthor.Focus()
	case 1:
		v.commentContent.Focus()
	}
}

func (v *TaskView) updateCommentForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	editing := v.session.EditingCommentID != 0

	switch {
	case key.Matches(msg, v.keys.Back):
		v.closeCommentForm()
		return v, nil

	case msg.String() == "ctrl+s":
		return v, v.saveComment()

	case key.Matches(msg, v.keys.Tab):
		v.commentFocus = (v.commentFocus + 1) % 3
		if editing && v.commentFocus == 0 {
			v.commentFocus = 1
		}
		v.updateCommentFocus()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if v.commentFocus == 0 {
			v.commentFocus = 1
			v.updateCommentFocus()
			return v, nil
		}
		if v.commentFocus == 2 {
			return v, v.saveComment()
		}
	}

	var cmd tea.Cmd
	switch v.commentFocus {
	case 0:
		v.commentAuthor, cmd = v.commentAuthor.Update(msg)
	case 1:
		v.commentContent, cmd = v.commentContent.Update(msg)
	}
	return v, cmd
}

func (v *TaskView) saveComment() tea.Cmd {
	content := strings.TrimSpace(v.commentContent.Value())
	author := strings.TrimSpace(v.commentAuthor.Value())
	editID := v.session.EditingCommentID
	taskID := v.session.SelectedTaskID

	return func() tea.Msg {
		if editID != 0 {
			// Author is left alone on update
			in := api.UpdateCommentInput{Content: &content}
			_, err := v.comments.Update(context.Background(), editID, in)
			return commentSavedMsg{err: err}
		}
		_, err := v.comments.Create(context.Background(), taskID, content, author)
		return commentSavedMsg{err: err}
	}
}

func (v *TaskView) deleteCommentUnderCursor() tea.Cmd {
	comments := v.comments.Comments()
	if len(comments) == 0 || v.commentCursor >= len(comments) {
		return nil
	}
	id := comments[v.commentCursor].ID
	return func() tea.Msg {
		err := v.comments.Delete(context.Background(), id)
		return commentDeletedMsg{err: err}
	}
}

// ─── Delete confirmation ───

func (v *TaskView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := v.deleteTargetID
		v.confirmingDelete = false
		return v, func() tea.Msg {
			err := v.tasks.Delete(context.Background(), id)
			return taskDeletedMsg{id: id, err: err}
		}
	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

// ─── Rendering ───

// View renders the view
func (v *TaskView) View() string {
	if v.confirmingDelete {
		return v.renderDeleteConfirm()
	}
	if v.session.FormMode != state.FormClosed {
		return v.renderTaskForm()
	}
	if v.composing || v.session.EditingCommentID != 0 {
		return v.renderCommentForm()
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Taskdeck"))
	b.WriteString("\n\n")

	contentWidth := styles.ContentWidth(v.width)
	listWidth := clamp(contentWidth*2/5, 24, 44)
	detailWidth := max(contentWidth-listWidth-6, 30)

	left := v.renderTaskList(listWidth)
	right := v.renderDetail(detailWidth)

	leftPane := v.paneStyle(PaneTasks).Width(listWidth).Render(left)
	rightPane := v.paneStyle(PaneComments).Width(detailWidth).Render(right)

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, leftPane, " ", rightPane))
	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *TaskView) paneStyle(pane Pane) lipgloss.Style {
	if v.pane == pane {
		return v.styles.PaneFocused
	}
	return v.styles.Pane
}

func (v *TaskView) renderTaskList(width int) string {
	s := v.styles
	tasks := v.tasks.Tasks()

	header := s.TitleMuted.Render(fmt.Sprintf("Tasks (%d)", len(tasks)))
	if v.tasks.Loading() {
		header = s.TitleMuted.Render("Tasks (loading...)")
	}

	var items []string
	items = append(items, header, "")

	if len(tasks) == 0 {
		items = append(items, s.TitleMuted.Render("No tasks. Press 'n' to create one."))
	} else {
		endIdx := min(v.scrollY+v.visibleTaskRows(), len(tasks))
		for i := v.scrollY; i < endIdx; i++ {
			items = append(items, v.renderTaskItem(tasks[i], width))
		}
	}

	if msg := v.tasks.Err(); msg != "" {
		items = append(items, "", s.ErrorText.Render(truncate(msg, width-2)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (v *TaskView) renderTaskItem(task models.Task, width int) string {
	s := v.styles
	selected := task.ID == v.session.SelectedTaskID

	titleStyle := s.ListItem.Width(width - 2)
	metaStyle := s.ListItem.Foreground(styles.Current.ForegroundDim).Width(width - 2)
	if selected {
		titleStyle = s.ListSelected.Width(width - 2)
		metaStyle = s.ListSelected.Foreground(styles.Current.ForegroundDim).Width(width - 2)
	}

	meta := fmt.Sprintf("%d comments · %s", task.CommentCount, task.UpdatedAt.Format("Jan 2"))
	if task.CommentCount == 1 {
		meta = "1 comment · " + task.UpdatedAt.Format("Jan 2")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(truncate(task.Title, width-4)),
		metaStyle.Render(meta),
	)
}

func (v *TaskView) renderDetail(width int) string {
	s := v.styles
	task := v.selectedTask()
	if task == nil {
		return s.TitleMuted.Render("No task selected")
	}

	textWidth := clamp(width-4, 20, 90)

	descText := task.Description
	if descText == "" {
		descText = s.TitleMuted.Render("No description")
	}

	parts := []string{
		s.Title.Render(truncate(task.Title, textWidth)),
		s.TitleMuted.Render("Updated " + task.UpdatedAt.Format("Jan 2, 2006 3:04 PM")),
		"",
		lipgloss.NewStyle().Width(textWidth).Render(descText),
		"",
		s.TitleMuted.Render("Comments"),
	}

	comments := v.comments.Comments()
	if v.comments.Loading() {
		parts = append(parts, s.TitleMuted.Render("Loading comments..."))
	} else if len(comments) == 0 {
		parts = append(parts, s.TitleMuted.Render("No comments yet. Press 'c' to add one."))
	} else {
		for i, c := range comments {
			parts = append(parts, v.renderComment(c, i, textWidth))
		}
	}

	if msg := v.comments.Err(); msg != "" {
		parts = append(parts, "", s.ErrorText.Render(truncate(msg, textWidth)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (v *TaskView) renderComment(c models.Comment, index, width int) string {
	s := v.styles

	headStyle := s.TitleMuted
	bodyStyle := lipgloss.NewStyle().Width(width)
	if v.pane == PaneComments && index == v.commentCursor {
		headStyle = s.ListSelected
		bodyStyle = s.ListSelected.Width(width)
	}

	head := fmt.Sprintf("%s · %s", c.Author, c.CreatedAt.Format("Jan 2, 2006 3:04 PM"))
	return lipgloss.JoinVertical(lipgloss.Left,
		headStyle.Render(head),
		bodyStyle.Render(c.Content),
		"",
	)
}

func (v *TaskView) renderTaskForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	formTitle := "New Task"
	if v.session.FormMode == state.FormEdit {
		formTitle = "Edit Task"
	}

	titleStyle := s.Input
	descStyle := s.Input
	btnStyle := s.Button
	switch v.formFocus {
	case 0:
		titleStyle = s.InputFocused
	case 1:
		descStyle = s.InputFocused
	case 2:
		btnStyle = s.ButtonFocused
	}

	inputWidth := clamp(contentWidth-6, 20, 50)

	parts := []string{
		s.Title.Render(formTitle),
		"",
		"Title:",
		titleStyle.Width(inputWidth).Render(v.formTitle.View()),
	}
	parts = append(parts, v.fieldErrors(v.formErrs, "title")...)
	parts = append(parts,
		"",
		"Description:",
		descStyle.Render(v.formDesc.View()),
	)
	if msg := v.tasks.Err(); msg != "" && v.formErrs == nil {
		parts = append(parts, "", s.ErrorText.Render(truncate(msg, inputWidth)))
	}
	parts = append(parts,
		"",
		btnStyle.Render(" Save "),
		"",
		s.TitleMuted.Render("Tab: next • Ctrl+S: save • Esc: cancel"),
	)

	form := lipgloss.JoinVertical(lipgloss.Left, parts...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskView) renderCommentForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	editing := v.session.EditingCommentID != 0

	formTitle := "New Comment"
	if editing {
		formTitle = "Edit Comment"
	}

	authorStyle := s.Input
	contentStyle := s.Input
	btnStyle := s.Button
	switch v.commentFocus {
	case 0:
		authorStyle = s.InputFocused
	case 1:
		contentStyle = s.InputFocused
	case 2:
		btnStyle = s.ButtonFocused
	}

	inputWidth := clamp(contentWidth-6, 20, 50)

	parts := []string{
		s.Title.Render(formTitle),
		"",
	}
	if !editing {
		parts = append(parts,
			"Author:",
			authorStyle.Width(inputWidth).Render(v.commentAuthor.View()),
		)
		parts = append(parts, v.fieldErrors(v.commentErrs, "author")...)
		parts = append(parts, "")
	}
	parts = append(parts,
		"Comment:",
		contentStyle.Render(v.commentContent.View()),
	)
	parts = append(parts, v.fieldErrors(v.commentErrs, "content")...)
	if msg := v.comments.Err(); msg != "" && v.commentErrs == nil {
		parts = append(parts, "", s.ErrorText.Render(truncate(msg, inputWidth)))
	}
	parts = append(parts,
		"",
		btnStyle.Render(" Save "),
		"",
		s.TitleMuted.Render("Tab: next • Ctrl+S: save • Esc: cancel"),
	)

	form := lipgloss.JoinVertical(lipgloss.Left, parts...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskView) fieldErrors(errs map[string][]string, field string) []string {
	var lines []string
	for _, msg := range errs[field] {
		lines = append(lines, v.styles.FieldErr.Render(msg))
	}
	return lines
}

func (v *TaskView) renderDeleteConfirm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render("Delete Task?"),
		"",
		s.TitleMuted.Render(fmt.Sprintf("\"%s\" and all its comments will be removed.", truncate(v.deleteTargetName, 50))),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskView) renderHelp() string {
	s := v.styles
	if v.pane == PaneComments {
		return s.Help.Render(
			fmt.Sprintf("%s move • %s new comment • %s edit • %s del • %s tasks • %s quit",
				s.HelpKey.Render("↑↓"),
				s.HelpKey.Render("c"),
				s.HelpKey.Render("e"),
				s.HelpKey.Render("d"),
				s.HelpKey.Render("tab"),
				s.HelpKey.Render("q"),
			),
		)
	}
	return s.Help.Render(
		fmt.Sprintf("%s select • %s refetch • %s new • %s edit • %s del • %s comment • %s refresh • %s comments • %s quit",
			s.HelpKey.Render("↑↓"),
			s.HelpKey.Render("↵"),
			s.HelpKey.Render("n"),
			s.HelpKey.Render("e"),
			s.HelpKey.Render("d"),
			s.HelpKey.Render("c"),
			s.HelpKey.Render("r"),
			s.HelpKey.Render("tab"),
			s.HelpKey.Render("q"),
		),
	)
}

func truncate(text string, width int) string {
	if width < 1 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
