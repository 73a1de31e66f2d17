package state

import "taskdeck/internal/models"

// TaskFormMode is the state of the task form: closed, creating a new task,
// or editing an existing one.
type TaskFormMode int

const (
	FormClosed TaskFormMode = iota
	FormCreate
	FormEdit
)

// Session is the composition layer: which task is selected, which task the
// form applies to, and which comment is being edited. A zero id means none.
// It never talks to the network; callers apply its transitions and drive the
// stores accordingly.
type Session struct {
	SelectedTaskID   int64
	FormMode         TaskFormMode
	FormTaskID       int64 // task under edit when FormMode is FormEdit
	EditingCommentID int64
}

// SyncTasks applies the task-list-change rule: a selection pointing at a
// task no longer in the list is dropped, and when nothing is selected and
// the list is non-empty the first task in list order becomes selected.
// Reports whether the selection changed, in which case the caller refetches
// comments (or resets them when the selection cleared).
func (s *Session) SyncTasks(tasks []models.Task) bool {
	prev := s.SelectedTaskID

	if s.SelectedTaskID != 0 && !containsTask(tasks, s.SelectedTaskID) {
		s.SelectedTaskID = 0
	}
	if s.SelectedTaskID == 0 && len(tasks) > 0 {
		s.SelectedTaskID = tasks[0].ID
	}

	return s.SelectedTaskID != prev
}

// Select makes id the selected task. Selecting triggers a comment fetch even
// when id is already selected; re-selection is not deduplicated.
func (s *Session) Select(id int64) {
	s.SelectedTaskID = id
}

// OpenCreateForm switches the task form to create mode.
func (s *Session) OpenCreateForm() {
	s.FormMode = FormCreate
	s.FormTaskID = 0
}

// OpenEditForm switches the task form to edit mode for id, unconditionally
// discarding any unsaved create-mode input.
func (s *Session) OpenEditForm(id int64) {
	s.FormMode = FormEdit
	s.FormTaskID = id
}

// CloseForm closes the task form without applying anything.
func (s *Session) CloseForm() {
	s.FormMode = FormClosed
	s.FormTaskID = 0
}

// TaskCreated closes the form and selects the new task.
func (s *Session) TaskCreated(id int64) {
	s.CloseForm()
	s.SelectedTaskID = id
}

// TaskUpdated closes the form and clears edit mode.
func (s *Session) TaskUpdated() {
	s.CloseForm()
}

// TaskDeleted clears the selection when the deleted task was selected and
// reports whether it was. Deleting any other task leaves selection untouched.
func (s *Session) TaskDeleted(id int64) bool {
	if s.SelectedTaskID == id {
		s.SelectedTaskID = 0
		return true
	}
	return false
}

// StartCommentEdit marks one comment as being edited. Only one comment may
// be edited at a time; this is independent of the task form.
func (s *Session) StartCommentEdit(id int64) {
	s.EditingCommentID = id
}

// StopCommentEdit leaves comment edit mode.
func (s *Session) StopCommentEdit() {
	s.EditingCommentID = 0
}

func containsTask(tasks []models.Task, id int64) bool {
	for _, t := range tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}
