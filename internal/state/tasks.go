package state

import (
	"context"
	"sync"

	"taskdeck/internal/api"
	"taskdeck/internal/models"
)

// TaskStore caches the full task list. Mutators validate input before any
// network call and apply the server's response to the local list only on
// success; on failure the list is left untouched and Err carries one
// human-readable string.
type TaskStore struct {
	mu      sync.Mutex
	client  Client
	tasks   []models.Task
	loading bool
	err     string
}

func NewTaskStore(client Client) *TaskStore {
	return &TaskStore{client: client}
}

// Tasks returns the cached list.
func (s *TaskStore) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks
}

// Loading reports whether a fetch is in flight.
func (s *TaskStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last failure message, empty after a success.
func (s *TaskStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Fetch loads the full task list. On failure the previous list stays.
func (s *TaskStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	tasks, err := s.client.ListTasks(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err.Error()
		return err
	}
	s.tasks = tasks
	s.err = ""
	return nil
}

// Create validates the title, then creates the task and prepends the
// server's row to the list. A validation failure issues no request.
func (s *TaskStore) Create(ctx context.Context, title, description string) (*models.Task, error) {
	if err := models.ValidateNewTask(title); err != nil {
		return nil, err
	}

	task, err := s.client.CreateTask(ctx, api.CreateTaskInput{
		Title:       title,
		Description: description,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = err.Error()
		return nil, err
	}
	s.tasks = append([]models.Task{*task}, s.tasks...)
	s.err = ""
	return task, nil
}

// Update sends only the set fields and replaces the matching entry by id on
// success.
func (s *TaskStore) Update(ctx context.Context, id int64, in api.UpdateTaskInput) (*models.Task, error) {
	if err := models.ValidateTaskPatch(in.Title); err != nil {
		return nil, err
	}

	task, err := s.client.UpdateTask(ctx, id, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = err.Error()
		return nil, err
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i] = *task
			break
		}
	}
	s.err = ""
	return task, nil
}

// Delete removes the entry by id on success.
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	err := s.client.DeleteTask(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = err.Error()
		return err
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	s.err = ""
	return nil
}
