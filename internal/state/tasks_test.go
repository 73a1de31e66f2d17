package state

import (
	"context"
	"errors"
	"strings"
	"testing"

	"taskdeck/internal/api"
	"taskdeck/internal/models"
)

func TestTaskStoreFetchReplacesList(t *testing.T) {
	fc := newFakeClient()
	fc.listTasksFn = func(ctx context.Context) ([]models.Task, error) {
		return []models.Task{{ID: 2, Title: "two"}, {ID: 1, Title: "one"}}, nil
	}
	store := NewTaskStore(fc)

	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	tasks := store.Tasks()
	if len(tasks) != 2 || tasks[0].ID != 2 {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
}

func TestTaskStoreFetchIdempotent(t *testing.T) {
	fc := newFakeClient()
	fc.listTasksFn = func(ctx context.Context) ([]models.Task, error) {
		return []models.Task{{ID: 1, Title: "one"}}, nil
	}
	store := NewTaskStore(fc)

	store.Fetch(context.Background())
	first := store.Tasks()
	store.Fetch(context.Background())
	second := store.Tasks()

	if len(first) != len(second) || first[0] != second[0] {
		t.Fatalf("fetch not idempotent: %+v vs %+v", first, second)
	}
}

func TestTaskStoreFetchFailureKeepsPreviousList(t *testing.T) {
	fc := newFakeClient()
	fc.listTasksFn = func(ctx context.Context) ([]models.Task, error) {
		return []models.Task{{ID: 1, Title: "one"}}, nil
	}
	store := NewTaskStore(fc)
	store.Fetch(context.Background())

	fc.listTasksFn = func(ctx context.Context) ([]models.Task, error) {
		return nil, &api.Error{Kind: api.KindTransport, Message: "connection refused"}
	}
	if err := store.Fetch(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if len(store.Tasks()) != 1 {
		t.Fatalf("previous list should survive a failed fetch, got %+v", store.Tasks())
	}
	if store.Err() == "" {
		t.Fatal("expected error message to be set")
	}

	// A later success clears the error and replaces the list
	fc.listTasksFn = func(ctx context.Context) ([]models.Task, error) {
		return []models.Task{{ID: 3, Title: "three"}}, nil
	}
	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if store.Err() != "" {
		t.Fatalf("error should be cleared, got %q", store.Err())
	}
	if tasks := store.Tasks(); len(tasks) != 1 || tasks[0].ID != 3 {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
}

func TestTaskStoreCreateRejectsOverLengthTitleBeforeRequest(t *testing.T) {
	fc := newFakeClient()
	store := NewTaskStore(fc)

	_, err := store.Create(context.Background(), strings.Repeat("a", models.TitleMaxLen+1), "")

	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if fc.calls["CreateTask"] != 0 {
		t.Fatalf("no request should be issued, got %d calls", fc.calls["CreateTask"])
	}
	if len(store.Tasks()) != 0 {
		t.Fatal("list should be unchanged")
	}
}

func TestTaskStoreCreatePrepends(t *testing.T) {
	fc := newFakeClient()
	fc.createTaskFn = func(ctx context.Context, in api.CreateTaskInput) (*models.Task, error) {
		return &models.Task{ID: 9, Title: in.Title}, nil
	}
	store := NewTaskStore(fc)
	// Seed an existing list entry
	fc.listTasksFn = func(ctx context.Context) ([]models.Task, error) {
		return []models.Task{{ID: 1, Title: "existing"}}, nil
	}
	store.Fetch(context.Background())

	task, err := store.Create(context.Background(), "Write docs", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.ID != 9 {
		t.Fatalf("expected server-assigned id, got %d", task.ID)
	}
	tasks := store.Tasks()
	if len(tasks) != 2 || tasks[0].ID != 9 || tasks[1].ID != 1 {
		t.Fatalf("expected new task prepended, got %+v", tasks)
	}
}

func TestTaskStoreCreateFailureLeavesListUnchanged(t *testing.T) {
	fc := newFakeClient()
	fc.createTaskFn = func(ctx context.Context, in api.CreateTaskInput) (*models.Task, error) {
		return nil, &api.Error{Kind: api.KindServer, Status: 500, Message: "Database error"}
	}
	store := NewTaskStore(fc)

	if _, err := store.Create(context.Background(), "Write docs", ""); err == nil {
		t.Fatal("expected error")
	}
	if len(store.Tasks()) != 0 {
		t.Fatal("list should be unchanged on failure")
	}
	if store.Err() == "" {
		t.Fatal("expected error message to be set")
	}
}

func TestTaskStoreUpdateReplacesEntryByID(t *testing.T) {
	fc := newFakeClient()
	fc.listTasksFn = func(ctx context.Context) ([]models.Task, error) {
		return []models.Task{{ID: 1, Title: "one"}, {ID: 2, Title: "two"}}, nil
	}
	fc.updateTaskFn = func(ctx context.Context, id int64, in api.UpdateTaskInput) (*models.Task, error) {
		return &models.Task{ID: id, Title: *in.Title}, nil
	}
	store := NewTaskStore(fc)
	store.Fetch(context.Background())

	title := "two renamed"
	if _, err := store.Update(context.Background(), 2, api.UpdateTaskInput{Title: &title}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	tasks := store.Tasks()
	if tasks[1].Title != "two renamed" {
		t.Fatalf("entry not replaced: %+v", tasks)
	}
	if tasks[0].Title != "one" {
		t.Fatalf("other entries should be untouched: %+v", tasks)
	}
}

func TestTaskStoreDeleteRemovesEntryByID(t *testing.T) {
	fc := newFakeClient()
	fc.listTasksFn = func(ctx context.Context) ([]models.Task, error) {
		return []models.Task{{ID: 1}, {ID: 2}}, nil
	}
	fc.deleteTaskFn = func(ctx context.Context, id int64) error { return nil }
	store := NewTaskStore(fc)
	store.Fetch(context.Background())

	if err := store.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	tasks := store.Tasks()
	if len(tasks) != 1 || tasks[0].ID != 2 {
		t.Fatalf("unexpected tasks after delete: %+v", tasks)
	}
}

func TestTaskStoreDeleteFailureLeavesListUnchanged(t *testing.T) {
	fc := newFakeClient()
	fc.listTasksFn = func(ctx context.Context) ([]models.Task, error) {
		return []models.Task{{ID: 1}}, nil
	}
	fc.deleteTaskFn = func(ctx context.Context, id int64) error {
		return &api.Error{Kind: api.KindTransport, Message: "timeout"}
	}
	store := NewTaskStore(fc)
	store.Fetch(context.Background())

	if err := store.Delete(context.Background(), 1); err == nil {
		t.Fatal("expected error")
	}
	if len(store.Tasks()) != 1 {
		t.Fatal("list should be unchanged on failure")
	}
}
