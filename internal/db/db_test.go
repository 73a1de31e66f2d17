package db

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestTaskCRUD(t *testing.T) {
	database := newTestDB(t)

	task, err := database.CreateTask("Write docs", "start with the README")
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if task.Title != "Write docs" || task.Description != "start with the README" {
		t.Fatalf("unexpected task: %+v", task)
	}
	if task.CreatedAt.IsZero() || task.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}

	got, err := database.GetTask(task.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Title != task.Title {
		t.Fatalf("GetTask returned %q, want %q", got.Title, task.Title)
	}

	newTitle := "Write better docs"
	updated, err := database.UpdateTask(task.ID, &newTitle, nil)
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Title != newTitle {
		t.Fatalf("title not updated: %q", updated.Title)
	}
	if updated.Description != task.Description {
		t.Fatalf("description should be untouched, got %q", updated.Description)
	}

	if err := database.DeleteTask(task.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if _, err := database.GetTask(task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestListTasksNewestFirst(t *testing.T) {
	database := newTestDB(t)

	first, _ := database.CreateTask("first", "")
	second, _ := database.CreateTask("second", "")

	tasks, err := database.ListTasks()
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != second.ID || tasks[1].ID != first.ID {
		t.Fatalf("expected newest first, got ids %d, %d", tasks[0].ID, tasks[1].ID)
	}
}

func TestTaskNotFound(t *testing.T) {
	database := newTestDB(t)

	if _, err := database.GetTask(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetTask: expected ErrNotFound, got %v", err)
	}
	title := "x"
	if _, err := database.UpdateTask(99, &title, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateTask: expected ErrNotFound, got %v", err)
	}
	if err := database.DeleteTask(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteTask: expected ErrNotFound, got %v", err)
	}
}

func TestCommentCRUD(t *testing.T) {
	database := newTestDB(t)

	task, _ := database.CreateTask("task", "")

	comment, err := database.CreateComment(task.ID, "first pass done", "Ana")
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if comment.TaskID != task.ID || comment.Author != "Ana" {
		t.Fatalf("unexpected comment: %+v", comment)
	}

	content := "second pass done"
	updated, err := database.UpdateComment(comment.ID, &content, nil)
	if err != nil {
		t.Fatalf("UpdateComment: %v", err)
	}
	if updated.Content != content {
		t.Fatalf("content not updated: %q", updated.Content)
	}
	if updated.Author != "Ana" {
		t.Fatalf("author should be untouched, got %q", updated.Author)
	}

	if err := database.DeleteComment(comment.ID); err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}
	if _, err := database.GetComment(comment.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestCreateCommentOnMissingTask(t *testing.T) {
	database := newTestDB(t)

	if _, err := database.CreateComment(42, "hello", "Ana"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCommentCountAndCascadeDelete(t *testing.T) {
	database := newTestDB(t)

	task, _ := database.CreateTask("task", "")
	database.CreateComment(task.ID, "one", "Ana")
	database.CreateComment(task.ID, "two", "Ben")

	got, err := database.GetTask(task.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.CommentCount != 2 {
		t.Fatalf("expected comment count 2, got %d", got.CommentCount)
	}

	if err := database.DeleteTask(task.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}

	comments, err := database.ListComments()
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if len(comments) != 0 {
		t.Fatalf("expected cascade delete to remove comments, got %d", len(comments))
	}
}

func TestListTaskComments(t *testing.T) {
	database := newTestDB(t)

	task, _ := database.CreateTask("task", "")
	other, _ := database.CreateTask("other", "")
	database.CreateComment(task.ID, "one", "Ana")
	database.CreateComment(other.ID, "elsewhere", "Ben")
	database.CreateComment(task.ID, "two", "Ana")

	comments, err := database.ListTaskComments(task.ID)
	if err != nil {
		t.Fatalf("ListTaskComments: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	// Newest first
	if comments[0].Content != "two" || comments[1].Content != "one" {
		t.Fatalf("unexpected order: %q, %q", comments[0].Content, comments[1].Content)
	}

	if _, err := database.ListTaskComments(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing task, got %v", err)
	}
}
