package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListTasksUnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tasks" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":1,"title":"one"},{"id":2,"title":"two"}],"count":2}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	tasks, err := client.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 2 || tasks[0].ID != 1 || tasks[1].Title != "two" {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
}

func TestCreateTaskSendsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/tasks" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":7,"title":"Write docs"},"message":"Task created successfully"}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	task, err := client.CreateTask(context.Background(), CreateTaskInput{Title: "Write docs"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.ID != 7 {
		t.Fatalf("unexpected task: %+v", task)
	}
}

func TestServerErrorKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Validation error","messages":{"title":["title is required"]}}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.CreateTask(context.Background(), CreateTaskInput{})

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Kind != KindServer {
		t.Fatalf("expected KindServer, got %v", apiErr.Kind)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", apiErr.Status)
	}
	if apiErr.Message != "Validation error" {
		t.Fatalf("unexpected message %q", apiErr.Message)
	}
	if len(apiErr.Fields["title"]) == 0 {
		t.Fatalf("expected field messages, got %v", apiErr.Fields)
	}
}

func TestTransportErrorKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	client := New(srv.URL)
	_, err := client.ListTasks(context.Background())

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Kind != KindTransport {
		t.Fatalf("expected KindTransport, got %v", apiErr.Kind)
	}
}

func TestMalformedResponseKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`this is not json`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.ListTasks(context.Background())

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Kind != KindUnexpected {
		t.Fatalf("expected KindUnexpected, got %v", apiErr.Kind)
	}
}

func TestDeleteTaskUsesMessageOnlyEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/tasks/7" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"message":"Task deleted successfully"}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	if err := client.DeleteTask(context.Background(), 7); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
}

func TestListTaskCommentsPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/comments/task/42" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"data":[{"id":1,"task_id":42,"content":"hi","author":"Ana"}],"count":1}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	comments, err := client.ListTaskComments(context.Background(), 42)
	if err != nil {
		t.Fatalf("ListTaskComments: %v", err)
	}
	if len(comments) != 1 || comments[0].TaskID != 42 {
		t.Fatalf("unexpected comments: %+v", comments)
	}
}
