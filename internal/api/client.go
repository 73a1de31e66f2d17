// Package api is the HTTP client for the taskdeck REST API. It holds no
// state beyond the base URL; every call unwraps the uniform response
// envelope and normalizes failures into *Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"taskdeck/internal/models"
)

// Client talks to a taskdeck API server.
type Client struct {
	base string
	http *http.Client
}

// New creates a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// envelope is the uniform wrapper on every response: {data, message?, count?}
// on success, {error, messages?, message?} on failure.
type envelope struct {
	Data     json.RawMessage     `json:"data"`
	Message  string              `json:"message"`
	Count    *int                `json:"count"`
	Error    string              `json:"error"`
	Messages map[string][]string `json:"messages"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindUnexpected, Message: err.Error()}
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reqBody)
	if err != nil {
		return &Error{Kind: KindUnexpected, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// No response at all: connection refused, DNS failure, timeout
		return &Error{Kind: KindTransport, Message: err.Error()}
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e := &Error{Kind: KindServer, Status: resp.StatusCode, Fields: env.Messages}
		switch {
		case env.Error != "":
			e.Message = env.Error
		case env.Message != "":
			e.Message = env.Message
		default:
			e.Message = fmt.Sprintf("server returned status %d", resp.StatusCode)
		}
		return e
	}

	if decodeErr != nil {
		return &Error{Kind: KindUnexpected, Message: "malformed response: " + decodeErr.Error()}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &Error{Kind: KindUnexpected, Message: "malformed response: " + err.Error()}
		}
	}
	return nil
}

// CreateTaskInput is the body of POST /tasks.
type CreateTaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// UpdateTaskInput is the body of PUT /tasks/{id}. Nil fields are omitted so
// the server leaves them untouched.
type UpdateTaskInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateCommentInput is the body of POST /comments.
type CreateCommentInput struct {
	TaskID  int64  `json:"task_id"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

// UpdateCommentInput is the body of PUT /comments/{id}.
type UpdateCommentInput struct {
	Content *string `json:"content,omitempty"`
	Author  *string `json:"author,omitempty"`
}

func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	task := &models.Task{}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d", id), nil, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (c *Client) CreateTask(ctx context.Context, in CreateTaskInput) (*models.Task, error) {
	task := &models.Task{}
	if err := c.do(ctx, http.MethodPost, "/tasks", in, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id int64, in UpdateTaskInput) (*models.Task, error) {
	task := &models.Task{}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), in, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil)
}

func (c *Client) ListComments(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	if err := c.do(ctx, http.MethodGet, "/comments", nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) ListTaskComments(ctx context.Context, taskID int64) ([]models.Comment, error) {
	var comments []models.Comment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/comments/task/%d", taskID), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) GetComment(ctx context.Context, id int64) (*models.Comment, error) {
	comment := &models.Comment{}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/comments/%d", id), nil, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (c *Client) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	comment := &models.Comment{}
	if err := c.do(ctx, http.MethodPost, "/comments", in, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (c *Client) UpdateComment(ctx context.Context, id int64, in UpdateCommentInput) (*models.Comment, error) {
	comment := &models.Comment{}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/comments/%d", id), in, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (c *Client) DeleteComment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/comments/%d", id), nil, nil)
}
