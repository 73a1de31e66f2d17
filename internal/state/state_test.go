package state

import (
	"context"
	"errors"

	"taskdeck/internal/api"
	"taskdeck/internal/models"
)

// fakeClient implements Client with per-method hooks and call counters.
type fakeClient struct {
	listTasksFn        func(ctx context.Context) ([]models.Task, error)
	createTaskFn       func(ctx context.Context, in api.CreateTaskInput) (*models.Task, error)
	updateTaskFn       func(ctx context.Context, id int64, in api.UpdateTaskInput) (*models.Task, error)
	deleteTaskFn       func(ctx context.Context, id int64) error
	listTaskCommentsFn func(ctx context.Context, taskID int64) ([]models.Comment, error)
	createCommentFn    func(ctx context.Context, in api.CreateCommentInput) (*models.Comment, error)
	updateCommentFn    func(ctx context.Context, id int64, in api.UpdateCommentInput) (*models.Comment, error)
	deleteCommentFn    func(ctx context.Context, id int64) error

	calls map[string]int
}

func newFakeClient() *fakeClient {
	return &fakeClient{calls: make(map[string]int)}
}

var errNotStubbed = errors.New("not stubbed")

func (f *fakeClient) ListTasks(ctx context.Context) ([]models.Task, error) {
	f.calls["ListTasks"]++
	if f.listTasksFn == nil {
		return nil, errNotStubbed
	}
	return f.listTasksFn(ctx)
}

func (f *fakeClient) CreateTask(ctx context.Context, in api.CreateTaskInput) (*models.Task, error) {
	f.calls["CreateTask"]++
	if f.createTaskFn == nil {
		return nil, errNotStubbed
	}
	return f.createTaskFn(ctx, in)
}

func (f *fakeClient) UpdateTask(ctx context.Context, id int64, in api.UpdateTaskInput) (*models.Task, error) {
	f.calls["UpdateTask"]++
	if f.updateTaskFn == nil {
		return nil, errNotStubbed
	}
	return f.updateTaskFn(ctx, id, in)
}

func (f *fakeClient) DeleteTask(ctx context.Context, id int64) error {
	f.calls["DeleteTask"]++
	if f.deleteTaskFn == nil {
		return errNotStubbed
	}
	return f.deleteTaskFn(ctx, id)
}

func (f *fakeClient) ListTaskComments(ctx context.Context, taskID int64) ([]models.Comment, error) {
	f.calls["ListTaskComments"]++
	if f.listTaskCommentsFn == nil {
		return nil, errNotStubbed
	}
	return f.listTaskCommentsFn(ctx, taskID)
}

func (f *fakeClient) CreateComment(ctx context.Context, in api.CreateCommentInput) (*models.Comment, error) {
	f.calls["CreateComment"]++
	if f.createCommentFn == nil {
		return nil, errNotStubbed
	}
	return f.createCommentFn(ctx, in)
}

func (f *fakeClient) UpdateComment(ctx context.Context, id int64, in api.UpdateCommentInput) (*models.Comment, error) {
	f.calls["UpdateComment"]++
	if f.updateCommentFn == nil {
		return nil, errNotStubbed
	}
	return f.updateCommentFn(ctx, id, in)
}

func (f *fakeClient) DeleteComment(ctx context.Context, id int64) error {
	f.calls["DeleteComment"]++
	if f.deleteCommentFn == nil {
		return errNotStubbed
	}
	return f.deleteCommentFn(ctx, id)
}
