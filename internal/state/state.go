// Package state holds the client-side caches for tasks and comments and the
// selection state that composes them. The stores own their data
// independently; the composition layer reads both, neither store reads the
// other. The server is always the source of truth: stores only apply
// server-confirmed results to their local lists.
package state

import (
	"context"

	"taskdeck/internal/api"
	"taskdeck/internal/models"
)

// Client is the slice of the API surface the stores need. *api.Client
// satisfies it; tests substitute a fake.
type Client interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, in api.CreateTaskInput) (*models.Task, error)
	UpdateTask(ctx context.Context, id int64, in api.UpdateTaskInput) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) error

	ListTaskComments(ctx context.Context, taskID int64) ([]models.Comment, error)
	CreateComment(ctx context.Context, in api.CreateCommentInput) (*models.Comment, error)
	UpdateComment(ctx context.Context, id int64, in api.UpdateCommentInput) (*models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}
