package state

import (
	"context"
	"sync"

	"taskdeck/internal/api"
	"taskdeck/internal/models"
)

// CommentStore caches the comments of one task at a time. Every fetch is
// tagged with a generation; a response whose generation no longer matches the
// current one is discarded, so a slow reply for a previously selected task
// never overwrites the list of the task selected now.
type CommentStore struct {
	mu       sync.Mutex
	client   Client
	taskID   int64
	gen      uint64
	comments []models.Comment
	loading  bool
	err      string
}

func NewCommentStore(client Client) *CommentStore {
	return &CommentStore{client: client}
}

// Comments returns the cached list for the current task.
func (s *CommentStore) Comments() []models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.comments
}

// TaskID returns the task the cache is scoped to, zero when none.
func (s *CommentStore) TaskID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.taskID
}

// Loading reports whether a fetch is in flight.
func (s *CommentStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last failure message, empty after a success.
func (s *CommentStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// FetchForTask replaces the whole list with the server's list for taskID.
// Re-fetching the same task is not deduplicated.
func (s *CommentStore) FetchForTask(ctx context.Context, taskID int64) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.taskID = taskID
	s.loading = true
	s.mu.Unlock()

	comments, err := s.client.ListTaskComments(ctx, taskID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// A newer fetch superseded this one while it was in flight
		return nil
	}
	s.loading = false
	if err != nil {
		s.err = err.Error()
		return err
	}
	s.comments = comments
	s.err = ""
	return nil
}

// Reset clears the cache, for when no task is selected.
func (s *CommentStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.taskID = 0
	s.comments = nil
	s.loading = false
	s.err = ""
}

// Create validates content and author, then creates the comment and prepends
// the server's row. The owning task's cached comment count goes stale until
// the task list is refetched.
func (s *CommentStore) Create(ctx context.Context, taskID int64, content, author string) (*models.Comment, error) {
	if err := models.ValidateNewComment(content, author); err != nil {
		return nil, err
	}

	comment, err := s.client.CreateComment(ctx, api.CreateCommentInput{
		TaskID:  taskID,
		Content: content,
		Author:  author,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = err.Error()
		return nil, err
	}
	if s.taskID == taskID {
		s.comments = append([]models.Comment{*comment}, s.comments...)
	}
	s.err = ""
	return comment, nil
}

// Update sends only the set fields; author may be omitted on update.
func (s *CommentStore) Update(ctx context.Context, id int64, in api.UpdateCommentInput) (*models.Comment, error) {
	if err := models.ValidateCommentPatch(in.Content, in.Author); err != nil {
		return nil, err
	}

	comment, err := s.client.UpdateComment(ctx, id, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = err.Error()
		return nil, err
	}
	for i := range s.comments {
		if s.comments[i].ID == id {
			s.comments[i] = *comment
			break
		}
	}
	s.err = ""
	return comment, nil
}

// Delete removes the entry by id on success, without refetching the owning
// task.
func (s *CommentStore) Delete(ctx context.Context, id int64) error {
	err := s.client.DeleteComment(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = err.Error()
		return err
	}
	for i := range s.comments {
		if s.comments[i].ID == id {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			break
		}
	}
	s.err = ""
	return nil
}
