package db

import (
	"database/sql"
	"strings"

	"taskdeck/internal/models"
)

// CreateComment creates a new comment on a task
func (db *DB) CreateComment(taskID int64, content, author string) (*models.Comment, error) {
	// The task must exist; a missing parent is a not-found, not an FK error
	if _, err := db.GetTask(taskID); err != nil {
		return nil, err
	}

	result, err := db.Exec(`
		INSERT INTO comments (task_id, content, author) VALUES (?, ?, ?)
	`, taskID, strings.TrimSpace(content), strings.TrimSpace(author))
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return db.GetComment(id)
}

// GetComment retrieves a comment by ID
func (db *DB) GetComment(id int64) (*models.Comment, error) {
	c := &models.Comment{}
	err := db.QueryRow(`
		SELECT id, task_id, content, author, created_at, updated_at
		FROM comments WHERE id = ?
	`, id).Scan(&c.ID, &c.TaskID, &c.Content, &c.Author, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListComments returns every comment in the system, newest first
func (db *DB) ListComments() ([]models.Comment, error) {
	return db.queryComments(`
		SELECT id, task_id, content, author, created_at, updated_at
		FROM comments ORDER BY created_at DESC, id DESC
	`)
}

// ListTaskComments returns all comments for a task, newest first
func (db *DB) ListTaskComments(taskID int64) ([]models.Comment, error) {
	if _, err := db.GetTask(taskID); err != nil {
		return nil, err
	}
	return db.queryComments(`
		SELECT id, task_id, content, author, created_at, updated_at
		FROM comments WHERE task_id = ? ORDER BY created_at DESC, id DESC
	`, taskID)
}

func (db *DB) queryComments(query string, args ...any) ([]models.Comment, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.TaskID, &c.Content, &c.Author, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// UpdateComment updates the provided fields of a comment. Nil fields are left
// untouched. Returns the updated row.
func (db *DB) UpdateComment(id int64, content, author *string) (*models.Comment, error) {
	if _, err := db.GetComment(id); err != nil {
		return nil, err
	}

	sets := []string{"updated_at = CURRENT_TIMESTAMP"}
	var args []any
	if content != nil {
		sets = append(sets, "content = ?")
		args = append(args, strings.TrimSpace(*content))
	}
	if author != nil {
		sets = append(sets, "author = ?")
		args = append(args, strings.TrimSpace(*author))
	}
	args = append(args, id)

	_, err := db.Exec("UPDATE comments SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, err
	}

	return db.GetComment(id)
}

// DeleteComment deletes a comment
func (db *DB) DeleteComment(id int64) error {
	result, err := db.Exec("DELETE FROM comments WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
