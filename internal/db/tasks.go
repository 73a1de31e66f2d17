package db

import (
	"database/sql"
	"strings"

	"taskdeck/internal/models"
)

const taskColumns = `
	t.id, t.title, t.description, t.created_at, t.updated_at,
	(SELECT COUNT(*) FROM comments c WHERE c.task_id = t.id)
`

func scanTask(row interface{ Scan(...any) error }, t *models.Task) error {
	return row.Scan(&t.ID, &t.Title, &t.Description, &t.CreatedAt, &t.UpdatedAt, &t.CommentCount)
}

// CreateTask creates a new task
func (db *DB) CreateTask(title, description string) (*models.Task, error) {
	result, err := db.Exec(`
		INSERT INTO tasks (title, description) VALUES (?, ?)
	`, strings.TrimSpace(title), strings.TrimSpace(description))
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return db.GetTask(id)
}

// GetTask retrieves a task by ID with its comment count
func (db *DB) GetTask(id int64) (*models.Task, error) {
	t := &models.Task{}
	err := scanTask(db.QueryRow(`
		SELECT `+taskColumns+` FROM tasks t WHERE t.id = ?
	`, id), t)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ListTasks returns all tasks, newest first
func (db *DB) ListTasks() ([]models.Task, error) {
	rows, err := db.Query(`
		SELECT ` + taskColumns + ` FROM tasks t ORDER BY t.created_at DESC, t.id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := scanTask(rows, &t); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// UpdateTask updates the provided fields of a task. Nil fields are left
// untouched. Returns the updated row.
func (db *DB) UpdateTask(id int64, title, description *string) (*models.Task, error) {
	if _, err := db.GetTask(id); err != nil {
		return nil, err
	}

	sets := []string{"updated_at = CURRENT_TIMESTAMP"}
	var args []any
	if title != nil {
		sets = append(sets, "title = ?")
		args = append(args, strings.TrimSpace(*title))
	}
	if description != nil {
		sets = append(sets, "description = ?")
		args = append(args, strings.TrimSpace(*description))
	}
	args = append(args, id)

	_, err := db.Exec("UPDATE tasks SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, err
	}

	return db.GetTask(id)
}

// DeleteTask deletes a task. Its comments go with it via the cascade.
func (db *DB) DeleteTask(id int64) error {
	result, err := db.Exec("DELETE FROM tasks WHERE id = ?", id)
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
