package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"taskdeck/internal/db"
	"taskdeck/internal/models"
)

type commentCreateRequest struct {
	TaskID  int64  `json:"task_id"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

type commentUpdateRequest struct {
	Content *string `json:"content"`
	Author  *string `json:"author"`
}

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	var req commentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := models.ValidateNewComment(req.Content, req.Author); err != nil {
		var verr *models.ValidationError
		errors.As(err, &verr)
		writeValidationError(w, verr.Fields)
		return
	}

	comment, err := s.db.CreateComment(req.TaskID, req.Content, req.Author)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Task with id %d not found", req.TaskID))
		return
	}
	if err != nil {
		writeDatabaseError(w, err)
		return
	}

	writeData(w, http.StatusCreated, comment, "Comment created successfully")
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := s.db.ListComments()
	if err != nil {
		writeDatabaseError(w, err)
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	writeList(w, comments, len(comments))
}

func (s *Server) handleListTaskComments(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(r, "taskID")
	if !ok {
		writeError(w, http.StatusNotFound, "invalid task id")
		return
	}

	comments, err := s.db.ListTaskComments(taskID)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Task with id %d not found", taskID))
		return
	}
	if err != nil {
		writeDatabaseError(w, err)
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}

	writeList(w, comments, len(comments))
}

func (s *Server) handleGetComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "invalid comment id")
		return
	}

	comment, err := s.db.GetComment(id)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Comment with id %d not found", id))
		return
	}
	if err != nil {
		writeDatabaseError(w, err)
		return
	}

	writeData(w, http.StatusOK, comment, "")
}

func (s *Server) handleUpdateComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "invalid comment id")
		return
	}

	var req commentUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Content == nil && req.Author == nil {
		writeError(w, http.StatusBadRequest, "No valid fields to update")
		return
	}

	if err := models.ValidateCommentPatch(req.Content, req.Author); err != nil {
		var verr *models.ValidationError
		errors.As(err, &verr)
		writeValidationError(w, verr.Fields)
		return
	}

	comment, err := s.db.UpdateComment(id, req.Content, req.Author)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Comment with id %d not found", id))
		return
	}
	if err != nil {
		writeDatabaseError(w, err)
		return
	}

	writeData(w, http.StatusOK, comment, "Comment updated successfully")
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "invalid comment id")
		return
	}

	err := s.db.DeleteComment(id)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Comment with id %d not found", id))
		return
	}
	if err != nil {
		writeDatabaseError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Comment deleted successfully")
}
