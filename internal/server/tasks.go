package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"taskdeck/internal/db"
	"taskdeck/internal/models"
)

type taskCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type taskUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	return id, err == nil && id > 0
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req taskCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := models.ValidateNewTask(req.Title); err != nil {
		var verr *models.ValidationError
		errors.As(err, &verr)
		writeValidationError(w, verr.Fields)
		return
	}

	task, err := s.db.CreateTask(req.Title, req.Description)
	if err != nil {
		writeDatabaseError(w, err)
		return
	}

	writeData(w, http.StatusCreated, task, "Task created successfully")
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.db.ListTasks()
	if err != nil {
		writeDatabaseError(w, err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	writeList(w, tasks, len(tasks))
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "invalid task id")
		return
	}

	task, err := s.db.GetTask(id)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Task with id %d not found", id))
		return
	}
	if err != nil {
		writeDatabaseError(w, err)
		return
	}

	writeData(w, http.StatusOK, task, "")
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "invalid task id")
		return
	}

	var req taskUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Title == nil && req.Description == nil {
		writeError(w, http.StatusBadRequest, "No valid fields to update")
		return
	}

	if err := models.ValidateTaskPatch(req.Title); err != nil {
		var verr *models.ValidationError
		errors.As(err, &verr)
		writeValidationError(w, verr.Fields)
		return
	}

	task, err := s.db.UpdateTask(id, req.Title, req.Description)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Task with id %d not found", id))
		return
	}
	if err != nil {
		writeDatabaseError(w, err)
		return
	}

	writeData(w, http.StatusOK, task, "Task updated successfully")
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "invalid task id")
		return
	}

	err := s.db.DeleteTask(id)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Task with id %d not found", id))
		return
	}
	if err != nil {
		writeDatabaseError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Task deleted successfully")
}
