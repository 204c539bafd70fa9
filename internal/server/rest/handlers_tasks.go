package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/taskboard/internal/server/models"
)

type createTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

// updateTaskRequest uses pointers so an omitted field can be told apart from
// a zero value. Only these fields can ever reach the store's patch.
type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	filter := models.TaskFilter{Search: r.URL.Query().Get("search")}

	if v := r.URL.Query().Get("completed"); v != "" {
		completed := v == "true"
		filter.Completed = &completed
	}
	if v := r.URL.Query().Get("priority"); v != "" {
		priority := models.Priority(v)
		filter.Priority = &priority
	}

	tasks, err := s.tasks.List(r.Context(), user.ID, filter)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	writeList(w, len(tasks), tasks)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)

	var details []string
	details = append(details, validateTitle(req.Title)...)
	details = append(details, validateDescription(req.Description)...)
	if req.Priority != "" {
		details = append(details, validatePriority(req.Priority)...)
	}

	draft := models.TaskDraft{
		Title:       req.Title,
		Description: req.Description,
		Priority:    models.Priority(req.Priority),
	}
	if req.DueDate != nil {
		due, dueDetails := parseDueDate(*req.DueDate)
		if len(dueDetails) > 0 {
			details = append(details, dueDetails...)
		} else {
			draft.DueDate = &due
		}
	}

	if len(details) > 0 {
		writeValidationError(w, details)
		return
	}

	task, err := s.tasks.Create(r.Context(), user.ID, draft)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	writeData(w, http.StatusCreated, "task created successfully", task)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, ok := taskID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}

	task, err := s.tasks.Get(r.Context(), user.ID, id)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	writeData(w, http.StatusOK, "", task)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, ok := taskID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var details []string
	patch := models.TaskPatch{
		Description: req.Description,
		Completed:   req.Completed,
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		details = append(details, validateTitle(title)...)
		patch.Title = &title
	}
	if req.Description != nil {
		details = append(details, validateDescription(*req.Description)...)
	}
	if req.Priority != nil {
		details = append(details, validatePriority(*req.Priority)...)
		priority := models.Priority(*req.Priority)
		patch.Priority = &priority
	}
	if req.DueDate != nil {
		due, dueDetails := parseDueDate(*req.DueDate)
		if len(dueDetails) > 0 {
			details = append(details, dueDetails...)
		} else {
			patch.DueDate = &due
		}
	}

	if len(details) > 0 {
		writeValidationError(w, details)
		return
	}

	task, err := s.tasks.Update(r.Context(), user.ID, id, patch)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	writeData(w, http.StatusOK, "task updated successfully", task)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, ok := taskID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}

	task, err := s.tasks.Delete(r.Context(), user.ID, id)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	writeData(w, http.StatusOK, "task deleted successfully", task)
}

// taskID parses the path identifier. A non-numeric identifier is treated the
// same as a missing task.
func taskID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
