package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"task-server/internal/domain"
	"task-server/internal/errors"
	"task-server/internal/services"
)

// TaskController handles HTTP requests for tasks.
type TaskController struct {
	service services.TaskService
}

// NewTaskController creates a new TaskController.
func NewTaskController(service services.TaskService) *TaskController {
	return &TaskController{service: service}
}

// Ping handles GET /ping. It returns a fixed acknowledgment and never
// touches storage.
func (c *TaskController) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"ping": "pong!"})
}

// CreateTask handles POST /task/.
func (c *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
	var create domain.TaskCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	task, err := c.service.CreateTask(r.Context(), create)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

// ListTasks handles GET /task/.
func (c *TaskController) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := c.service.ListTasks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	writeJSON(w, http.StatusOK, tasks)
}

// GetTaskByID handles GET /task/{taskID}.
func (c *TaskController) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["taskID"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, errors.NewInvalidInputError("taskID", idStr, "must be an integer"))
		return
	}

	task, err := c.service.GetTask(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}
