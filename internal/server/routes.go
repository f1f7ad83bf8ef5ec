package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all routes for the application.
func RegisterRoutes(router *mux.Router, taskController *TaskController) {
	router.HandleFunc("/ping", taskController.Ping).Methods(http.MethodGet)
	router.HandleFunc("/task/", taskController.CreateTask).Methods(http.MethodPost)
	router.HandleFunc("/task/", taskController.ListTasks).Methods(http.MethodGet)
	router.HandleFunc("/task/{taskID}", taskController.GetTaskByID).Methods(http.MethodGet)
}
