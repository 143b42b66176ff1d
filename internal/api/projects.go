package api

import (
	"net/http"

	"github.com/erazemk/izposoja/internal/model"
	"github.com/erazemk/izposoja/internal/store"
)

// DiyProjectsHandler handles DIY project guides.
type DiyProjectsHandler struct {
	Store store.Store
}

// List handles GET /api/diy-projects.
func (h *DiyProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Store.ListDiyProjects(r.Context())
	if err != nil {
		serverError(w, r, "Failed to list DIY projects", err)
		return
	}
	jsonResponse(w, http.StatusOK, projects)
}

// Get handles GET /api/diy-projects/{id}.
func (h *DiyProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	project, err := h.Store.GetDiyProject(r.Context(), id)
	if err != nil {
		serverError(w, r, "Failed to get DIY project", err)
		return
	}
	if project == nil {
		jsonError(w, http.StatusNotFound, "DIY project not found")
		return
	}

	jsonResponse(w, http.StatusOK, project)
}

// Create handles POST /api/diy-projects.
func (h *DiyProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.NewDiyProject
	if !decodeValid(w, r, &req) {
		return
	}

	project, err := h.Store.CreateDiyProject(r.Context(), req)
	if err != nil {
		serverError(w, r, "Failed to create DIY project", err)
		return
	}
	jsonResponse(w, http.StatusCreated, project)
}
