// internal/handler/project.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	chmw "github.com/go-chi/chi/v5/middleware"

	"github.com/mohamedevweb/services-co/internal/service"
)

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

type createProjectRequest struct {
	Prompt         string `json:"prompt"`
	OrganizationID int64  `json:"organizationId"`
}

// Create handles POST /project-ai/create. The brief is handed to the model
// together with the current provider pool; the structured plan comes back
// as a persisted project.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.projectService.CreateWithAI(r.Context(), service.CreateProjectInput{Prompt: req.Prompt}, req.OrganizationID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Project creation error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, output)
}

func (h *ProjectHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	project, err := h.projectService.GetByID(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) ListByOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	projects, err := h.projectService.ListByOrganization(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, projects)
}

// ListByProvider returns the provider-side view: only the paths and tasks
// the provider appears on.
func (h *ProjectHandler) ListByProvider(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	projects, err := h.projectService.ListByProvider(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, projects)
}

type choosePathRequest struct {
	Chosen *bool `json:"isChoose"`
}

// ChoosePath handles PATCH /project/path/{id}/choose; it flips the flag on
// this path only.
func (h *ProjectHandler) ChoosePath(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	chosen := true
	var req choosePathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.Chosen != nil {
		chosen = *req.Chosen
	}
	defer r.Body.Close()

	if err := h.projectService.ChoosePath(r.Context(), id, chosen); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithMessage(w, http.StatusOK, "Path updated")
}

// ChoosePathExclusive handles PATCH /project/path/{id}/choose/exclusive; the
// project ends up with this path as its only chosen one.
func (h *ProjectHandler) ChoosePathExclusive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.projectService.ChoosePathExclusive(r.Context(), id); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithMessage(w, http.StatusOK, "Path chosen")
}

type approveTaskRequest struct {
	Approved *bool `json:"isApproved"`
}

// ApproveTask handles PATCH /project/path/{id}/prestataire/{pid}/approve.
func (h *ProjectHandler) ApproveTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	providerID, err := pathID(r, "pid")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	approved := true
	var req approveTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.Approved != nil {
		approved = *req.Approved
	}
	defer r.Body.Close()

	if err := h.projectService.ApproveTask(r.Context(), id, providerID, approved); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithMessage(w, http.StatusOK, "Task updated")
}

// CreateContract handles POST /contract.
func (h *ProjectHandler) CreateContract(w http.ResponseWriter, r *http.Request) {
	var input service.CreateContractInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	contract, err := h.projectService.CreateContract(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Contract creation error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, contract)
}

func (h *ProjectHandler) ContractsByProvider(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	contracts, err := h.projectService.ContractsByProvider(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, contracts)
}
