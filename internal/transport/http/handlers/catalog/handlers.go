package cataloghandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"perfscope/internal/domain/auth"
	"perfscope/internal/domain/catalog"
	"perfscope/internal/domain/org"
	"perfscope/internal/transport/http/api"
	"perfscope/internal/transport/http/middleware"
	"perfscope/internal/transport/http/shared"
)

type Handler struct {
	Service *catalog.Service
	Org     *org.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *catalog.Service, orgService *org.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Org: orgService, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/catalog", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermCatalogRead, h.Perms)).Get("/projects", h.handleListProjects)
		r.With(middleware.RequirePermission(auth.PermCatalogWrite, h.Perms)).Post("/projects", h.handleCreateProject)
		r.With(middleware.RequirePermission(auth.PermCatalogRead, h.Perms)).Get("/goals", h.handleListGoals)
		r.With(middleware.RequirePermission(auth.PermCatalogWrite, h.Perms)).Post("/goals", h.handleCreateGoal)
		r.With(middleware.RequirePermission(auth.PermCatalogWrite, h.Perms)).Put("/goals/{goalID}/criteria", h.handleCommitCriteria)
	})
}

// handleListProjects narrows the catalog to what the caller may see. Scope
// mode comes from ?scope=, defaulting to direct reports.
func (h *Handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	projects, err := h.Service.ListProjects(r.Context(), user.OrganizationID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "project_list_failed", "failed to list projects", middleware.GetRequestID(r.Context()))
		return
	}

	mode := r.URL.Query().Get("scope")
	if mode == "" {
		mode = org.ScopeDirectReports
	}
	scope, employees, err := h.Org.ResolveScope(r.Context(), user.OrganizationID, user.EmployeeID, mode)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "scope_failed", "failed to resolve scope", middleware.GetRequestID(r.Context()))
		return
	}

	manager, ok := findEmployee(employees, user.EmployeeID)
	if !ok {
		api.Success(w, []catalog.Project{}, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, catalog.VisibleProjects(projects, manager, scope), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload struct {
		Name            string             `json:"name"`
		Category        string             `json:"category"`
		ReportFrequency string             `json:"reportFrequency"`
		Assignees       []catalog.Assignee `json:"assignees"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "project name is required")
	v.Enum("reportFrequency", payload.ReportFrequency,
		[]string{catalog.FrequencyDaily, catalog.FrequencyWeekly, catalog.FrequencyBiWeekly, catalog.FrequencyMonthly},
		"must be one of daily, weekly, bi-weekly, monthly")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Service.CreateProject(r.Context(), user.OrganizationID, catalog.Project{
		Name:            payload.Name,
		Category:        payload.Category,
		ReportFrequency: payload.ReportFrequency,
		Assignees:       payload.Assignees,
		CreatedBy:       user.EmployeeID,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrDuplicateAssignee) || errors.Is(err, catalog.ErrUnknownFrequency) {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "project_create_failed", "failed to create project", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListGoals(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	goals, err := h.Service.ListGoals(r.Context(), user.OrganizationID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "goal_list_failed", "failed to list goals", middleware.GetRequestID(r.Context()))
		return
	}
	projects, err := h.Service.ListProjects(r.Context(), user.OrganizationID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "project_list_failed", "failed to list projects", middleware.GetRequestID(r.Context()))
		return
	}
	employees, err := h.Org.ListEmployees(r.Context(), user.OrganizationID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, catalog.VisibleGoals(goals, projects, employees, user.EmployeeID), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload struct {
		ProjectID string              `json:"projectId"`
		Title     string              `json:"title"`
		Criteria  []catalog.Criterion `json:"criteria"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("projectId", payload.ProjectID, "project id is required")
	v.Required("title", payload.Title, "goal title is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Service.CreateGoal(r.Context(), catalog.Goal{
		ProjectID: payload.ProjectID,
		Title:     payload.Title,
		Criteria:  payload.Criteria,
		CreatedBy: user.EmployeeID,
	})
	if err != nil {
		if isCriteriaError(err) {
			api.Fail(w, http.StatusBadRequest, "invalid_criteria", err.Error(), middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "goal_create_failed", "failed to create goal", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCommitCriteria(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload struct {
		Criteria []catalog.Criterion `json:"criteria"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	goalID := chi.URLParam(r, "goalID")
	goals, err := h.Service.ListGoals(r.Context(), user.OrganizationID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "goal_list_failed", "failed to list goals", middleware.GetRequestID(r.Context()))
		return
	}
	goal, ok := findGoal(goals, goalID)
	if !ok {
		api.Fail(w, http.StatusNotFound, "goal_not_found", "goal not found", middleware.GetRequestID(r.Context()))
		return
	}
	if !catalog.CanEditGoal(goal, user.EmployeeID) {
		api.Fail(w, http.StatusForbidden, "forbidden", "only the goal's author may edit it", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Service.CommitCriteria(r.Context(), goalID, payload.Criteria); err != nil {
		if isCriteriaError(err) {
			api.Fail(w, http.StatusBadRequest, "invalid_criteria", err.Error(), middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "criteria_update_failed", "failed to update criteria", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"goalId": goalID}, middleware.GetRequestID(r.Context()))
}

func isCriteriaError(err error) bool {
	return errors.Is(err, catalog.ErrWeightsNotHundred) ||
		errors.Is(err, catalog.ErrWeightOutOfRange) ||
		errors.Is(err, catalog.ErrDuplicateCriterion) ||
		errors.Is(err, catalog.ErrNoCriteria)
}

func findEmployee(employees []org.Employee, id string) (org.Employee, bool) {
	for _, emp := range employees {
		if emp.ID == id {
			return emp, true
		}
	}
	return org.Employee{}, false
}

func findGoal(goals []catalog.Goal, id string) (catalog.Goal, bool) {
	for _, g := range goals {
		if g.ID == id {
			return g, true
		}
	}
	return catalog.Goal{}, false
}
