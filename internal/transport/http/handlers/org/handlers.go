package orghandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"perfscope/internal/domain/auth"
	"perfscope/internal/domain/org"
	"perfscope/internal/transport/http/api"
	"perfscope/internal/transport/http/middleware"
)

type Handler struct {
	Service *org.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *org.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/org", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermOrgRead, h.Perms)).Get("/employees", h.handleListEmployees)
		r.With(middleware.RequirePermission(auth.PermOrgRead, h.Perms)).Get("/employees/{employeeID}", h.handleGetEmployee)
		r.With(middleware.RequirePermission(auth.PermOrgRead, h.Perms)).Get("/scope", h.handleResolveScope)
		r.With(middleware.RequirePermission(auth.PermSettingsWrite, h.Perms)).Put("/employees/{employeeID}/permissions", h.handleUpdatePermissions)
		r.With(middleware.RequirePermission(auth.PermOrgRead, h.Perms)).Get("/hierarchy/issues", h.handleForestIssues)
	})
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	employees, err := h.Service.ListEmployees(r.Context(), user.OrganizationID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	employee, err := h.Service.GetEmployee(r.Context(), user.OrganizationID, chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employee, middleware.GetRequestID(r.Context()))
}

// handleResolveScope exposes the scope derivation for the authenticated
// manager: ?mode=direct-reports|reporting-chain|organization.
func (h *Handler) handleResolveScope(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = org.ScopeDirectReports
	}

	scope, _, err := h.Service.ResolveScope(r.Context(), user.OrganizationID, user.EmployeeID, mode)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "scope_failed", "failed to resolve scope", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, scope, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdatePermissions(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload org.Permissions
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	if err := h.Service.UpdatePermissions(r.Context(), user.OrganizationID, employeeID, payload); err != nil {
		api.Fail(w, http.StatusInternalServerError, "permission_update_failed", "failed to update permissions", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"employeeId": employeeID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleForestIssues(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	employees, err := h.Service.ListEmployees(r.Context(), user.OrganizationID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, org.ValidateForest(employees), middleware.GetRequestID(r.Context()))
}
