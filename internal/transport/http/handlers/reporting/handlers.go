package reportinghandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"perfscope/internal/domain/audit"
	"perfscope/internal/domain/auth"
	"perfscope/internal/domain/org"
	"perfscope/internal/domain/reporting"
	"perfscope/internal/transport/http/api"
	"perfscope/internal/transport/http/middleware"
	"perfscope/internal/transport/http/shared"
)

type Handler struct {
	Service *reporting.Service
	Org     *org.Service
	Audit   *audit.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *reporting.Service, orgService *org.Service, auditService *audit.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Org: orgService, Audit: auditService, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermReportsRead, h.Perms)).Get("/", h.handleListReports)
		r.With(middleware.RequirePermission(auth.PermReportsWrite, h.Perms)).Post("/", h.handleCreateReport)
		r.With(middleware.RequirePermission(auth.PermReportsOverride, h.Perms)).Put("/{reportID}/override", h.handleApplyOverride)
		r.With(middleware.RequirePermission(auth.PermReportsOverride, h.Perms)).Delete("/{reportID}/override", h.handleClearOverride)
		r.With(middleware.RequirePermission(auth.PermReportsOverride, h.Perms)).Get("/audit", h.handleListAudit)
	})
}

// handleListReports returns the caller's scoped report subset for a window:
// ?scope= mode, ?start=/&end= dates. Employees see their own reports only.
func (h *Handler) handleListReports(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	start, end, err := shared.Window(r.URL.Query().Get("start"), r.URL.Query().Get("end"), time.Now())
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_window", "invalid start or end date", middleware.GetRequestID(r.Context()))
		return
	}

	employeeIDs := []string{user.EmployeeID}
	if user.RoleName == auth.RoleManager {
		mode := r.URL.Query().Get("scope")
		if mode == "" {
			mode = org.ScopeDirectReports
		}
		scope, _, err := h.Org.ResolveScope(r.Context(), user.OrganizationID, user.EmployeeID, mode)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "scope_failed", "failed to resolve scope", middleware.GetRequestID(r.Context()))
			return
		}
		employeeIDs = scope.EmployeeIDs
	}

	reports, err := h.Service.ListReportsForEmployees(r.Context(), user.OrganizationID, employeeIDs, start, end)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_list_failed", "failed to list reports", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, reports, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload struct {
		GoalID              string                     `json:"goalId"`
		SubmissionDate      string                     `json:"submissionDate"`
		EvaluationScore     float64                    `json:"evaluationScore"`
		EvaluationReasoning string                     `json:"evaluationReasoning"`
		CriterionScores     []reporting.CriterionScore `json:"criterionScores"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("goalId", payload.GoalID, "goal id is required")
	if payload.EvaluationScore < 0 || payload.EvaluationScore > 10 {
		v.Add("evaluationScore", "must be between 0 and 10")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	submitted := time.Now()
	if payload.SubmissionDate != "" {
		parsed, err := shared.ParseDate(payload.SubmissionDate)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid submission date", middleware.GetRequestID(r.Context()))
			return
		}
		submitted = parsed
	}

	id, err := h.Service.CreateReport(r.Context(), reporting.Report{
		GoalID:              payload.GoalID,
		EmployeeID:          user.EmployeeID,
		SubmissionDate:      submitted,
		EvaluationScore:     payload.EvaluationScore,
		EvaluationReasoning: payload.EvaluationReasoning,
		CriterionScores:     payload.CriterionScores,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_create_failed", "failed to create report", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleApplyOverride(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload struct {
		Score     float64 `json:"score"`
		Reasoning string  `json:"reasoning"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	report, owner, ok := h.loadReportAndOwner(w, r, user.OrganizationID)
	if !ok {
		return
	}

	updated, err := h.Service.Override(r.Context(), report, owner, user.EmployeeID, payload.Score, payload.Reasoning)
	if err != nil {
		h.failOverride(w, r, err)
		return
	}
	h.Audit.Record(r.Context(), user.OrganizationID, user.EmployeeID, audit.ActionOverrideApplied,
		"report", report.ID, middleware.GetRequestID(r.Context()), report, updated)
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleClearOverride(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	report, owner, ok := h.loadReportAndOwner(w, r, user.OrganizationID)
	if !ok {
		return
	}

	updated, err := h.Service.RemoveOverride(r.Context(), report, owner, user.EmployeeID)
	if err != nil {
		h.failOverride(w, r, err)
		return
	}
	h.Audit.Record(r.Context(), user.OrganizationID, user.EmployeeID, audit.ActionOverrideCleared,
		"report", report.ID, middleware.GetRequestID(r.Context()), report, updated)
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListAudit(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if h.Audit == nil {
		api.Success(w, []audit.Event{}, middleware.GetRequestID(r.Context()))
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 200 {
			limit = parsed
		}
	}
	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	events, err := h.Audit.List(r.Context(), user.OrganizationID, limit, offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "audit_list_failed", "failed to list audit events", middleware.GetRequestID(r.Context()))
		return
	}
	if events == nil {
		events = []audit.Event{}
	}
	api.Success(w, events, middleware.GetRequestID(r.Context()))
}

func (h *Handler) loadReportAndOwner(w http.ResponseWriter, r *http.Request, orgID string) (reporting.Report, org.Employee, bool) {
	report, err := h.Service.GetReport(r.Context(), chi.URLParam(r, "reportID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "report_not_found", "report not found", middleware.GetRequestID(r.Context()))
		return reporting.Report{}, org.Employee{}, false
	}
	owner, err := h.Org.GetEmployee(r.Context(), orgID, report.EmployeeID)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "report owner not found", middleware.GetRequestID(r.Context()))
		return reporting.Report{}, org.Employee{}, false
	}
	return report, owner, true
}

func (h *Handler) failOverride(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, reporting.ErrNotDirectManager):
		api.Fail(w, http.StatusForbidden, "forbidden", err.Error(), middleware.GetRequestID(r.Context()))
	case errors.Is(err, reporting.ErrScoreOutOfRange), errors.Is(err, reporting.ErrReasoningMissing):
		api.Fail(w, http.StatusBadRequest, "invalid_override", err.Error(), middleware.GetRequestID(r.Context()))
	default:
		api.Fail(w, http.StatusInternalServerError, "override_failed", "failed to update override", middleware.GetRequestID(r.Context()))
	}
}
