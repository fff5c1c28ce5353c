package analyticshandler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jung-kurt/gofpdf"

	"perfscope/internal/domain/analytics"
	"perfscope/internal/domain/auth"
	"perfscope/internal/domain/catalog"
	"perfscope/internal/domain/org"
	"perfscope/internal/domain/reporting"
	"perfscope/internal/platform/summary"
	"perfscope/internal/transport/http/api"
	"perfscope/internal/transport/http/middleware"
	"perfscope/internal/transport/http/shared"
)

type Handler struct {
	Reporting *reporting.Service
	Catalog   *catalog.Service
	Org       *org.Service
	Summary   *summary.Service
	Perms     middleware.PermissionStore
}

func NewHandler(reportingService *reporting.Service, catalogService *catalog.Service, orgService *org.Service, summaryService *summary.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{
		Reporting: reportingService,
		Catalog:   catalogService,
		Org:       orgService,
		Summary:   summaryService,
		Perms:     perms,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/analytics", func(r chi.Router) {
		r.Use(middleware.RequirePermission(auth.PermAnalyticsRead, h.Perms))
		r.Get("/dashboard", h.handleDashboard)
		r.Get("/dashboard/export", h.handleDashboardExport)
		r.Get("/leaderboard", h.handleLeaderboard)
		r.Post("/summary", h.handleSummary)
	})
}

// dashboardQuery is the resolved (scope, window, granularity) triple plus the
// data it selects. Every analytics endpoint starts from the same resolution so
// numbers agree across views.
type dashboardQuery struct {
	reports     []reporting.Report
	goals       []catalog.Goal
	projects    []catalog.Project
	start       time.Time
	end         time.Time
	granularity string
}

func (h *Handler) resolveQuery(ctx context.Context, user auth.UserContext, r *http.Request) (dashboardQuery, error) {
	start, end, err := shared.Window(r.URL.Query().Get("start"), r.URL.Query().Get("end"), time.Now())
	if err != nil {
		return dashboardQuery{}, fmt.Errorf("invalid window: %w", err)
	}

	granularity := r.URL.Query().Get("granularity")
	if granularity == "" {
		granularity = analytics.GranularityWeekly
	}

	scope := org.Scope{Mode: org.ScopeDirectReports, EmployeeIDs: []string{user.EmployeeID}}
	viewer := org.Employee{ID: user.EmployeeID}
	if user.RoleName == auth.RoleManager {
		mode := r.URL.Query().Get("scope")
		if mode == "" {
			mode = org.ScopeDirectReports
		}
		resolved, employees, err := h.Org.ResolveScope(ctx, user.OrganizationID, user.EmployeeID, mode)
		if err != nil {
			return dashboardQuery{}, fmt.Errorf("resolve scope: %w", err)
		}
		scope = resolved
		for _, employee := range employees {
			if employee.ID == user.EmployeeID {
				viewer = employee
				break
			}
		}
	}

	reports, err := h.Reporting.ListReportsForEmployees(ctx, user.OrganizationID, scope.EmployeeIDs, start, end)
	if err != nil {
		return dashboardQuery{}, fmt.Errorf("list reports: %w", err)
	}
	allGoals, err := h.Catalog.ListGoals(ctx, user.OrganizationID)
	if err != nil {
		return dashboardQuery{}, fmt.Errorf("list goals: %w", err)
	}
	allProjects, err := h.Catalog.ListProjects(ctx, user.OrganizationID)
	if err != nil {
		return dashboardQuery{}, fmt.Errorf("list projects: %w", err)
	}

	// Aggregates must only ever see the caller's slice of the catalog;
	// otherwise org-wide projects inflate the expected submission volume.
	projects := catalog.VisibleProjects(allProjects, viewer, scope)

	return dashboardQuery{
		reports:     reports,
		goals:       scopeGoals(allGoals, allProjects, projects),
		projects:    projects,
		start:       start,
		end:         end,
		granularity: granularity,
	}, nil
}

// scopeGoals keeps goals whose project survived visibility narrowing. Goals
// whose project reference dangles org-wide are kept too: reports against them
// are real and still feed the alignment view.
func scopeGoals(goals []catalog.Goal, allProjects, visibleProjects []catalog.Project) []catalog.Goal {
	known := make(map[string]bool, len(allProjects))
	for _, p := range allProjects {
		known[p.ID] = true
	}
	visible := make(map[string]bool, len(visibleProjects))
	for _, p := range visibleProjects {
		visible[p.ID] = true
	}

	out := make([]catalog.Goal, 0, len(goals))
	for _, g := range goals {
		if visible[g.ProjectID] || !known[g.ProjectID] {
			out = append(out, g)
		}
	}
	return out
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	q, err := h.resolveQuery(r.Context(), user, r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "dashboard_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	snapshot := analytics.Snapshot(q.reports, q.goals, q.projects, q.start, q.end, q.granularity)
	api.Success(w, snapshot, middleware.GetRequestID(r.Context()))
}

// handleLeaderboard returns the caller's 1-based rank among all employees in
// the organization for the window, computed over every report, not the
// caller's scoped subset.
func (h *Handler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
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

	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" {
		employeeID = user.EmployeeID
	}

	all, err := h.Reporting.ListReports(r.Context(), user.OrganizationID, start, end)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leaderboard_failed", "failed to load reports", middleware.GetRequestID(r.Context()))
		return
	}

	position, ranked := analytics.LeaderboardPosition(all, employeeID, start, end)
	api.Success(w, map[string]any{
		"employeeId": employeeID,
		"position":   position,
		"ranked":     ranked,
	}, middleware.GetRequestID(r.Context()))
}

// handleSummary generates a natural-language digest of the scoped reports.
// Responses belonging to a superseded request generation are discarded rather
// than returned, so a slow summarization can never answer a newer query.
func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if h.Summary == nil {
		api.Fail(w, http.StatusServiceUnavailable, "summary_disabled", "summarization is not enabled", middleware.GetRequestID(r.Context()))
		return
	}

	q, err := h.resolveQuery(r.Context(), user, r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "summary_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	if len(q.reports) == 0 {
		api.Fail(w, http.StatusUnprocessableEntity, "summary_no_reports", "no reports in the selected window", middleware.GetRequestID(r.Context()))
		return
	}

	reasonings := make([]string, 0, len(q.reports))
	for _, report := range q.reports {
		reasonings = append(reasonings, report.EvaluationReasoning)
	}

	generation := h.Summary.Begin()
	text, fresh := h.Summary.Summarize(r.Context(), generation, reasonings, analytics.CriteriaAverages(q.reports))
	if !fresh {
		api.Fail(w, http.StatusConflict, "summary_superseded", "a newer summary request is in flight", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"summary":     text,
		"reportCount": len(q.reports),
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDashboardExport(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	q, err := h.resolveQuery(r.Context(), user, r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "export_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	snapshot := analytics.Snapshot(q.reports, q.goals, q.projects, q.start, q.end, q.granularity)

	pdf := buildDashboardPDF(snapshot, q.start, q.end)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=performance-dashboard.pdf")
	if err := pdf.Output(w); err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to render pdf", middleware.GetRequestID(r.Context()))
	}
}

func buildDashboardPDF(snapshot analytics.MetricsSnapshot, start, end time.Time) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Performance Dashboard")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Window: %s to %s", start.Format("2006-01-02"), end.Format("2006-01-02")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Reports: %d", snapshot.ReportCount))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Average score: %.2f", snapshot.Average))
	pdf.Ln(7)
	if snapshot.Consistency != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Consistency: %.1f (std dev %.2f)", snapshot.Consistency.Value, snapshot.Consistency.StdDev))
		pdf.Ln(7)
	}
	if snapshot.Reliability != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Submission reliability: %.0f%% (%d of %d expected)", snapshot.Reliability.Rate, snapshot.Reliability.Actual, snapshot.Reliability.Expected))
		pdf.Ln(7)
	}
	pdf.Ln(5)

	if len(snapshot.Contributors) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Top Contributors")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
		for i, c := range snapshot.Contributors {
			pdf.Cell(0, 7, fmt.Sprintf("%d. %s  avg %.2f over %d reports", i+1, c.EmployeeID, c.AverageScore, c.ReportCount))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	if len(snapshot.KeySkills) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Key Skills")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
		for _, skill := range snapshot.KeySkills {
			pdf.Cell(0, 7, fmt.Sprintf("%s: %.1f (scored %d times)", skill.Name, skill.AverageScore, skill.Frequency))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	if len(snapshot.GoalAlignment) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Goal Alignment")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
		for _, band := range snapshot.GoalAlignment {
			title := band.GoalTitle
			if band.ProjectName != "" {
				title = band.ProjectName + " / " + title
			}
			pdf.Cell(0, 7, fmt.Sprintf("%s  high %d, medium %d, low %d", title, band.High, band.Medium, band.Low))
			pdf.Ln(6)
		}
	}

	return pdf
}
