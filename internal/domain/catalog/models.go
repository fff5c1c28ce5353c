package catalog

const (
	FrequencyDaily    = "daily"
	FrequencyWeekly   = "weekly"
	FrequencyBiWeekly = "bi-weekly"
	FrequencyMonthly  = "monthly"
)

const (
	AssigneeEmployee = "employee"
	AssigneeManager  = "manager"
)

type Assignee struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type Project struct {
	ID              string     `json:"id"`
	OrganizationID  string     `json:"organizationId"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	Assignees       []Assignee `json:"assignees"`
	ReportFrequency string     `json:"reportFrequency"`
	CreatedBy       string     `json:"createdBy"`
}

type Criterion struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

type Goal struct {
	ID        string      `json:"id"`
	ProjectID string      `json:"projectId"`
	Title     string      `json:"title"`
	Criteria  []Criterion `json:"criteria"`
	CreatedBy string      `json:"createdBy"`
	ManagerID string      `json:"managerId,omitempty"`
}

// CreatedByManager reports goal authorship. Either creator field may carry the
// author reference depending on which flow created the goal.
func (g Goal) CreatedByManager(managerID string) bool {
	return managerID != "" && (g.CreatedBy == managerID || g.ManagerID == managerID)
}

func (p Project) HasAssignee(employeeID string) bool {
	for _, a := range p.Assignees {
		if a.ID == employeeID {
			return true
		}
	}
	return false
}
