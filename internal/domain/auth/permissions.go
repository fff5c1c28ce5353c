package auth

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

const (
	PermOrgRead         = "org.read"
	PermOrgWrite        = "org.write"
	PermCatalogRead     = "catalog.read"
	PermCatalogWrite    = "catalog.write"
	PermReportsRead     = "reports.read"
	PermReportsWrite    = "reports.write"
	PermReportsOverride = "reports.override"
	PermAnalyticsRead   = "analytics.read"
	PermSettingsWrite   = "settings.write"
)

var DefaultPermissions = []string{
	PermOrgRead,
	PermOrgWrite,
	PermCatalogRead,
	PermCatalogWrite,
	PermReportsRead,
	PermReportsWrite,
	PermReportsOverride,
	PermAnalyticsRead,
	PermSettingsWrite,
}

var RolePermissions = map[string][]string{
	RoleEmployee: {
		PermOrgRead,
		PermCatalogRead,
		PermReportsRead,
		PermReportsWrite,
		PermAnalyticsRead,
	},
	RoleManager: {
		PermOrgRead,
		PermOrgWrite,
		PermCatalogRead,
		PermCatalogWrite,
		PermReportsRead,
		PermReportsWrite,
		PermReportsOverride,
		PermAnalyticsRead,
		PermSettingsWrite,
	},
}
