package org

// CapabilitiesOf derives the effective capability set for an employee.
// An account owner bypasses all stored restrictions; otherwise each
// capability reflects the stored flag, defaulting to false when unset.
func CapabilitiesOf(employee Employee) Capabilities {
	if employee.IsAccountOwner {
		return Capabilities{ViewOrgWide: true, ManageSettings: true, IsOwner: true}
	}
	caps := Capabilities{}
	if employee.Permissions != nil {
		caps.ViewOrgWide = employee.Permissions.CanViewOrganizationWide
		caps.ManageSettings = employee.Permissions.CanManageSettings
	}
	return caps
}
