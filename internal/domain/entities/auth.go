package entities

// Role is the staff role resolved by the external auth provider. The core
// checks permissions itself instead of trusting the UI to hide controls.

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleAdvisor    Role = "advisor"
	RoleTechnician Role = "technician"
)

// AuthorizationContext carries the acting user's identity into every
// operation that needs a permission check.
type AuthorizationContext struct {
	UserID string
	Role   Role
}

// CanManageFinancials gates cost estimates, service lines, invoices and
// payments. Technicians record findings; they do not price work.
func (a AuthorizationContext) CanManageFinancials() bool {
	return a.Role == RoleAdmin || a.Role == RoleAdvisor
}

// CanManageJobs gates archiving and technician reassignment.
func (a AuthorizationContext) CanManageJobs() bool {
	return a.Role == RoleAdmin || a.Role == RoleAdvisor
}

// CanRecordInspection gates checklist and diagnosis writes. All staff roles
// may record inspection findings.
func (a AuthorizationContext) CanRecordInspection() bool {
	return a.Role == RoleAdmin || a.Role == RoleAdvisor || a.Role == RoleTechnician
}
