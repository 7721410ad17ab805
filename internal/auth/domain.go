// Package auth implements the authentication guard: Redis-backed sessions,
// credential checks, and role gates for the document endpoints.
package auth

import "strings"

// User is the authenticated principal attached to each request.
type User struct {
	ID    int64
	Name  string
	Email string
	Role  string
}

// DisplayName returns the trimmed name when non-empty, else the email.
func (u User) DisplayName() string {
	if name := strings.TrimSpace(u.Name); name != "" {
		return name
	}
	return u.Email
}

// Role constants used by the document endpoints.
const (
	RolePropertyConsultant = "property_consultant"
	RoleSalesManager       = "sales_manager"
	RoleFinancialAdmin     = "financial_admin"
	RoleFinancialManager   = "financial_manager"
	RoleContractPerson     = "contract_person"
	RoleContractManager    = "contract_manager"
	RoleCEO                = "ceo"
	RoleChairman           = "chairman"
	RoleViceChairman       = "vice_chairman"
	RoleTopManagement      = "top_management"
	RoleAdmin              = "admin"
	RoleSuperAdmin         = "superadmin"
)

// ConsultantRoles lists the roles allowed to generate Client Offers.
func ConsultantRoles() []string {
	return []string{
		RolePropertyConsultant,
		RoleSalesManager,
		RoleAdmin,
		RoleSuperAdmin,
	}
}

// ReservationRoles lists the roles allowed to generate Reservation Forms.
func ReservationRoles() []string {
	return []string{
		RoleFinancialAdmin,
		RoleFinancialManager,
		RoleContractPerson,
		RoleContractManager,
		RoleCEO,
		RoleChairman,
		RoleViceChairman,
		RoleTopManagement,
		RoleAdmin,
		RoleSuperAdmin,
	}
}
