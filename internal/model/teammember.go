package model

import "time"

// TeamMember is a user of the CRM workspace.
type TeamMember struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	Permissions []string   `json:"permissions"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleMember  = "member"
	RoleViewer  = "viewer"

	MemberActive   = "active"
	MemberInactive = "inactive"
	MemberPending  = "pending"
)

var (
	TeamRoles    = []string{RoleAdmin, RoleManager, RoleMember, RoleViewer}
	TeamStatuses = []string{MemberActive, MemberInactive, MemberPending}
)

type TeamMemberFilter struct {
	Role   string
	Status string
}

// TeamStats counts members by role and by status. Each breakdown sums to Total.
type TeamStats struct {
	Total    int            `json:"total"`
	ByRole   map[string]int `json:"byRole"`
	ByStatus map[string]int `json:"byStatus"`
}
