package service

import (
	"context"
	"strings"

	"crmapi/internal/model"
	"crmapi/internal/recordstore"
)

const entityTeamMember = "team_member"

var teamMemberFields = recordstore.FieldMap{
	"id":          "Id",
	"name":        "Name",
	"email":       "email_c",
	"role":        "role_c",
	"status":      "status_c",
	"permissions": "permissions_c",
	"lastLogin":   "last_login_c",
	"createdAt":   "CreatedOn",
	"updatedAt":   "ModifiedOn",
}

// rolePermissions is the permission set a role starts with.
var rolePermissions = map[string][]string{
	model.RoleAdmin:   {"leads", "deals", "contacts", "sales_reps", "team", "analytics", "reports"},
	model.RoleManager: {"leads", "deals", "contacts", "sales_reps", "analytics", "reports"},
	model.RoleMember:  {"leads", "deals", "contacts"},
	model.RoleViewer:  {"analytics"},
}

// PermissionsFor returns a copy of the default permissions of role.
func PermissionsFor(role string) []string {
	return append([]string{}, rolePermissions[role]...)
}

type TeamMemberService interface {
	List(ctx context.Context, f model.TeamMemberFilter) ([]model.TeamMember, error)
	Get(ctx context.Context, id string) (*model.TeamMember, error)
	Invite(ctx context.Context, in model.TeamMember) (*model.TeamMember, error)
	Update(ctx context.Context, id string, changes map[string]any) (*model.TeamMember, error)
	SetStatus(ctx context.Context, id, status string) (*model.TeamMember, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*model.TeamStats, error)
}

type teamMemberService struct {
	client recordstore.Client
}

func NewTeamMemberService(client recordstore.Client) TeamMemberService {
	return &teamMemberService{client: client}
}

func teamMemberFromRecord(r recordstore.Record) model.TeamMember {
	m := model.TeamMember{
		ID:          r.ID(),
		Name:        r.String("Name"),
		Email:       r.String("email_c"),
		Role:        r.String("role_c"),
		Status:      r.String("status_c"),
		Permissions: r.Strings("permissions_c"),
		LastLogin:   timePtr(r.Time("last_login_c")),
		CreatedAt:   r.Time("CreatedOn"),
		UpdatedAt:   r.Time("ModifiedOn"),
	}
	applyTeamMemberDefaults(&m)
	return m
}

func applyTeamMemberDefaults(m *model.TeamMember) {
	if m.Role == "" {
		m.Role = model.RoleMember
	}
	if m.Status == "" {
		m.Status = model.MemberPending
	}
	if m.Permissions == nil {
		m.Permissions = PermissionsFor(m.Role)
	}
}

func teamMemberToRecord(m model.TeamMember) recordstore.Record {
	return recordstore.Record{
		"Name":          m.Name,
		"email_c":       m.Email,
		"role_c":        m.Role,
		"status_c":      m.Status,
		"permissions_c": strings.Join(m.Permissions, ","),
	}
}

func (s *teamMemberService) List(ctx context.Context, f model.TeamMemberFilter) ([]model.TeamMember, error) {
	q := recordstore.Select(teamMemberFields.Fields()...).
		Where("role_c", recordstore.EqualTo, f.Role).
		Where("status_c", recordstore.EqualTo, f.Status).
		OrderBy("Name", recordstore.Asc).
		Page(aggregateLimit, 0)
	recs, _ := fetch(ctx, s.client, entityTeamMember, q)

	out := make([]model.TeamMember, 0, len(recs))
	for _, r := range recs {
		out = append(out, teamMemberFromRecord(r))
	}
	return out, nil
}

func (s *teamMemberService) Get(ctx context.Context, id string) (*model.TeamMember, error) {
	rec, err := getOne(ctx, s.client, entityTeamMember, id, teamMemberFields.Fields())
	if err != nil {
		return nil, err
	}
	m := teamMemberFromRecord(rec)
	return &m, nil
}

func (s *teamMemberService) Invite(ctx context.Context, in model.TeamMember) (*model.TeamMember, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := validateEmail("email", in.Email, true); err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		in.Name, _, _ = strings.Cut(in.Email, "@")
	}
	applyTeamMemberDefaults(&in)
	if err := oneOf("role", in.Role, model.TeamRoles); err != nil {
		return nil, err
	}
	if err := oneOf("status", in.Status, model.TeamStatuses); err != nil {
		return nil, err
	}
	if err := ensureUnique(ctx, s.client, entityTeamMember, "email_c", in.Email, ""); err != nil {
		return nil, err
	}

	stored, err := createOne(ctx, s.client, entityTeamMember, teamMemberToRecord(in))
	if err != nil {
		return nil, err
	}
	m := teamMemberFromRecord(stored)
	return &m, nil
}

func (s *teamMemberService) Update(ctx context.Context, id string, changes map[string]any) (*model.TeamMember, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if email, ok, err := stringChange(changes, "email"); err != nil {
		return nil, err
	} else if ok {
		email = strings.ToLower(email)
		if err := validateEmail("email", email, true); err != nil {
			return nil, err
		}
		if err := ensureUnique(ctx, s.client, entityTeamMember, "email_c", email, id); err != nil {
			return nil, err
		}
		changes["email"] = email
	}
	if status, ok, err := stringChange(changes, "status"); err != nil {
		return nil, err
	} else if ok {
		if err := oneOf("status", status, model.TeamStatuses); err != nil {
			return nil, err
		}
	}
	if raw, ok := changes["permissions"]; ok {
		perms, err := permissionList(raw)
		if err != nil {
			return nil, err
		}
		changes["permissions"] = strings.Join(perms, ",")
	}
	if role, ok, err := stringChange(changes, "role"); err != nil {
		return nil, err
	} else if ok {
		if err := oneOf("role", role, model.TeamRoles); err != nil {
			return nil, err
		}
		if _, explicit := changes["permissions"]; !explicit {
			changes["permissions"] = strings.Join(PermissionsFor(role), ",")
		}
	}
	if _, ok := changes["lastLogin"]; ok {
		return nil, invalid("lastLogin", "is maintained by sign-in")
	}

	rec, err := translate(teamMemberFields, changes)
	if err != nil {
		return nil, err
	}
	stored, err := updateOne(ctx, s.client, entityTeamMember, id, rec)
	if err != nil {
		return nil, err
	}
	m := teamMemberFromRecord(stored)
	return &m, nil
}

func (s *teamMemberService) SetStatus(ctx context.Context, id, status string) (*model.TeamMember, error) {
	return s.Update(ctx, id, map[string]any{"status": status})
}

func (s *teamMemberService) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, s.client, entityTeamMember, id)
}

func (s *teamMemberService) Stats(ctx context.Context) (*model.TeamStats, error) {
	members, err := s.List(ctx, model.TeamMemberFilter{})
	if err != nil {
		return nil, err
	}

	st := &model.TeamStats{
		ByRole:   make(map[string]int, len(model.TeamRoles)),
		ByStatus: make(map[string]int, len(model.TeamStatuses)),
	}
	for _, r := range model.TeamRoles {
		st.ByRole[r] = 0
	}
	for _, status := range model.TeamStatuses {
		st.ByStatus[status] = 0
	}
	for _, m := range members {
		st.Total++
		st.ByRole[m.Role]++
		st.ByStatus[m.Status]++
	}
	return st, nil
}

func permissionList(raw any) ([]string, error) {
	items, err := tagList(raw)
	if err != nil {
		return nil, invalid("permissions", "must be a list of strings")
	}
	out := make([]string, 0, len(items))
	for _, p := range items {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}
