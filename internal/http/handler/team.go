package handler

import (
	"github.com/gofiber/fiber/v2"

	"crmapi/internal/model"
	"crmapi/internal/service"
)

// ListTeamMembers godoc
//
//	@Summary	List team members
//	@Tags		team
//	@Produce	json
//	@Param		role	query	string	false	"admin, manager, member or viewer"
//	@Param		status	query	string	false	"active, inactive or pending"
//	@Success	200		{array}	model.TeamMember
//	@Router		/api/v1/team [get]
func ListTeamMembers(svc service.TeamMemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		members, err := svc.List(c.UserContext(), model.TeamMemberFilter{
			Role:   c.Query("role"),
			Status: c.Query("status"),
		})
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(members)
	}
}

// GetTeamMember godoc
//
//	@Summary	Get a team member
//	@Tags		team
//	@Produce	json
//	@Param		id	path		int	true	"team member id"
//	@Success	200	{object}	model.TeamMember
//	@Router		/api/v1/team/{id} [get]
func GetTeamMember(svc service.TeamMemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := recordID(c)
		if !ok {
			return invalidID(c)
		}
		m, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(m)
	}
}

// InviteTeamMember godoc
//
//	@Summary	Invite a team member
//	@Tags		team
//	@Accept		json
//	@Produce	json
//	@Param		member	body		model.TeamMember	true	"invitee"
//	@Success	201		{object}	model.TeamMember
//	@Router		/api/v1/team [post]
func InviteTeamMember(svc service.TeamMemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.TeamMember
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		m, err := svc.Invite(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	}
}

// UpdateTeamMember godoc
//
//	@Summary	Update team member fields
//	@Tags		team
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"team member id"
//	@Param		changes	body		map[string]any	true	"fields to change"
//	@Success	200		{object}	model.TeamMember
//	@Router		/api/v1/team/{id} [patch]
func UpdateTeamMember(svc service.TeamMemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := recordID(c)
		if !ok {
			return invalidID(c)
		}
		ch, ok := changes(c)
		if !ok {
			return invalidBody(c)
		}
		m, err := svc.Update(c.UserContext(), id, ch)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(m)
	}
}

// SetTeamMemberStatus returns the handler behind /activate and /deactivate.
//
//	@Summary	Activate or deactivate a team member
//	@Tags		team
//	@Produce	json
//	@Param		id	path		int	true	"team member id"
//	@Success	200	{object}	model.TeamMember
//	@Router		/api/v1/team/{id}/activate [post]
//	@Router		/api/v1/team/{id}/deactivate [post]
func SetTeamMemberStatus(svc service.TeamMemberService, status string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := recordID(c)
		if !ok {
			return invalidID(c)
		}
		m, err := svc.SetStatus(c.UserContext(), id, status)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(m)
	}
}

// DeleteTeamMember godoc
//
//	@Summary	Remove a team member
//	@Tags		team
//	@Param		id	path	int	true	"team member id"
//	@Success	204
//	@Router		/api/v1/team/{id} [delete]
func DeleteTeamMember(svc service.TeamMemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := recordID(c)
		if !ok {
			return invalidID(c)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// TeamStats godoc
//
//	@Summary	Member counts by role and status
//	@Tags		team
//	@Produce	json
//	@Success	200	{object}	model.TeamStats
//	@Router		/api/v1/team/stats [get]
func TeamStats(svc service.TeamMemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Stats(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(stats)
	}
}
