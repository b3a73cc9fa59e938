package handler

import (
	"github.com/gofiber/fiber/v2"

	"crmapi/internal/model"
	"crmapi/internal/service"
)

// ListLeads godoc
//
//	@Summary	List leads
//	@Tags		leads
//	@Produce	json
//	@Param		search		query		string	false	"name contains"
//	@Param		status		query		string	false	"lead status"
//	@Param		category	query		string	false	"lead category"
//	@Param		addedBy		query		string	false	"sales rep id"
//	@Param		sort		query		string	false	"field to sort by"
//	@Param		order		query		string	false	"asc or desc"
//	@Param		limit		query		int		false	"page size"
//	@Param		offset		query		int		false	"page offset"
//	@Success	200			{object}	service.ListResult[model.Lead]
//	@Router		/api/v1/leads [get]
func ListLeads(svc service.LeadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, bad := paging(c)
		if bad != "" {
			return invalidQuery(c, bad)
		}
		res, err := svc.List(c.UserContext(), model.LeadFilter{
			Search:   c.Query("search"),
			Status:   c.Query("status"),
			Category: c.Query("category"),
			AddedBy:  c.Query("addedBy"),
			Sort:     c.Query("sort"),
			Order:    c.Query("order"),
			Limit:    limit,
			Offset:   offset,
		})
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// GetLead godoc
//
//	@Summary	Get a lead
//	@Tags		leads
//	@Produce	json
//	@Param		id	path		int	true	"lead id"
//	@Success	200	{object}	model.Lead
//	@Failure	404	{object}	errorPayload
//	@Router		/api/v1/leads/{id} [get]
func GetLead(svc service.LeadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := recordID(c)
		if !ok {
			return invalidID(c)
		}
		lead, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(lead)
	}
}

// CreateLead godoc
//
//	@Summary	Create a lead
//	@Tags		leads
//	@Accept		json
//	@Produce	json
//	@Param		lead	body		model.Lead	true	"lead"
//	@Success	201		{object}	model.Lead
//	@Failure	400		{object}	errorPayload
//	@Failure	409		{object}	errorPayload
//	@Router		/api/v1/leads [post]
func CreateLead(svc service.LeadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.Lead
		if err := c.BodyParser(&in); err != nil {
			return bodyError(c, err)
		}
		lead, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(lead)
	}
}

// UpdateLead godoc
//
//	@Summary	Update lead fields
//	@Tags		leads
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"lead id"
//	@Param		changes	body		map[string]any	true	"fields to change"
//	@Success	200		{object}	model.Lead
//	@Router		/api/v1/leads/{id} [patch]
func UpdateLead(svc service.LeadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := recordID(c)
		if !ok {
			return invalidID(c)
		}
		ch, ok := changes(c)
		if !ok {
			return invalidBody(c)
		}
		lead, err := svc.Update(c.UserContext(), id, ch)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(lead)
	}
}

// DeleteLead godoc
//
//	@Summary	Delete a lead
//	@Tags		leads
//	@Param		id	path	int	true	"lead id"
//	@Success	204
//	@Router		/api/v1/leads/{id} [delete]
func DeleteLead(svc service.LeadService) fiber.Handler {
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

// DailyLeads godoc
//
//	@Summary	Leads added per day and sales rep
//	@Tags		leads
//	@Produce	json
//	@Param		days	query		int		false	"trailing window in days (default 7, max 90)"
//	@Param		rep		query		string	false	"restrict to one sales rep"
//	@Success	200		{object}	model.DailyLeadsReport
//	@Router		/api/v1/leads/daily [get]
func DailyLeads(svc service.LeadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		days, err := queryInt(c, "days", 0)
		if err != nil {
			return invalidQuery(c, "days")
		}
		report, err := svc.DailyLeads(c.UserContext(), days, c.Query("rep"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(report)
	}
}

// FreshLeads godoc
//
//	@Summary	Leads whose website was first seen on the given day
//	@Tags		leads
//	@Produce	json
//	@Param		date	query	string	false	"YYYY-MM-DD, default today"
//	@Success	200		{array}	model.Lead
//	@Router		/api/v1/leads/fresh [get]
func FreshLeads(svc service.LeadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		leads, err := svc.FreshLeads(c.UserContext(), c.Query("date"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(leads)
	}
}
