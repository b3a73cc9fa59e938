package handler

import (
	"github.com/gofiber/fiber/v2"

	"crmapi/internal/model"
	"crmapi/internal/service"
)

type stageRequest struct {
	Stage string `json:"stage"`
}

// ListDeals godoc
//
//	@Summary	List deals
//	@Tags		deals
//	@Produce	json
//	@Param		stage		query		string	false	"pipeline stage"
//	@Param		salesRepId	query		string	false	"owning sales rep"
//	@Param		leadId		query		string	false	"originating lead"
//	@Param		limit		query		int		false	"page size"
//	@Param		offset		query		int		false	"page offset"
//	@Success	200			{object}	service.ListResult[model.Deal]
//	@Router		/api/v1/deals [get]
func ListDeals(svc service.DealService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, bad := paging(c)
		if bad != "" {
			return invalidQuery(c, bad)
		}
		res, err := svc.List(c.UserContext(), model.DealFilter{
			Stage:      c.Query("stage"),
			SalesRepID: c.Query("salesRepId"),
			LeadID:     c.Query("leadId"),
			Limit:      limit,
			Offset:     offset,
		})
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// GetDeal godoc
//
//	@Summary	Get a deal
//	@Tags		deals
//	@Produce	json
//	@Param		id	path		int	true	"deal id"
//	@Success	200	{object}	model.Deal
//	@Router		/api/v1/deals/{id} [get]
func GetDeal(svc service.DealService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := recordID(c)
		if !ok {
			return invalidID(c)
		}
		deal, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(deal)
	}
}

// CreateDeal godoc
//
//	@Summary	Create a deal
//	@Tags		deals
//	@Accept		json
//	@Produce	json
//	@Param		deal	body		model.Deal	true	"deal"
//	@Success	201		{object}	model.Deal
//	@Router		/api/v1/deals [post]
func CreateDeal(svc service.DealService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.Deal
		if err := c.BodyParser(&in); err != nil {
			return bodyError(c, err)
		}
		deal, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(deal)
	}
}

// UpdateDeal godoc
//
//	@Summary	Update deal fields
//	@Tags		deals
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"deal id"
//	@Param		changes	body		map[string]any	true	"fields to change"
//	@Success	200		{object}	model.Deal
//	@Router		/api/v1/deals/{id} [patch]
func UpdateDeal(svc service.DealService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := recordID(c)
		if !ok {
			return invalidID(c)
		}
		ch, ok := changes(c)
		if !ok {
			return invalidBody(c)
		}
		deal, err := svc.Update(c.UserContext(), id, ch)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(deal)
	}
}

// UpdateDealStage godoc
//
//	@Summary	Move a deal to another pipeline stage
//	@Tags		deals
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"deal id"
//	@Param		stage	body		stageRequest	true	"target stage"
//	@Success	200		{object}	model.Deal
//	@Router		/api/v1/deals/{id}/stage [patch]
func UpdateDealStage(svc service.DealService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := recordID(c)
		if !ok {
			return invalidID(c)
		}
		var req stageRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
		deal, err := svc.UpdateStage(c.UserContext(), id, req.Stage)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(deal)
	}
}

// DeleteDeal godoc
//
//	@Summary	Delete a deal
//	@Tags		deals
//	@Param		id	path	int	true	"deal id"
//	@Success	204
//	@Router		/api/v1/deals/{id} [delete]
func DeleteDeal(svc service.DealService) fiber.Handler {
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

// DealPipeline godoc
//
//	@Summary	Deal count and value per pipeline stage
//	@Tags		deals
//	@Produce	json
//	@Success	200	{object}	model.Pipeline
//	@Router		/api/v1/deals/pipeline [get]
func DealPipeline(svc service.DealService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Pipeline(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(p)
	}
}
