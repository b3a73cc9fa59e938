package handler

import (
	"github.com/gofiber/fiber/v2"

	"crmapi/internal/model"
	"crmapi/internal/service"
)

// ListSalesReps godoc
//
//	@Summary	List sales reps
//	@Tags		sales-reps
//	@Produce	json
//	@Success	200	{array}	model.SalesRep
//	@Router		/api/v1/sales-reps [get]
func ListSalesReps(svc service.SalesRepService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reps, err := svc.List(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(reps)
	}
}

// GetSalesRep godoc
//
//	@Summary	Get a sales rep
//	@Tags		sales-reps
//	@Produce	json
//	@Param		id	path		int	true	"sales rep id"
//	@Success	200	{object}	model.SalesRep
//	@Router		/api/v1/sales-reps/{id} [get]
func GetSalesRep(svc service.SalesRepService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := recordID(c)
		if !ok {
			return invalidID(c)
		}
		rep, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(rep)
	}
}

// CreateSalesRep godoc
//
//	@Summary	Create a sales rep
//	@Tags		sales-reps
//	@Accept		json
//	@Produce	json
//	@Param		rep	body		model.SalesRep	true	"sales rep"
//	@Success	201	{object}	model.SalesRep
//	@Router		/api/v1/sales-reps [post]
func CreateSalesRep(svc service.SalesRepService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.SalesRep
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		rep, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rep)
	}
}

// UpdateSalesRep godoc
//
//	@Summary	Update sales rep fields
//	@Tags		sales-reps
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"sales rep id"
//	@Param		changes	body		map[string]any	true	"fields to change"
//	@Success	200		{object}	model.SalesRep
//	@Router		/api/v1/sales-reps/{id} [patch]
func UpdateSalesRep(svc service.SalesRepService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := recordID(c)
		if !ok {
			return invalidID(c)
		}
		ch, ok := changes(c)
		if !ok {
			return invalidBody(c)
		}
		rep, err := svc.Update(c.UserContext(), id, ch)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(rep)
	}
}

// DeleteSalesRep godoc
//
//	@Summary	Delete a sales rep
//	@Tags		sales-reps
//	@Param		id	path	int	true	"sales rep id"
//	@Success	204
//	@Router		/api/v1/sales-reps/{id} [delete]
func DeleteSalesRep(svc service.SalesRepService) fiber.Handler {
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

// Leaderboard godoc
//
//	@Summary	Top sales reps by a metric
//	@Tags		sales-reps
//	@Produce	json
//	@Param		metric	query	string	false	"revenue, deals, meetings, contacted or conversion"
//	@Param		limit	query	int		false	"entries to return (default 5)"
//	@Success	200		{array}	model.LeaderboardEntry
//	@Router		/api/v1/sales-reps/leaderboard [get]
func Leaderboard(svc service.SalesRepService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := queryInt(c, "limit", 0)
		if err != nil {
			return invalidQuery(c, "limit")
		}
		board, err := svc.Leaderboard(c.UserContext(), c.Query("metric", model.MetricRevenue), limit)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(board)
	}
}
