package handler

import (
	"github.com/gofiber/fiber/v2"

	"crmapi/internal/service"
)

// Overview godoc
//
//	@Summary	Headline CRM numbers
//	@Tags		analytics
//	@Produce	json
//	@Success	200	{object}	model.Overview
//	@Router		/api/v1/analytics/overview [get]
func Overview(svc service.AnalyticsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		o, err := svc.Overview(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(o)
	}
}

// LeadsByStatus godoc
//
//	@Summary	Lead counts per status
//	@Tags		analytics
//	@Produce	json
//	@Success	200	{array}	model.CountBucket
//	@Router		/api/v1/analytics/leads/status [get]
func LeadsByStatus(svc service.AnalyticsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		buckets, err := svc.LeadsByStatus(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(buckets)
	}
}

// LeadsByCategory godoc
//
//	@Summary	Lead counts per category
//	@Tags		analytics
//	@Produce	json
//	@Success	200	{array}	model.CountBucket
//	@Router		/api/v1/analytics/leads/category [get]
func LeadsByCategory(svc service.AnalyticsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		buckets, err := svc.LeadsByCategory(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(buckets)
	}
}

// LeadTrend godoc
//
//	@Summary	Leads created per day, oldest first
//	@Tags		analytics
//	@Produce	json
//	@Param		days	query	int	false	"trailing window in days (default 30, max 365)"
//	@Success	200		{array}	model.DayCount
//	@Router		/api/v1/analytics/leads/trend [get]
func LeadTrend(svc service.AnalyticsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		days, err := queryInt(c, "days", 0)
		if err != nil {
			return invalidQuery(c, "days")
		}
		trend, err := svc.LeadTrend(c.UserContext(), days)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(trend)
	}
}
