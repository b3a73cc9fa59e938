package handler

import (
	"github.com/gofiber/fiber/v2"

	"crmapi/internal/service"
)

type activityRequest struct {
	WebsiteURL string `json:"websiteUrl"`
	AddedBy    string `json:"addedBy"`
}

// RecordWebsiteActivity godoc
//
//	@Summary	Record that a website was added
//	@Tags		website-activity
//	@Accept		json
//	@Produce	json
//	@Param		activity	body		activityRequest	true	"website and sales rep"
//	@Success	201			{object}	model.WebsiteActivity
//	@Router		/api/v1/website-activity [post]
func RecordWebsiteActivity(svc service.WebsiteActivityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req activityRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
		a, err := svc.Record(c.UserContext(), req.WebsiteURL, req.AddedBy)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(a)
	}
}

// WebsiteHistory godoc
//
//	@Summary	Activity records of one website, oldest first
//	@Tags		website-activity
//	@Produce	json
//	@Param		url	query	string	true	"website url"
//	@Success	200	{array}	model.WebsiteActivity
//	@Router		/api/v1/website-activity [get]
func WebsiteHistory(svc service.WebsiteActivityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		history, err := svc.History(c.UserContext(), c.Query("url"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(history)
	}
}

// CheckWebsiteFreshness godoc
//
//	@Summary	Whether a website was first seen on the given day
//	@Tags		website-activity
//	@Produce	json
//	@Param		url		query		string	true	"website url"
//	@Param		date	query		string	false	"YYYY-MM-DD, default today"
//	@Success	200		{object}	model.Freshness
//	@Router		/api/v1/website-activity/check [get]
func CheckWebsiteFreshness(svc service.WebsiteActivityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := svc.IsFresh(c.UserContext(), c.Query("url"), c.Query("date"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(f)
	}
}

// FreshWebsites godoc
//
//	@Summary	Websites first seen on the given day
//	@Tags		website-activity
//	@Produce	json
//	@Param		date	query	string	false	"YYYY-MM-DD, default today"
//	@Success	200		{array}	string
//	@Router		/api/v1/website-activity/fresh [get]
func FreshWebsites(svc service.WebsiteActivityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		urls, err := svc.FreshURLs(c.UserContext(), c.Query("date"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(urls)
	}
}
