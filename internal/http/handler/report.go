package handler

import (
	"path"

	"github.com/gofiber/fiber/v2"

	"crmapi/internal/service"
)

type generateReportRequest struct {
	Kind string `json:"kind"`
	Days int    `json:"days"`
}

// GenerateReport godoc
//
//	@Summary	Render a report to CSV and archive it
//	@Tags		reports
//	@Accept		json
//	@Produce	json
//	@Param		request	body		generateReportRequest	true	"report kind and window"
//	@Success	201		{object}	model.Report
//	@Failure	400		{object}	errorPayload
//	@Router		/api/v1/reports [post]
func GenerateReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req generateReportRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
		r, err := svc.Generate(c.UserContext(), req.Kind, req.Days)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(r)
	}
}

// ListReports godoc
//
//	@Summary	List archived reports, newest first
//	@Tags		reports
//	@Produce	json
//	@Param		kind	query		string	false	"report kind"
//	@Param		limit	query		int		false	"page size"
//	@Param		offset	query		int		false	"page offset"
//	@Success	200		{object}	service.ReportListResult
//	@Router		/api/v1/reports [get]
func ListReports(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, bad := paging(c)
		if bad != "" {
			return invalidQuery(c, bad)
		}
		res, err := svc.List(c.UserContext(), c.Query("kind"), limit, offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// GetReport godoc
//
//	@Summary	Get report metadata
//	@Tags		reports
//	@Produce	json
//	@Param		id	path		string	true	"report id (uuid)"
//	@Success	200	{object}	model.Report
//	@Router		/api/v1/reports/{id} [get]
func GetReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := reportID(c)
		if !ok {
			return invalidID(c)
		}
		r, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(r)
	}
}

// DownloadReport godoc
//
//	@Summary	Download the report CSV
//	@Tags		reports
//	@Produce	text/csv
//	@Param		id	path	string	true	"report id (uuid)"
//	@Success	200	{file}	file
//	@Router		/api/v1/reports/{id}/download [get]
func DownloadReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := reportID(c)
		if !ok {
			return invalidID(c)
		}
		body, r, err := svc.Download(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		c.Attachment(path.Base(r.StoragePath))
		c.Set(fiber.HeaderContentType, r.ContentType)
		// fasthttp closes the stream once the body is written.
		return c.SendStream(body, int(r.Size))
	}
}

// ReportURL godoc
//
//	@Summary	Presigned download URL for a report
//	@Tags		reports
//	@Produce	json
//	@Param		id	path		string	true	"report id (uuid)"
//	@Success	200	{object}	map[string]string
//	@Router		/api/v1/reports/{id}/url [get]
func ReportURL(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := reportID(c)
		if !ok {
			return invalidID(c)
		}
		u, err := svc.DownloadURL(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"url": u})
	}
}

// DeleteReport godoc
//
//	@Summary	Delete a report and its CSV
//	@Tags		reports
//	@Param		id	path	string	true	"report id (uuid)"
//	@Success	204
//	@Router		/api/v1/reports/{id} [delete]
func DeleteReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := reportID(c)
		if !ok {
			return invalidID(c)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
