package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"crmapi/internal/model"
)

// recordID reads the :id route param. Record store IDs are positive integers.
func recordID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	n, err := strconv.Atoi(id)
	if err != nil || n <= 0 {
		return "", false
	}
	return id, true
}

func reportID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// queryInt reads an optional integer query parameter. Missing means def.
func queryInt(c *fiber.Ctx, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// paging reads limit and offset. bad names the first malformed parameter.
func paging(c *fiber.Ctx) (limit, offset int, bad string) {
	limit, err := queryInt(c, "limit", 0)
	if err != nil || limit < 0 {
		return 0, 0, "limit"
	}
	offset, err = queryInt(c, "offset", 0)
	if err != nil || offset < 0 {
		return 0, 0, "offset"
	}
	return limit, offset, ""
}

func invalidQuery(c *fiber.Ctx, name string) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_"+strings.ToUpper(name), "invalid "+name)
}

func invalidID(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
}

func invalidBody(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
}

// bodyError reports a create body that failed to decode. Bad dates say what was wrong with them.
func bodyError(c *fiber.Ctx, err error) error {
	if errors.Is(err, model.ErrInvalidDate) {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", err.Error())
	}
	return invalidBody(c)
}

// changes decodes a partial update body.
func changes(c *fiber.Ctx) (map[string]any, bool) {
	var m map[string]any
	if err := c.BodyParser(&m); err != nil {
		return nil, false
	}
	return m, true
}
