package handler

import (
	"github.com/gofiber/fiber/v2"

	"crmapi/internal/model"
	"crmapi/internal/service"
)

// ListContacts godoc
//
//	@Summary	List contacts
//	@Tags		contacts
//	@Produce	json
//	@Param		search	query		string	false	"name contains"
//	@Param		leadId	query		string	false	"linked lead"
//	@Param		limit	query		int		false	"page size"
//	@Param		offset	query		int		false	"page offset"
//	@Success	200		{object}	service.ListResult[model.Contact]
//	@Router		/api/v1/contacts [get]
func ListContacts(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, bad := paging(c)
		if bad != "" {
			return invalidQuery(c, bad)
		}
		res, err := svc.List(c.UserContext(), model.ContactFilter{
			Search: c.Query("search"),
			LeadID: c.Query("leadId"),
			Limit:  limit,
			Offset: offset,
		})
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// GetContact godoc
//
//	@Summary	Get a contact
//	@Tags		contacts
//	@Produce	json
//	@Param		id	path		int	true	"contact id"
//	@Success	200	{object}	model.Contact
//	@Router		/api/v1/contacts/{id} [get]
func GetContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := recordID(c)
		if !ok {
			return invalidID(c)
		}
		contact, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(contact)
	}
}

// CreateContact godoc
//
//	@Summary	Create a contact
//	@Tags		contacts
//	@Accept		json
//	@Produce	json
//	@Param		contact	body		model.Contact	true	"contact"
//	@Success	201		{object}	model.Contact
//	@Router		/api/v1/contacts [post]
func CreateContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.Contact
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		contact, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(contact)
	}
}

// UpdateContact godoc
//
//	@Summary	Update contact fields
//	@Tags		contacts
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"contact id"
//	@Param		changes	body		map[string]any	true	"fields to change"
//	@Success	200		{object}	model.Contact
//	@Router		/api/v1/contacts/{id} [patch]
func UpdateContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := recordID(c)
		if !ok {
			return invalidID(c)
		}
		ch, ok := changes(c)
		if !ok {
			return invalidBody(c)
		}
		contact, err := svc.Update(c.UserContext(), id, ch)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(contact)
	}
}

// DeleteContact godoc
//
//	@Summary	Delete a contact
//	@Tags		contacts
//	@Param		id	path	int	true	"contact id"
//	@Success	204
//	@Router		/api/v1/contacts/{id} [delete]
func DeleteContact(svc service.ContactService) fiber.Handler {
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
