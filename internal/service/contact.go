package service

import (
	"context"
	"strings"

	"crmapi/internal/model"
	"crmapi/internal/recordstore"
)

const entityContact = "contact"

var contactFields = recordstore.FieldMap{
	"id":        "Id",
	"name":      "Name",
	"email":     "email_c",
	"phone":     "phone_c",
	"company":   "company_c",
	"position":  "position_c",
	"leadId":    "lead_id_c",
	"notes":     "notes_c",
	"tags":      "Tags",
	"createdAt": "CreatedOn",
	"updatedAt": "ModifiedOn",
}

type ContactService interface {
	List(ctx context.Context, f model.ContactFilter) (*ListResult[model.Contact], error)
	Get(ctx context.Context, id string) (*model.Contact, error)
	Create(ctx context.Context, in model.Contact) (*model.Contact, error)
	Update(ctx context.Context, id string, changes map[string]any) (*model.Contact, error)
	Delete(ctx context.Context, id string) error
}

type contactService struct {
	client recordstore.Client
}

func NewContactService(client recordstore.Client) ContactService {
	return &contactService{client: client}
}

func contactFromRecord(r recordstore.Record) model.Contact {
	tags := r.Strings("Tags")
	if tags == nil {
		tags = []string{}
	}
	return model.Contact{
		ID:        r.ID(),
		Name:      r.String("Name"),
		Email:     r.String("email_c"),
		Phone:     r.String("phone_c"),
		Company:   r.String("company_c"),
		Position:  r.String("position_c"),
		LeadID:    r.LookupID("lead_id_c"),
		Notes:     r.String("notes_c"),
		Tags:      tags,
		CreatedAt: r.Time("CreatedOn"),
		UpdatedAt: r.Time("ModifiedOn"),
	}
}

func contactToRecord(c model.Contact) recordstore.Record {
	rec := recordstore.Record{"Name": c.Name}
	putIf(rec, "email_c", c.Email)
	putIf(rec, "phone_c", c.Phone)
	putIf(rec, "company_c", c.Company)
	putIf(rec, "position_c", c.Position)
	putIf(rec, "notes_c", c.Notes)
	putIf(rec, "Tags", joinTags(c.Tags))
	if c.LeadID != "" {
		rec["lead_id_c"] = recordID(c.LeadID)
	}
	return rec
}

// joinTags stores tags the way the record store keeps them: one comma-separated string.
func joinTags(tags []string) string {
	clean := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			clean = append(clean, t)
		}
	}
	return strings.Join(clean, ",")
}

func (s *contactService) List(ctx context.Context, f model.ContactFilter) (*ListResult[model.Contact], error) {
	q := recordstore.Select(contactFields.Fields()...).
		Where("Name", recordstore.Contains, f.Search).
		OrderBy("Name", recordstore.Asc).
		Page(pageSize(f.Limit), f.Offset)
	if f.LeadID != "" {
		q = q.Where("lead_id_c", recordstore.EqualTo, recordID(f.LeadID))
	}

	recs, total := fetch(ctx, s.client, entityContact, q)
	items := make([]model.Contact, 0, len(recs))
	for _, r := range recs {
		items = append(items, contactFromRecord(r))
	}
	return &ListResult[model.Contact]{Items: items, Total: total}, nil
}

func (s *contactService) Get(ctx context.Context, id string) (*model.Contact, error) {
	rec, err := getOne(ctx, s.client, entityContact, id, contactFields.Fields())
	if err != nil {
		return nil, err
	}
	c := contactFromRecord(rec)
	return &c, nil
}

func (s *contactService) Create(ctx context.Context, in model.Contact) (*model.Contact, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, invalid("name", "is required")
	}
	in.Email = strings.TrimSpace(in.Email)
	if err := validateEmail("email", in.Email, false); err != nil {
		return nil, err
	}
	if err := ensureUnique(ctx, s.client, entityContact, "email_c", in.Email, ""); err != nil {
		return nil, err
	}

	stored, err := createOne(ctx, s.client, entityContact, contactToRecord(in))
	if err != nil {
		return nil, err
	}
	c := contactFromRecord(stored)
	return &c, nil
}

func (s *contactService) Update(ctx context.Context, id string, changes map[string]any) (*model.Contact, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if name, ok, err := stringChange(changes, "name"); err != nil {
		return nil, err
	} else if ok && name == "" {
		return nil, invalid("name", "must not be empty")
	}
	if email, ok, err := stringChange(changes, "email"); err != nil {
		return nil, err
	} else if ok {
		if err := validateEmail("email", email, false); err != nil {
			return nil, err
		}
		if err := ensureUnique(ctx, s.client, entityContact, "email_c", email, id); err != nil {
			return nil, err
		}
		changes["email"] = email
	}
	if leadID, ok, err := stringChange(changes, "leadId"); err != nil {
		return nil, err
	} else if ok && leadID != "" {
		changes["leadId"] = recordID(leadID)
	}
	if raw, ok := changes["tags"]; ok {
		tags, err := tagList(raw)
		if err != nil {
			return nil, err
		}
		changes["tags"] = joinTags(tags)
	}

	rec, err := translate(contactFields, changes)
	if err != nil {
		return nil, err
	}
	stored, err := updateOne(ctx, s.client, entityContact, id, rec)
	if err != nil {
		return nil, err
	}
	c := contactFromRecord(stored)
	return &c, nil
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, s.client, entityContact, id)
}

// tagList accepts tags as a JSON array or a comma-separated string.
func tagList(raw any) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return strings.Split(v, ","), nil
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, invalid("tags", "must be a list of strings")
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, invalid("tags", "must be a list of strings")
}
