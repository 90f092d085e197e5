package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/mail"
	"sort"
	"strings"

	"tenant-storefront/internal/component"
	"tenant-storefront/internal/dto"
	"tenant-storefront/internal/model"
	"tenant-storefront/internal/repository"
)

type ContactService interface {
	// ContactPage shows the shop's contact card, or the standalone form on the root site.
	ContactPage(ctx context.Context, slug, userID string) (*dto.ContactPage, error)
	Submit(ctx context.Context, slug, userID string, form dto.ContactForm) (*dto.ContactPage, error)
}

type contactServiceImpl struct {
	assembler
	contactRepo repository.ContactRepository
}

func NewContactService(
	businessRepo repository.BusinessRepository,
	contactRepo repository.ContactRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) ContactService {
	return &contactServiceImpl{
		assembler: assembler{
			businessRepo: businessRepo,
			userRepo:     userRepo,
			logger:       logger,
		},
		contactRepo: contactRepo,
	}
}

func (s *contactServiceImpl) ContactPage(ctx context.Context, slug, userID string) (*dto.ContactPage, error) {
	crumbs := []dto.Breadcrumb{homeCrumb(), {Name: "Contact", URL: "/contact"}}
	if slug == "" {
		return &dto.ContactPage{Page: s.page(ctx, nil, userID, crumbs...)}, nil
	}

	tp, err := s.loadTenant(ctx, slug)
	if err != nil {
		return nil, err
	}

	info := contactInfo(tp.business)
	return &dto.ContactPage{
		Page: s.page(ctx, tp, userID, crumbs...),
		Info: &info,
	}, nil
}

func (s *contactServiceImpl) Submit(ctx context.Context, slug, userID string, form dto.ContactForm) (*dto.ContactPage, error) {
	page, err := s.ContactPage(ctx, slug, userID)
	if err != nil {
		return nil, err
	}

	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Subject = strings.TrimSpace(form.Subject)
	form.Message = strings.TrimSpace(form.Message)

	if errs := validateContact(form); len(errs) > 0 {
		page.Form = form
		page.Errors = errs
		return page, nil
	}

	submission := &model.ContactSubmission{
		Name:    form.Name,
		Email:   form.Email,
		Subject: form.Subject,
		Message: form.Message,
	}
	if page.Business != nil {
		submission.BusinessID = page.Business.ID
	}

	if err := s.contactRepo.Create(ctx, submission); err != nil {
		s.logger.ErrorContext(ctx, "could not store contact message", "tenant", slug, "error", err)
		page.Form = form
		page.Errors = []string{"Unable to send your message. Please try again."}
		return page, nil
	}

	page.Sent = true
	return page, nil
}

func validateContact(form dto.ContactForm) []string {
	var errs []string
	if form.Name == "" {
		errs = append(errs, "Name is required")
	}
	if form.Email == "" {
		errs = append(errs, "Email is required")
	} else if _, err := mail.ParseAddress(form.Email); err != nil {
		errs = append(errs, "Please enter a valid email address")
	}
	if form.Message == "" {
		errs = append(errs, "Message is required")
	}
	return errs
}

func contactInfo(b *model.Business) dto.ContactInfo {
	name := b.BusinessName
	if name == "" {
		name = "Contact"
	}
	return dto.ContactInfo{
		BusinessName: name,
		Description:  b.BusinessDescription,
		Phone:        b.BusinessPhoneNumber,
		Address:      b.BusinessAddress,
		Website:      b.WebsiteURL,
		Email:        b.Email,
		Latitude:     b.Latitude,
		Longitude:    b.Longitude,
		OpeningHours: openingHours(b.OpeningHours),
		LogoURL:      b.LogoURL,
		PlaceName:    b.PlaceName,
	}
}

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// openingHours accepts either {"monday": "9-5", ...} or [{"day": ..., "hours": ...}]. Anything
// unparseable yields no hours.
func openingHours(raw string) []dto.OpeningHour {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil
	}

	var out []dto.OpeningHour
	switch v := decoded.(type) {
	case map[string]any:
		rank := func(day string) int {
			for i, d := range weekdays {
				if strings.EqualFold(d, day) {
					return i
				}
			}
			return len(weekdays)
		}
		days := make([]string, 0, len(v))
		for day := range v {
			days = append(days, day)
		}
		sort.SliceStable(days, func(i, j int) bool {
			ri, rj := rank(days[i]), rank(days[j])
			if ri != rj {
				return ri < rj
			}
			return days[i] < days[j]
		})
		for _, day := range days {
			out = append(out, dto.OpeningHour{Day: titleCase(day), Hours: hoursText(v[day])})
		}
	case []any:
		for _, item := range v {
			rec, ok := item.(map[string]any)
			if !ok {
				continue
			}
			out = append(out, dto.OpeningHour{
				Day:   titleCase(component.Str(rec, "day", "name")),
				Hours: hoursText(rec),
			})
		}
	}
	return out
}

func hoursText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		if h := component.Str(t, "hours"); h != "" {
			return h
		}
		if component.Bool(t, "closed") {
			return "Closed"
		}
		open, closing := component.Str(t, "open", "opens"), component.Str(t, "close", "closes")
		if open != "" || closing != "" {
			return open + " - " + closing
		}
	}
	return ""
}
