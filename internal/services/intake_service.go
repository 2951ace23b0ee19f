package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rescuerehab/internal/domain"
	"rescuerehab/internal/domain/models"
	"rescuerehab/internal/mailer"
	"rescuerehab/internal/repositories"
	"rescuerehab/internal/utils"
)

type IntakeStore interface {
	CreateVolunteer(ctx context.Context, v models.VolunteerApplication) (int64, error)
	CreateContact(ctx context.Context, c models.ContactSubmission) (int64, error)
}

// IntakeService stores public form submissions and notifies the operator inbox.
// The notification is best effort and never fails the submission.
type IntakeService struct {
	Store         IntakeStore
	Mailer        mailer.Mailer
	OperatorEmail string
	RequestID     string
	Now           func() time.Time
}

func (s IntakeService) SubmitVolunteer(ctx context.Context, v models.VolunteerApplication) (int64, error) {
	v.FirstName = utils.NormalizeSpace(v.FirstName)
	v.LastName = utils.NormalizeSpace(v.LastName)
	v.Email = strings.TrimSpace(v.Email)
	v.City = utils.NormalizeSpace(v.City)
	if v.FirstName == "" || v.LastName == "" || v.Email == "" || v.City == "" {
		return 0, domain.ValidationError{Msg: "First name, last name, email, and city are required"}
	}

	id, err := s.store().CreateVolunteer(ctx, v)
	if err != nil {
		utils.LogError(s.RequestID, "volunteer", "create", err)
		return 0, domain.InternalError{Msg: "Failed to submit application", Err: err}
	}
	utils.LogEvent(s.RequestID, "volunteer", "create", fmt.Sprintf("id=%d city=%s", id, v.City))

	s.notify(ctx, "volunteer", func() (mailer.Message, error) {
		return mailer.VolunteerNotification(s.OperatorEmail, mailer.VolunteerMail{
			FirstName: v.FirstName,
			LastName:  v.LastName,
			Email:     v.Email,
			Phone:     deref(v.Phone),
			City:      v.City,
			Message:   deref(v.Message),
			CreatedAt: s.now(),
		})
	})
	return id, nil
}

func (s IntakeService) SubmitContact(ctx context.Context, c models.ContactSubmission) (int64, error) {
	c.Name = utils.NormalizeSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Subject = utils.NormalizeSpace(c.Subject)
	c.Message = strings.TrimSpace(c.Message)
	if c.Name == "" || c.Email == "" || c.Subject == "" || c.Message == "" {
		return 0, domain.ValidationError{Msg: "Name, email, subject, and message are required"}
	}

	id, err := s.store().CreateContact(ctx, c)
	if err != nil {
		utils.LogError(s.RequestID, "contact", "create", err)
		return 0, domain.InternalError{Msg: "Failed to submit message", Err: err}
	}
	utils.LogEvent(s.RequestID, "contact", "create", fmt.Sprintf("id=%d", id))

	s.notify(ctx, "contact", func() (mailer.Message, error) {
		return mailer.ContactNotification(s.OperatorEmail, mailer.ContactMail{
			Name:      c.Name,
			Email:     c.Email,
			Phone:     deref(c.Phone),
			Subject:   c.Subject,
			Message:   c.Message,
			CreatedAt: s.now(),
		})
	})
	return id, nil
}

func (s IntakeService) notify(ctx context.Context, module string, build func() (mailer.Message, error)) {
	if s.Mailer == nil || s.OperatorEmail == "" {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			utils.LogError(s.RequestID, module, "notify", fmt.Errorf("panic: %v", r))
		}
	}()
	msg, err := build()
	if err == nil {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 15*time.Second)
		defer cancel()
		err = s.Mailer.Send(ctx, msg)
	}
	if err != nil {
		utils.LogError(s.RequestID, module, "notify", err)
	}
}

func (s IntakeService) store() IntakeStore {
	if s.Store != nil {
		return s.Store
	}
	return repositories.IntakeRepository{}
}

func (s IntakeService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
