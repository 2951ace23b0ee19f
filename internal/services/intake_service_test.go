package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"rescuerehab/internal/domain"
	"rescuerehab/internal/domain/models"
	"rescuerehab/internal/repositories"
)

func TestSubmitVolunteer_StoresAndNotifies(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO volunteer_applications").
		WithArgs("Ravi", "Shah", "ravi@example.org", nil, "Navsari", nil).
		WillReturnResult(sqlmock.NewResult(9, 1))

	m := &fakeMailer{}
	svc := IntakeService{Store: repositories.IntakeRepository{DB: db}, Mailer: m, OperatorEmail: "ops@rescue.test"}
	id, err := svc.SubmitVolunteer(context.Background(), models.VolunteerApplication{
		FirstName: " Ravi ", LastName: "Shah", Email: "ravi@example.org", City: "Navsari",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if id != 9 {
		t.Fatalf("expected id 9, got %d", id)
	}
	if got := m.recipients(); len(got) != 1 || got[0] != "ops@rescue.test" {
		t.Fatalf("expected operator notification, got %v", got)
	}
}

func TestSubmitVolunteer_RequiredFields(t *testing.T) {
	svc := IntakeService{}
	_, err := svc.SubmitVolunteer(context.Background(), models.VolunteerApplication{FirstName: "A", Email: "a@example.org"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubmitContact_MailFailureDoesNotFail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.ExpectExec("INSERT INTO contact_submissions").WillReturnResult(sqlmock.NewResult(4, 1))

	svc := IntakeService{
		Store:         repositories.IntakeRepository{DB: db},
		Mailer:        &fakeMailer{err: errBoom},
		OperatorEmail: "ops@rescue.test",
	}
	id, err := svc.SubmitContact(context.Background(), models.ContactSubmission{
		Name: "Meera", Email: "meera@example.org", Subject: "Adoption", Message: "Is Luna available?",
	})
	if err != nil || id != 4 {
		t.Fatalf("expected id 4 without error, got %d %v", id, err)
	}
}

func TestSubmitContact_BlankFieldsAfterTrim(t *testing.T) {
	svc := IntakeService{}
	_, err := svc.SubmitContact(context.Background(), models.ContactSubmission{
		Name: "x", Email: "a@example.org", Subject: "   ", Message: "m",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
