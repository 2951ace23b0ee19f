package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"rescuerehab/internal/utils"
)

const orgName = "Rescue and Rehab Foundation"

const layout = `{{define "layout"}}<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: linear-gradient(135deg, #0d9488, #10b981); color: white; padding: 20px; text-align: center; border-radius: 10px 10px 0 0;">
    <h1 style="margin: 0; font-size: 24px;">{{.Title}}</h1>
  </div>
  <div style="background: #f8fafc; padding: 30px; border-radius: 0 0 10px 10px;">
    {{template "body" .}}
    <div style="text-align: center; margin-top: 30px;">
      <p style="color: #6b7280; font-size: 14px;">{{.Org}}<br>Navsari, Gujarat, India</p>
    </div>
  </div>
</div>{{end}}`

const card = `style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;"`

var (
	donationNotificationTmpl = mustTemplate(`{{define "body"}}
    <h2 style="color: #1f2937; margin-top: 0;">Donation Details</h2>
    <div ` + card + `>
      <p><strong>Donor Name:</strong> {{.Data.DonorName}}</p>
      <p><strong>Donor Email:</strong> {{if .Data.DonorEmail}}{{.Data.DonorEmail}}{{else}}not provided{{end}}</p>
      {{if .Data.DonorPhone}}<p><strong>Donor Phone:</strong> {{.Data.DonorPhone}}</p>{{end}}
      <p><strong>Amount:</strong> {{inr .Data.Amount}}</p>
      <p><strong>Payment ID:</strong> {{.Data.PaymentID}}</p>
      <p><strong>Order ID:</strong> {{.Data.OrderID}}</p>
      <p><strong>Date:</strong> {{stamp .Data.Date}}</p>
    </div>{{end}}`)

	donationReceiptTmpl = mustTemplate(`{{define "body"}}
    <p style="color: #1f2937; font-size: 16px;">Dear {{.Data.DonorName}},</p>
    <p style="color: #4b5563; line-height: 1.6;">
      Thank you for your generous donation of <strong>{{inr .Data.Amount}}</strong> to the {{.Org}}.
      Your contribution will directly help us rescue, rehabilitate and find loving homes for animals in need.
    </p>
    <div ` + card + `>
      <h3 style="color: #1f2937; margin-top: 0;">Donation Receipt</h3>
      <p><strong>Amount:</strong> {{inr .Data.Amount}}</p>
      <p><strong>Payment ID:</strong> {{.Data.PaymentID}}</p>
      <p><strong>Date:</strong> {{stamp .Data.Date}}</p>
      <p><strong>Organization:</strong> {{.Org}}</p>
    </div>{{end}}`)

	contactNotificationTmpl = mustTemplate(`{{define "body"}}
    <h2 style="color: #1f2937; margin-top: 0;">Contact Details</h2>
    <div ` + card + `>
      <p><strong>Name:</strong> {{.Data.Name}}</p>
      <p><strong>Email:</strong> {{.Data.Email}}</p>
      {{with .Data.Phone}}<p><strong>Phone:</strong> {{.}}</p>{{end}}
      <p><strong>Subject:</strong> {{.Data.Subject}}</p>
      <p><strong>Date:</strong> {{stamp .Data.CreatedAt}}</p>
    </div>
    <div ` + card + `>
      <h3 style="color: #1f2937; margin-top: 0;">Message</h3>
      <p style="white-space: pre-wrap;">{{.Data.Message}}</p>
    </div>{{end}}`)

	volunteerNotificationTmpl = mustTemplate(`{{define "body"}}
    <h2 style="color: #1f2937; margin-top: 0;">Volunteer Details</h2>
    <div ` + card + `>
      <p><strong>Name:</strong> {{.Data.FirstName}} {{.Data.LastName}}</p>
      <p><strong>Email:</strong> {{.Data.Email}}</p>
      {{with .Data.Phone}}<p><strong>Phone:</strong> {{.}}</p>{{end}}
      <p><strong>City:</strong> {{.Data.City}}</p>
      <p><strong>Date:</strong> {{stamp .Data.CreatedAt}}</p>
    </div>
    {{with .Data.Message}}<div ` + card + `>
      <h3 style="color: #1f2937; margin-top: 0;">Message</h3>
      <p style="white-space: pre-wrap;">{{.}}</p>
    </div>{{end}}{{end}}`)

	testTmpl = mustTemplate(`{{define "body"}}
    <p style="color: #1f2937; font-size: 16px;">Hello! This is a test email from the {{.Org}} backend.</p>
    <p style="color: #4b5563; line-height: 1.6;">
      If you received this, the {{.Data.Transport}} transport is configured. Notifications for donations,
      contact form submissions and volunteer applications will arrive here.
    </p>
    <p style="color: #6b7280; font-size: 14px;">Test sent on: {{stamp .Data.SentAt}}</p>{{end}}`)
)

func mustTemplate(body string) *template.Template {
	t := template.Must(template.New("email").Funcs(template.FuncMap{
		"inr":   utils.FormatINR,
		"stamp": stamp,
	}).Parse(layout))
	return template.Must(t.Parse(body))
}

func stamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.In(utils.IST).Format("02 Jan 2006, 03:04 PM IST")
}

type page struct {
	Title string
	Org   string
	Data  any
}

func render(t *template.Template, title string, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page{Title: title, Org: orgName, Data: data}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// DonationMail is the data shared by the operator notification and donor receipt.
type DonationMail struct {
	DonorName  string
	DonorEmail string
	DonorPhone string
	Amount     float64
	PaymentID  string
	OrderID    string
	Date       time.Time
}

func DonationNotification(to string, d DonationMail) (Message, error) {
	html, err := render(donationNotificationTmpl, "New Donation Received!", d)
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      to,
		Subject: fmt.Sprintf("New Donation Received - %s", utils.FormatINR(d.Amount)),
		HTML:    html,
	}, nil
}

func DonationReceipt(d DonationMail) (Message, error) {
	html, err := render(donationReceiptTmpl, "Thank You for Your Donation!", d)
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      d.DonorEmail,
		ToName:  d.DonorName,
		Subject: "Thank you for your donation to " + orgName,
		HTML:    html,
		Text: fmt.Sprintf("Dear %s,\n\nThank you for your donation of %s.\nPayment ID: %s\n\n%s",
			d.DonorName, utils.FormatINR(d.Amount), d.PaymentID, orgName),
	}, nil
}

// ContactMail and VolunteerMail use plain strings so empty optional fields are skipped by {{with}}.
type ContactMail struct {
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

func ContactNotification(to string, c ContactMail) (Message, error) {
	html, err := render(contactNotificationTmpl, "New Contact Form Submission", c)
	if err != nil {
		return Message{}, err
	}
	return Message{To: to, Subject: "New Contact Form Submission: " + c.Subject, HTML: html}, nil
}

type VolunteerMail struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	City      string
	Message   string
	CreatedAt time.Time
}

func VolunteerNotification(to string, v VolunteerMail) (Message, error) {
	html, err := render(volunteerNotificationTmpl, "New Volunteer Application", v)
	if err != nil {
		return Message{}, err
	}
	return Message{To: to, Subject: fmt.Sprintf("New Volunteer Application: %s %s", v.FirstName, v.LastName), HTML: html}, nil
}

func TestMessage(to, transport string, sentAt time.Time) (Message, error) {
	html, err := render(testTmpl, "Email Test Successful!", struct {
		Transport string
		SentAt    time.Time
	}{transport, sentAt})
	if err != nil {
		return Message{}, err
	}
	return Message{To: to, Subject: "Test Email from " + orgName, HTML: html}, nil
}
