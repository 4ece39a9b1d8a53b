package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"gopkg.in/gomail.v2"

	"jobboard-backend/internal/config"
	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/logger"
)

const defaultSendGridHost = "https://api.sendgrid.com"

// message is a provider-neutral email body
type message struct {
	Subject string
	Plain   string
	HTML    string
}

var statusHeadlines = map[domain.ApplicationStatus]string{
	domain.ApplicationStatusContacted:    "The employer would like to get in touch",
	domain.ApplicationStatusInterviewing: "You have been invited to interview",
	domain.ApplicationStatusOffered:      "You have received an offer",
	domain.ApplicationStatusRejected:     "An update on your application",
}

func statusChangeMessage(name, jobTitle, company string, status domain.ApplicationStatus, baseURL string) message {
	headline, ok := statusHeadlines[status]
	if !ok {
		headline = "Your application status changed"
	}
	subject := fmt.Sprintf("%s: %s at %s", headline, jobTitle, company)

	plain := fmt.Sprintf("Hello %s,\n\nYour application for %s at %s is now: %s.", name, jobTitle, company, status)
	if baseURL != "" {
		plain += fmt.Sprintf("\n\nView your applications: %s/applications", strings.TrimRight(baseURL, "/"))
	}
	plain += "\n\nBest regards,\nThe Job Board Team"

	htmlBody := fmt.Sprintf("<p>Hello %s,</p><p>Your application for <strong>%s</strong> at %s is now: <strong>%s</strong>.</p>",
		html.EscapeString(name), html.EscapeString(jobTitle), html.EscapeString(company), html.EscapeString(string(status)))

	return message{Subject: subject, Plain: plain, HTML: htmlBody}
}

func savedSearchAlertMessage(name, searchName string, jobs []domain.Job) message {
	subject := fmt.Sprintf("%d new jobs for \"%s\"", len(jobs), searchName)
	if len(jobs) == 1 {
		subject = fmt.Sprintf("1 new job for \"%s\"", searchName)
	}

	var plain, htmlBody strings.Builder
	fmt.Fprintf(&plain, "Hello %s,\n\nNew jobs matching your saved search \"%s\":\n\n", name, searchName)
	fmt.Fprintf(&htmlBody, "<p>Hello %s,</p><p>New jobs matching your saved search <strong>%s</strong>:</p><ul>",
		html.EscapeString(name), html.EscapeString(searchName))
	for _, j := range jobs {
		location := j.Location
		if j.Remote {
			location = strings.TrimSpace(location + " (remote)")
		}
		fmt.Fprintf(&plain, "- %s at %s, %s\n", j.Title, j.Company, location)
		fmt.Fprintf(&htmlBody, "<li>%s at %s, %s</li>", html.EscapeString(j.Title), html.EscapeString(j.Company), html.EscapeString(location))
	}
	plain.WriteString("\nBest regards,\nThe Job Board Team")
	htmlBody.WriteString("</ul>")

	return message{Subject: subject, Plain: plain.String(), HTML: htmlBody.String()}
}

// mailDialer is satisfied by *gomail.Dialer
type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpEmailService struct {
	dialer   mailDialer
	from     string
	fromName string
	baseURL  string
}

func NewSMTPEmailService(host string, port int, username, password, from, fromName, baseURL string) EmailService {
	return newSMTPEmailService(gomail.NewDialer(host, port, username, password), from, fromName, baseURL)
}

func newSMTPEmailService(dialer mailDialer, from, fromName, baseURL string) *smtpEmailService {
	return &smtpEmailService{dialer: dialer, from: from, fromName: fromName, baseURL: baseURL}
}

func (s *smtpEmailService) send(to string, msg message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Plain)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}

	logger.ExternalServiceCall("smtp", "DialAndSend", "to", to)
	err := s.dialer.DialAndSend(m)
	logger.ExternalServiceResult("smtp", "DialAndSend", err, "to", to)
	if err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}

func (s *smtpEmailService) SendStatusChangeNotification(ctx context.Context, email, name, jobTitle, company string, status domain.ApplicationStatus) error {
	return s.send(email, statusChangeMessage(name, jobTitle, company, status, s.baseURL))
}

func (s *smtpEmailService) SendSavedSearchAlert(ctx context.Context, email, name, searchName string, jobs []domain.Job) error {
	return s.send(email, savedSearchAlertMessage(name, searchName, jobs))
}

type sendGridEmailService struct {
	apiKey   string
	host     string
	from     string
	fromName string
	baseURL  string
}

func NewSendGridEmailService(apiKey, from, fromName, baseURL string) EmailService {
	return newSendGridEmailService(apiKey, defaultSendGridHost, from, fromName, baseURL)
}

func newSendGridEmailService(apiKey, host, from, fromName, baseURL string) *sendGridEmailService {
	return &sendGridEmailService{apiKey: apiKey, host: host, from: from, fromName: fromName, baseURL: baseURL}
}

func (s *sendGridEmailService) send(ctx context.Context, to, toName string, msg message) error {
	sgMail := mail.NewSingleEmail(mail.NewEmail(s.fromName, s.from), msg.Subject, mail.NewEmail(toName, to), msg.Plain, msg.HTML)

	request := sendgrid.GetRequest(s.apiKey, "/v3/mail/send", s.host)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(sgMail)

	logger.ExternalServiceCall("sendgrid", "mail/send", "to", to)
	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err == nil && response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	logger.ExternalServiceResult("sendgrid", "mail/send", err, "to", to)
	if err != nil {
		return fmt.Errorf("failed to send email via sendgrid: %w", err)
	}
	return nil
}

func (s *sendGridEmailService) SendStatusChangeNotification(ctx context.Context, email, name, jobTitle, company string, status domain.ApplicationStatus) error {
	return s.send(ctx, email, name, statusChangeMessage(name, jobTitle, company, status, s.baseURL))
}

func (s *sendGridEmailService) SendSavedSearchAlert(ctx context.Context, email, name, searchName string, jobs []domain.Job) error {
	return s.send(ctx, email, name, savedSearchAlertMessage(name, searchName, jobs))
}

// NewEmailServiceFromConfig picks the provider named in cfg.Email.Provider
func NewEmailServiceFromConfig(cfg *config.Config) (EmailService, error) {
	e := cfg.Email
	baseURL := cfg.Notification.AppBaseURL
	switch e.Provider {
	case "smtp":
		return NewSMTPEmailService(e.SMTP.Host, e.SMTP.Port, e.SMTP.User, e.SMTP.Password, e.From, e.FromName, baseURL), nil
	case "sendgrid":
		return NewSendGridEmailService(e.SendGrid.APIKey, e.From, e.FromName, baseURL), nil
	case "log", "":
		return NewLogEmailService(baseURL), nil
	default:
		return nil, fmt.Errorf("unsupported email provider %q: %w", e.Provider, domain.ErrInvalidInput)
	}
}

// logEmailService writes emails to the log instead of sending them. Used in development.
type logEmailService struct {
	baseURL string
}

func NewLogEmailService(baseURL string) EmailService {
	return &logEmailService{baseURL: baseURL}
}

func (s *logEmailService) SendStatusChangeNotification(ctx context.Context, email, name, jobTitle, company string, status domain.ApplicationStatus) error {
	msg := statusChangeMessage(name, jobTitle, company, status, s.baseURL)
	logger.InfoContext(ctx, "Email (log provider)", "to", email, "subject", msg.Subject)
	return nil
}

func (s *logEmailService) SendSavedSearchAlert(ctx context.Context, email, name, searchName string, jobs []domain.Job) error {
	msg := savedSearchAlertMessage(name, searchName, jobs)
	logger.InfoContext(ctx, "Email (log provider)", "to", email, "subject", msg.Subject, "jobs", len(jobs))
	return nil
}
