package notify

import (
	"fmt"

	"github.com/OsherKoren/trip-assistant/internal/models"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Emailer sends feedback notification emails over SMTP using the
// self-notify pattern: the configured address is both sender and
// recipient. Sending is best-effort; failures are logged, never raised.
type Emailer struct {
	dialer *gomail.Dialer
	email  string
	logger *logrus.Logger
}

func NewEmailer(host string, port int, user, password, email string, logger *logrus.Logger) *Emailer {
	return &Emailer{
		dialer: gomail.NewDialer(host, port, user, password),
		email:  email,
		logger: logger,
	}
}

// SendFeedbackNotification emails a summary of one feedback record.
// Intended to be called in a goroutine; it does not block the response.
func (e *Emailer) SendFeedbackNotification(feedback *models.Feedback) {
	subject := fmt.Sprintf("Trip Assistant Feedback: %s", feedback.Rating)
	body := fmt.Sprintf(
		"Rating: %s\nCategory: %s\nMessage: %s\nComment: %s\nFeedback ID: %s\nTime: %s",
		feedback.Rating,
		feedback.Category,
		feedback.MessageContent,
		feedback.Comment,
		feedback.ID,
		feedback.CreatedAt.Format("2006-01-02 15:04:05"),
	)

	m := gomail.NewMessage()
	m.SetHeader("From", e.email)
	m.SetHeader("To", e.email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := e.dialer.DialAndSend(m); err != nil {
		e.logger.WithError(err).WithField("feedback_id", feedback.ID).Error("Failed to send feedback email")
		return
	}

	e.logger.WithField("feedback_id", feedback.ID).Info("Feedback email sent")
}
