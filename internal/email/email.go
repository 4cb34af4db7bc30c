package email

import (
	"context"
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/tesseract-club/arena/internal/arena_errors"
	"gopkg.in/gomail.v2"
)

type EmailPurpose string
type EmailBodyType string

const (
	KeyEmailSender                            = "SENDER_EMAIL"
	KeyEmailSenderPassword                    = "SENDER_EMAIL_PASSWORD"
	KeyEmailSMTPServer                        = "smtp.gmail.com"
	KeyEmailSMTPPort                          = 587
	KeyEmailFrom                              = "From"
	KeyEmailTo                                = "To"
	KeyEmailSubject                           = "Subject"
	KeyEmailBodyPlain           EmailBodyType = "text/plain"
	PurposeEmailSignUp          EmailPurpose  = "sign_up"
	PurposeEmailContestJoined   EmailPurpose  = "contest_joined"
	defaultEmailChannelCapacity               = 100
)

type EmailRequest struct {
	To       []string
	Subject  string
	Body     string
	BodyType EmailBodyType
	Purpose  EmailPurpose
}

type emailJob struct {
	EmailRequest
	from string
}

var emailChan = make(chan emailJob, defaultEmailChannelCapacity)

// StartEmailWorkers launches count goroutines draining the email channel.
// Sends are best effort, a failed delivery is logged and dropped.
func StartEmailWorkers(count int) {
	senderPassword := os.Getenv(KeyEmailSenderPassword)
	sender := os.Getenv(KeyEmailSender)
	if sender == "" || senderPassword == "" {
		log.Warn("sender email not configured, emails will not be delivered")
	}

	dialer := gomail.NewDialer(
		KeyEmailSMTPServer,
		KeyEmailSMTPPort,
		sender,
		senderPassword,
	)

	for i := range count {
		go emailWorker(i+1, dialer)
	}
	log.Infof("started %d email workers", count)
}

func emailWorker(id int, dialer *gomail.Dialer) {
	workerLogger := log.WithField("email_worker", id)
	for job := range emailChan {
		message := gomail.NewMessage()
		message.SetHeader(KeyEmailFrom, job.from)
		message.SetHeader(KeyEmailTo, job.To...)
		message.SetHeader(KeyEmailSubject, job.Subject)
		message.SetBody(string(job.BodyType), job.Body)

		if err := dialer.DialAndSend(message); err != nil {
			workerLogger.Errorf(
				"failed to send %v mail to %v, %v",
				job.Purpose, job.To, err,
			)
			continue
		}
		workerLogger.Infof("sent %v mail to %v", job.Purpose, job.To)
	}
}

func NewMail(
	ctx context.Context,
	subject string,
	body string,
	bodyType EmailBodyType,
	purpose EmailPurpose,
	to ...string,
) error {
	fromMail := os.Getenv(KeyEmailSender)
	if fromMail == "" {
		log.Error("sender email is not configured")
		return arena_errors.ErrEmailServiceStopped
	}
	job := emailJob{
		from: fromMail,
		EmailRequest: EmailRequest{
			To:       to,
			Subject:  subject,
			Body:     body,
			BodyType: bodyType,
			Purpose:  purpose,
		},
	}
	// when all the workers are dead, it shouldn't block indefinetely
	select {
	case <-ctx.Done():
		log.Errorf("email job cancelled: %v", ctx.Err())
		return errors.Join(arena_errors.ErrEmailServiceStopped, ctx.Err())
	case emailChan <- job:
		return nil
	}
}
