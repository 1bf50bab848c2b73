package service

import (
	"github.com/FDead21/afc-web/internal/repositories"
	"github.com/FDead21/afc-web/models"
	"github.com/FDead21/afc-web/pkg/logger"
	"github.com/FDead21/afc-web/pkg/revalidate"
)

type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type MessageServiceInterface interface {
	SubmitContactForm(form ContactForm) Result
	ListMessages(session *models.Session) ([]models.Message, error)
}

// MessageService accepts public contact form submissions and exposes
// the inbox to admin.
type MessageService struct {
	messageRepo repositories.MessageRepositoryInterface
	pages       *revalidate.Registry
	logger      *logger.Logger
}

func NewMessageService(messageRepo repositories.MessageRepositoryInterface, pages *revalidate.Registry, logger *logger.Logger) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		pages:       pages,
		logger:      logger.WithComponent("message_service"),
	}
}

// SubmitContactForm stores a contact message. All three fields are
// required; the email address is not validated beyond presence.
func (s *MessageService) SubmitContactForm(form ContactForm) Result {
	if form.Name == "" || form.Email == "" || form.Message == "" {
		return errorResult("Please fill out all fields.")
	}

	_, err := s.messageRepo.Create(&models.Message{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	})
	if err != nil {
		s.logger.Warn("Submit contact form failed", "error", err)
		return errorResult("Submission failed: " + err.Error())
	}

	s.pages.Invalidate("/contact")
	return successResult("Thank you for your message! We will get back to you soon.")
}

// ListMessages returns the inbox newest first
func (s *MessageService) ListMessages(session *models.Session) ([]models.Message, error) {
	if session == nil {
		return nil, ErrSessionRequired
	}
	return s.messageRepo.GetAll()
}
