package services

import (
	"context"
	"fmt"
	"log/slog"

	appErrors "github.com/auraderm/storefront/internal/errors"
	repository "github.com/auraderm/storefront/internal/repositories"
	"github.com/auraderm/storefront/pkg/sendgrid"
)

const welcomeSubject = "¡Bienvenida al Club AuraDerm! 🌸"

// NewsletterService records signups from the "Únete al Club" form.
// Subscribing twice is fine and silent; the welcome email only goes
// out on a brand new signup, and a delivery failure never fails the
// subscription itself.
type NewsletterService struct {
	repo  repository.SubscriberRepository
	email sendgrid.EmailService
}

func NewNewsletterService(repo repository.SubscriberRepository, email sendgrid.EmailService) *NewsletterService {
	return &NewsletterService{repo: repo, email: email}
}

func (s *NewsletterService) Subscribe(ctx context.Context, email string) error {
	created, err := s.repo.Add(ctx, email)
	if err != nil {
		return appErrors.DatabaseError("Failed to save subscription").WithError(err)
	}

	if !created {
		return nil
	}

	plain := "Gracias por unirte al Club AuraDerm. Recibirás tips de cuidado de la piel y ofertas exclusivas."
	html := fmt.Sprintf("<p>%s</p>", plain)

	if err := s.email.Send(email, welcomeSubject, plain, html); err != nil {
		slog.WarnContext(ctx, "❌ Failed to send welcome email",
			slog.String("email", email),
			slog.String("error", err.Error()))
	}

	return nil
}
