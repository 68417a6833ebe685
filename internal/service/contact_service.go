package service

import (
	"context"
	"errors"
	"strings"

	"site-backend/internal/domain"
	"site-backend/internal/repository"
)

// ContactService records contact form submissions and hands back the public
// reference id.
type ContactService interface {
	Submit(ctx context.Context, name, email, message string) (string, error)
}

type contactService struct {
	messages repository.ContactRepository
}

func NewContactService(messages repository.ContactRepository) ContactService {
	return &contactService{messages: messages}
}

func (s *contactService) Submit(ctx context.Context, name, email, message string) (string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" || email == "" || message == "" {
		return "", errors.New("name, email and message are required")
	}

	msg := &domain.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if _, err := s.messages.Create(ctx, msg); err != nil {
		return "", err
	}
	return msg.Reference, nil
}
