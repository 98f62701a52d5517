package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"hospital-service/api"
	"hospital-service/internal/models"
	"hospital-service/pkg/response"
)

func (s *Service) CreateContactMessage(ctx context.Context, req *api.ContactRequest) (*api.ContactMessageResponse, error) {
	const op = "service.CreateContactMessage"

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("%s: name, email, subject and message are required: %w", op, response.ErrValidation)
	}

	msg := &models.ContactMessage{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	id, err := s.store.CreateContactMessage(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetContactMessage(ctx, id)
}

func (s *Service) GetContactMessage(ctx context.Context, id string) (*api.ContactMessageResponse, error) {
	const op = "service.GetContactMessage"

	msg, err := s.store.GetContactMessage(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return contactResponse(msg), nil
}

func (s *Service) ListContactMessages(ctx context.Context, unreadOnly bool) ([]*api.ContactMessageResponse, error) {
	const op = "service.ListContactMessages"

	msgs, err := s.store.ListContactMessages(ctx, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]*api.ContactMessageResponse, 0, len(msgs))
	for _, msg := range msgs {
		result = append(result, contactResponse(msg))
	}

	return result, nil
}

func (s *Service) MarkContactMessageRead(ctx context.Context, id string) (*api.ContactMessageResponse, error) {
	const op = "service.MarkContactMessageRead"

	if err := s.store.MarkContactMessageRead(ctx, id); err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetContactMessage(ctx, id)
}

func contactResponse(m *models.ContactMessage) *api.ContactMessageResponse {
	return &api.ContactMessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}
}
