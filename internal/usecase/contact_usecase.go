package usecase

import (
	"context"

	"inkwell/internal/domain/entity"
)

// ContactUsecase backs the contact page.
type ContactUsecase interface {
	Info(ctx context.Context) *entity.ContactInfo
	Submit(ctx context.Context, msg *entity.ContactMessage) error
}
