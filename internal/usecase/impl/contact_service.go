package impl

import (
	"context"
	"log/slog"
	"maps"
	"strings"
	"time"

	"inkwell/config"
	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/domain/constants"
	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/service"
	"inkwell/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxContactMessageLen = 5000

// contactService implements the ContactUsecase interface.
type contactService struct {
	info      *entity.ContactInfo
	publisher service.EventPublisher
	validate  *validator.Validate
	logger    *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	Config    *config.Config
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		info:      buildContactInfo(params.Config),
		publisher: params.Publisher,
		validate:  validator.New(),
		logger:    params.Logger,
	}
}

// Info returns a copy of the configured contact details.
func (srv *contactService) Info(_ context.Context) *entity.ContactInfo {
	info := *srv.info
	info.Socials = maps.Clone(srv.info.Socials)

	return &info
}

// Submit validates a visitor message and hands it to the post worker for delivery.
func (srv *contactService) Submit(ctx context.Context, msg *entity.ContactMessage) error {
	if msg == nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("message is required"))
	}

	cleaned := &entity.ContactMessage{
		Name:    strings.TrimSpace(msg.Name),
		Email:   strings.TrimSpace(msg.Email),
		Message: strings.TrimSpace(msg.Message),
	}
	switch {
	case cleaned.Name == "":
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("name is required"))
	case srv.validate.Var(cleaned.Email, "required,email") != nil:
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("a valid email is required"))
	case cleaned.Message == "":
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("message is required"))
	case len([]rune(cleaned.Message)) > maxContactMessageLen:
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("message is too long"))
	}

	event := &service.Event{
		ID:         uuid.NewString(),
		Type:       constants.EventContactSubmitted,
		RequestID:  deliverycontext.RequestIDFrom(ctx),
		OccurredAt: time.Now().UTC(),
		Contact:    cleaned,
	}
	if err := srv.publisher.Publish(ctx, event); err != nil {
		return errors.WithStack(domainerrors.NewBackendError(err, "publish contact message"))
	}

	deliverycontext.Logger(ctx, srv.logger).Info("Contact message submitted",
		slog.String("event_id", event.ID),
	)

	return nil
}

func buildContactInfo(cfg *config.Config) *entity.ContactInfo {
	info := &entity.ContactInfo{Socials: map[string]string{}}
	if cfg == nil || cfg.Contact == nil {
		return info
	}

	info.Email = cfg.Contact.Email
	maps.Copy(info.Socials, cfg.Contact.Socials)

	loc := cfg.Contact.Location
	if loc.Latitude != 0 || loc.Longitude != 0 {
		feature := geojson.NewFeature(orb.Point{loc.Longitude, loc.Latitude})
		if loc.Name != "" {
			feature.Properties["name"] = loc.Name
		}
		info.Location = feature
	}

	return info
}
