package usecase

import (
	"context"
	"plumbing_portal/internal/domain/entities"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IContactUseCase acknowledges messages sent from the contact page.
// Messages are logged and confirmed; nothing is stored.

type IContactUseCase interface {
	SendMessage(ctx context.Context, m entities.ContactMessage) (entities.ContactConfirmation, error)
}

type ContactUseCase struct {
	logger *zap.Logger
}

var _ IContactUseCase = (*ContactUseCase)(nil)

func NewContactUseCase(logger *zap.Logger) *ContactUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactUseCase{logger: logger}
}

func (u *ContactUseCase) SendMessage(_ context.Context, m entities.ContactMessage) (entities.ContactConfirmation, error) {
	c := entities.ContactConfirmation{
		ID:         uuid.NewString(),
		Text:       entities.ContactConfirmationText,
		ReceivedAt: time.Now().UTC(),
	}
	u.logger.Info("[contact][usecase] message received",
		zap.String("message_id", c.ID),
		zap.Int("message_len", len(m.Message)),
	)
	return c, nil
}
