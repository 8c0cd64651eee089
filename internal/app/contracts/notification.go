package contracts

import (
	"context"

	"opencrvs-service/internal/app/models"
)

type IndexNotifier interface {
	PublishIndexedEvent(ctx context.Context, doc *models.EventDocument) error
}
