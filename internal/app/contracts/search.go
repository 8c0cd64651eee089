package contracts

import (
	"context"

	"opencrvs-service/internal/app/models"
	"opencrvs-service/internal/pkg/constvars"
	"opencrvs-service/internal/pkg/fhir_dto"
)

type SearchUsecase interface {
	UpsertEvent(ctx context.Context, event constvars.Event, bundle *fhir_dto.RawBundle) error
}

type SearchRepository interface {
	UpsertEventDocument(ctx context.Context, doc *models.EventDocument) error
}
