package contracts

import (
	"context"

	"opencrvs-service/internal/pkg/constvars"
	"opencrvs-service/internal/pkg/dto/requests"
	"opencrvs-service/internal/pkg/fhir_dto"
)

type RegistrationUsecase interface {
	BuildFHIRBundle(ctx context.Context, event constvars.Event, input *requests.RegistrationInput) (*fhir_dto.Bundle, error)
	UpdateFHIRTaskBundle(ctx context.Context, update *requests.TaskStatusUpdate) (*fhir_dto.Bundle, error)
	TaskBundleWithExtension(ctx context.Context, update *requests.TaskExtensionUpdate) (*fhir_dto.Bundle, error)
}
