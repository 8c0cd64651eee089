package contracts

import (
	"context"

	"opencrvs-service/internal/pkg/dto/requests"
)

type AssignmentUsecase interface {
	CheckUserAssignment(ctx context.Context, taskID string, header *requests.AuthHeader) (bool, error)
}

// UserManagementClient talks to the user management service that owns
// record assignments.
type UserManagementClient interface {
	GetUserAssignment(ctx context.Context, token, taskID string) (userID string, err error)
}
