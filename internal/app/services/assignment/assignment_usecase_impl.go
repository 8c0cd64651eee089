package assignment

import (
	"context"
	"strings"

	"opencrvs-service/internal/app/contracts"
	"opencrvs-service/internal/pkg/constvars"
	"opencrvs-service/internal/pkg/dto/requests"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

type assignmentUsecase struct {
	UserManagementClient contracts.UserManagementClient
	Log                  *zap.Logger
}

func NewAssignmentUsecase(logger *zap.Logger, userManagementClient contracts.UserManagementClient) contracts.AssignmentUsecase {
	return &assignmentUsecase{
		UserManagementClient: userManagementClient,
		Log:                  logger,
	}
}

// CheckUserAssignment reports whether the calling user holds the assignment
// on a task. An absent Authorization header is not an error, it is simply an
// unassigned caller. A failed lookup surfaces as an error rather than being
// folded into a negative answer.
func (uc *assignmentUsecase) CheckUserAssignment(ctx context.Context, taskID string, header *requests.AuthHeader) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assignmentUsecase.CheckUserAssignment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTaskIDKey, taskID),
	)

	if header == nil || header.Authorization == "" {
		return false, nil
	}

	subject := tokenSubject(header.Authorization)
	if subject == "" {
		return false, nil
	}

	userID, err := uc.UserManagementClient.GetUserAssignment(ctx, header.Authorization, taskID)
	if err != nil {
		return false, err
	}
	return userID == subject, nil
}

// tokenSubject extracts the sub claim without verifying the signature. The
// upstream gateway already authenticated the token; here it only identifies
// the caller for comparison against the assignment record.
func tokenSubject(authorization string) string {
	raw := strings.TrimPrefix(authorization, constvars.AuthorizationBearerPrefix)
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return ""
	}
	subject, _ := claims["sub"].(string)
	return subject
}
