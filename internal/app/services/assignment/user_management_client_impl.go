package assignment

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"opencrvs-service/internal/app/contracts"
	"opencrvs-service/internal/pkg/constvars"
	"opencrvs-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type userManagementClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewUserManagementClient(logger *zap.Logger, baseURL string, httpClient *http.Client) contracts.UserManagementClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &userManagementClient{
		BaseURL:    baseURL,
		HTTPClient: httpClient,
		Log:        logger,
	}
}

// GetUserAssignment asks the user management service which user currently
// holds the assignment on a task. An empty userId means nobody does.
func (c *userManagementClient) GetUserAssignment(ctx context.Context, token, taskID string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("userManagementClient.GetUserAssignment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTaskIDKey, taskID),
	)

	payload, err := json.Marshal(map[string]string{"taskId": taskID})
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/getUserAssignment", c.BaseURL)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	var body struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", exceptions.ErrDecodeResponse(err, "user management")
	}
	return body.UserID, nil
}
