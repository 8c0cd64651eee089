package storage

import (
	"context"

	"opencrvs-service/internal/app/contracts"
	"opencrvs-service/internal/pkg/constvars"
	"opencrvs-service/internal/pkg/exceptions"
	"opencrvs-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type documentStorage struct {
	Storage Storage
	Log     *zap.Logger
}

// NewDocumentStorage wraps object storage with data-URI decoding for
// attachment and certificate payloads.
func NewDocumentStorage(objectStorage Storage, logger *zap.Logger) contracts.DocumentStorage {
	return &documentStorage{
		Storage: objectStorage,
		Log:     logger,
	}
}

func (s *documentStorage) UploadDocument(ctx context.Context, fileName, data string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("documentStorage.UploadDocument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, fileName),
	)

	contentType, payload, err := utils.ParseDataURI(data)
	if err != nil {
		s.Log.Error("documentStorage.UploadDocument cannot parse payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrUploadDocument(err)
	}

	refURL, err := s.Storage.UploadObject(ctx, fileName, contentType, payload)
	if err != nil {
		s.Log.Error("documentStorage.UploadDocument upload failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}
	return refURL, nil
}
