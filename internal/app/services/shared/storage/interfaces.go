package storage

import "context"

type Storage interface {
	UploadObject(ctx context.Context, fileName, contentType string, payload []byte) (string, error)
}
