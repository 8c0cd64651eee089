package contracts

import "context"

// DocumentStorage stores attachment payloads and returns a reference URL
// suitable for embedding in a DocumentReference.
type DocumentStorage interface {
	UploadDocument(ctx context.Context, fileName, data string) (refURL string, err error)
}
