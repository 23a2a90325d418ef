package ports

import "context"

// MediaStore accepts uploaded images and returns a stable URL the product
// record can store. Nothing beyond "returns a URL string" is assumed.
type MediaStore interface {
	// UploadImage stores the decoded image bytes and returns the object key
	// and a public URL. contentType is the MIME type from the data URL.
	UploadImage(ctx context.Context, data []byte, contentType string) (key, url string, err error)
}
