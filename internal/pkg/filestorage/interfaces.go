package filestorage

import (
	"mime/multipart"
)

// FileStorage stores uploaded documents (student photos, offer letters)
type FileStorage interface {
	// SaveFile stores the upload under dir and returns the URL it is served from
	SaveFile(fileHeader *multipart.FileHeader, dir string) (string, error)

	// DeleteFile removes the file behind a URL previously returned by SaveFile
	DeleteFile(fileURL string) error
}
