package service

import (
	"context"
	"io"
)

type FileUploadService interface {
	// UploadFile stores file under folder and returns its public URL.
	UploadFile(ctx context.Context, file io.Reader, contentType, folder string) (string, error)
	DeleteFile(ctx context.Context, fileURL string) error
	Close() error
}
