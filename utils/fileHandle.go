package utils

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxUploadSize caps media uploads
const MaxUploadSize = 20 << 20

// ErrFileTooLarge is returned when an upload exceeds MaxUploadSize
var ErrFileTooLarge = errors.New("file is too large")

// ReadUploadedFile loads a multipart file into memory and detects its content type
func ReadUploadedFile(file *multipart.FileHeader) ([]byte, string, error) {
	if file.Size > MaxUploadSize {
		return nil, "", fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, MaxUploadSize)
	}

	src, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxUploadSize+1))
	if err != nil {
		return nil, "", err
	}
	if len(data) > MaxUploadSize {
		return nil, "", fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, MaxUploadSize)
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}

// ObjectPath builds a unique storage key: <folder>/<yyyymmdd>/<uuid><ext>
func ObjectPath(folder, filename string) string {
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		folder = "uploads"
	}
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%s/%s%s", folder, time.Now().Format("20060102"), uuid.NewString(), ext)
}
