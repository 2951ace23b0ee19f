package services

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"rescuerehab/internal/domain"
	"rescuerehab/internal/storage"
	"rescuerehab/internal/utils"
)

const MaxUploadBytes = 5 << 20

var uploadExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

var categoryPattern = regexp.MustCompile(`^[a-z0-9_-]{1,32}$`)

type UploadInput struct {
	Kind        string
	Category    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type UploadResult struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
}

// UploadService validates admin image uploads and hands them to the configured store.
type UploadService struct {
	Store     storage.Store
	RequestID string
	Now       func() time.Time
}

func (s UploadService) Upload(ctx context.Context, in UploadInput) (UploadResult, error) {
	ext, ok := uploadExtensions[strings.ToLower(strings.TrimSpace(in.ContentType))]
	if !ok {
		return UploadResult{}, domain.ValidationError{Field: "file", Msg: "Invalid file type"}
	}
	if in.Size > MaxUploadBytes {
		return UploadResult{}, domain.ValidationError{Field: "file", Msg: "File too large"}
	}
	dir, err := uploadDir(in.Kind, in.Category)
	if err != nil {
		return UploadResult{}, err
	}

	fileName := fmt.Sprintf("%d-%s.%s", s.now().UnixMilli(), strings.ReplaceAll(uuid.NewString(), "-", "")[:12], ext)
	url, err := s.Store.Save(ctx, dir+"/"+fileName, in.ContentType, io.LimitReader(in.Body, MaxUploadBytes+1))
	if err != nil {
		utils.LogError(s.RequestID, "upload", "save", err)
		return UploadResult{}, domain.InternalError{Msg: "Failed to upload file", Err: err}
	}
	utils.LogEvent(s.RequestID, "upload", "save", "stored "+url)
	return UploadResult{URL: url, FileName: fileName}, nil
}

func uploadDir(kind, category string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "":
		return "", domain.ValidationError{Field: "type", Msg: "No type specified"}
	case "animal":
		category = strings.ToLower(strings.TrimSpace(category))
		if !categoryPattern.MatchString(category) {
			return "", domain.ValidationError{Field: "category", Msg: "Invalid type or category"}
		}
		return "animals/" + category, nil
	case "event":
		return "events", nil
	case "logo":
		return "logo", nil
	default:
		return "", domain.ValidationError{Field: "type", Msg: "Invalid type or category"}
	}
}

func (s UploadService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
