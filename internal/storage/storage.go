package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	intconfig "rescuerehab/internal/config"
)

// Store persists uploaded media and returns the URL clients should use.
// key is a slash separated relative path such as "animals/dogs/123-abc.jpg".
type Store interface {
	Save(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

func New(ctx context.Context, env intconfig.Env) (Store, error) {
	switch strings.ToLower(env.StorageDriver) {
	case "", "local":
		return Local{Dir: env.UploadDir, URLPrefix: "/images"}, nil
	case "s3":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(env.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("load aws config for s3: %w", err)
		}
		return S3{
			Uploader:      manager.NewUploader(s3.NewFromConfig(awsCfg)),
			Bucket:        env.S3Bucket,
			PublicBaseURL: env.PublicBaseURL,
		}, nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", env.StorageDriver)
	}
}

// Local writes below Dir, which is also served at URLPrefix.
type Local struct {
	Dir       string
	URLPrefix string
}

func (l Local) Save(_ context.Context, key, _ string, body io.Reader) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	dst := filepath.Join(l.Dir, clean)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return strings.TrimRight(l.URLPrefix, "/") + "/" + filepath.ToSlash(clean), nil
}

// Uploader is satisfied by *manager.Uploader.
type Uploader interface {
	Upload(ctx context.Context, in *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type S3 struct {
	Uploader      Uploader
	Bucket        string
	PublicBaseURL string
}

func (s S3) Save(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	objectKey := "images/" + strings.TrimPrefix(key, "/")
	out, err := s.Uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(objectKey),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload to s3: %w", err)
	}
	if s.PublicBaseURL != "" {
		return strings.TrimRight(s.PublicBaseURL, "/") + "/" + objectKey, nil
	}
	return out.Location, nil
}
