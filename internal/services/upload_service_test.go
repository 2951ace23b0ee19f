package services

import (
	"context"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"rescuerehab/internal/domain"
)

type memStore struct {
	key  string
	body string
}

func (m *memStore) Save(_ context.Context, key, _ string, body io.Reader) (string, error) {
	b, _ := io.ReadAll(body)
	m.key, m.body = key, string(b)
	return "/images/" + key, nil
}

func TestUpload_AnimalCategoryPath(t *testing.T) {
	store := &memStore{}
	svc := UploadService{Store: store, Now: func() time.Time { return time.UnixMilli(1700000000123) }}

	res, err := svc.Upload(context.Background(), UploadInput{
		Kind: "animal", Category: "dogs", ContentType: "image/png", Size: 3, Body: strings.NewReader("png"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !regexp.MustCompile(`^1700000000123-[0-9a-f]{12}\.png$`).MatchString(res.FileName) {
		t.Fatalf("unexpected file name %q", res.FileName)
	}
	if store.key != "animals/dogs/"+res.FileName || res.URL != "/images/animals/dogs/"+res.FileName {
		t.Fatalf("unexpected key/url %q %q", store.key, res.URL)
	}
}

func TestUpload_Rejections(t *testing.T) {
	svc := UploadService{Store: &memStore{}}
	cases := []struct {
		name string
		in   UploadInput
	}{
		{"gif", UploadInput{Kind: "event", ContentType: "image/gif", Size: 1}},
		{"too large", UploadInput{Kind: "event", ContentType: "image/jpeg", Size: MaxUploadBytes + 1}},
		{"no type", UploadInput{ContentType: "image/jpeg", Size: 1}},
		{"animal without category", UploadInput{Kind: "animal", ContentType: "image/jpeg", Size: 1}},
		{"traversal category", UploadInput{Kind: "animal", Category: "../etc", ContentType: "image/jpeg", Size: 1}},
		{"unknown type", UploadInput{Kind: "banner", ContentType: "image/jpeg", Size: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.Body = strings.NewReader("x")
			if _, err := svc.Upload(context.Background(), tc.in); !domain.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
