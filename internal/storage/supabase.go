// Package storage talks to a Supabase Storage bucket over its REST API.
// Property images live under a properties/{id}/ prefix inside one public
// bucket; the database only ever records the resulting public URLs.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	apperrors "homefinder-backend/internal/errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ImageUpload is one binary image part received from the admin form
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

//go:generate mockgen -source=supabase.go -destination=../mocks/storage_mocks.go -package=mocks

// ObjectStorage is the storage collaborator used by the property service
type ObjectStorage interface {
	// UploadPropertyImages stores the files under the property's prefix and
	// returns their public URLs in input order.
	UploadPropertyImages(ctx context.Context, propertyID uint, files []ImageUpload) ([]string, error)
	// DeletePropertyImages removes every object under the property's prefix.
	DeletePropertyImages(ctx context.Context, propertyID uint) error
}

// SupabaseStorage implements ObjectStorage against the Supabase Storage API
type SupabaseStorage struct {
	baseURL    string
	serviceKey string
	bucket     string
	httpClient *http.Client
}

// Ensure SupabaseStorage implements ObjectStorage
var _ ObjectStorage = (*SupabaseStorage)(nil)

// NewSupabaseStorage creates a storage client. bucket defaults to
// "property-images".
func NewSupabaseStorage(baseURL, serviceKey, bucket string) *SupabaseStorage {
	if bucket == "" {
		bucket = "property-images"
	}
	return &SupabaseStorage{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		bucket:     bucket,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *SupabaseStorage) objectPath(propertyID uint, name string) string {
	return fmt.Sprintf("properties/%d/%s", propertyID, name)
}

// publicURL is where anonymous clients fetch an object from a public bucket
func (s *SupabaseStorage) publicURL(objectPath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, objectPath)
}

// UploadPropertyImages uploads all files concurrently and waits for the
// whole batch. URLs come back in input order regardless of upload order;
// the caller assigns display order by position.
func (s *SupabaseStorage) UploadPropertyImages(ctx context.Context, propertyID uint, files []ImageUpload) ([]string, error) {
	urls := make([]string, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			ext := path.Ext(file.Filename)
			name := fmt.Sprintf("property-%d-%s%s", propertyID, uuid.NewString(), ext)
			objPath := s.objectPath(propertyID, name)

			if err := s.upload(ctx, objPath, file); err != nil {
				return err
			}
			urls[i] = s.publicURL(objPath)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

func (s *SupabaseStorage) upload(ctx context.Context, objectPath string, file ImageUpload) error {
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, objectPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(file.Data))
	if err != nil {
		return apperrors.NewUpstreamError("storage", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return apperrors.NewUpstreamError("storage", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return apperrors.NewUpstreamError("storage", fmt.Errorf("upload %s: %s", objectPath, readError(resp.Body, resp.StatusCode)))
	}
	return nil
}

// listedObject is one entry from the bucket list endpoint
type listedObject struct {
	Name string `json:"name"`
}

// DeletePropertyImages lists the property's prefix and removes everything
// found there. A property with no uploaded images is not an error.
func (s *SupabaseStorage) DeletePropertyImages(ctx context.Context, propertyID uint) error {
	prefix := fmt.Sprintf("properties/%d", propertyID)

	objects, err := s.list(ctx, prefix)
	if err != nil {
		return err
	}
	if len(objects) == 0 {
		return nil
	}

	paths := make([]string, len(objects))
	for i, obj := range objects {
		paths[i] = prefix + "/" + obj.Name
	}
	return s.remove(ctx, paths)
}

func (s *SupabaseStorage) list(ctx context.Context, prefix string) ([]listedObject, error) {
	body, err := json.Marshal(map[string]interface{}{
		"prefix": prefix,
		"limit":  1000,
	})
	if err != nil {
		return nil, apperrors.NewUpstreamError("storage", err)
	}

	url := fmt.Sprintf("%s/storage/v1/object/list/%s", s.baseURL, s.bucket)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.NewUpstreamError("storage", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("storage", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUpstreamError("storage", fmt.Errorf("list %s: %s", prefix, readError(resp.Body, resp.StatusCode)))
	}

	var objects []listedObject
	if err := json.NewDecoder(resp.Body).Decode(&objects); err != nil {
		return nil, apperrors.NewUpstreamError("storage", fmt.Errorf("decode list response: %w", err))
	}
	return objects, nil
}

func (s *SupabaseStorage) remove(ctx context.Context, paths []string) error {
	body, err := json.Marshal(map[string]interface{}{"prefixes": paths})
	if err != nil {
		return apperrors.NewUpstreamError("storage", err)
	}

	url := fmt.Sprintf("%s/storage/v1/object/%s", s.baseURL, s.bucket)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, bytes.NewReader(body))
	if err != nil {
		return apperrors.NewUpstreamError("storage", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return apperrors.NewUpstreamError("storage", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return apperrors.NewUpstreamError("storage", fmt.Errorf("remove objects: %s", readError(resp.Body, resp.StatusCode)))
	}
	return nil
}

func readError(r io.Reader, status int) string {
	b, _ := io.ReadAll(io.LimitReader(r, 4096))
	text := strings.TrimSpace(string(b))
	if text == "" {
		return fmt.Sprintf("status %d", status)
	}
	return fmt.Sprintf("status %d: %s", status, text)
}
