package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	apperrors "homefinder-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadPropertyImages(t *testing.T) {
	var mu sync.Mutex
	var uploaded []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		uploaded = append(uploaded, r.URL.Path+"|"+string(body))
		mu.Unlock()

		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"Key": "ok"}`)
	}))
	defer srv.Close()

	s := NewSupabaseStorage(srv.URL, "test-key", "property-images")

	files := []ImageUpload{
		{Filename: "front.jpg", ContentType: "image/jpeg", Data: []byte("jpeg-bytes")},
		{Filename: "pool.png", ContentType: "image/png", Data: []byte("png-bytes")},
	}
	urls, err := s.UploadPropertyImages(context.Background(), 42, files)

	require.NoError(t, err)
	require.Len(t, urls, 2)
	assert.Len(t, uploaded, 2)

	// URLs come back in input order with the right extension, even though
	// uploads run concurrently.
	assert.Contains(t, urls[0], "/storage/v1/object/public/property-images/properties/42/property-42-")
	assert.True(t, strings.HasSuffix(urls[0], ".jpg"))
	assert.True(t, strings.HasSuffix(urls[1], ".png"))
	assert.NotEqual(t, urls[0], urls[1])
}

func TestUploadPropertyImagesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bucket not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	s := NewSupabaseStorage(srv.URL, "k", "")
	_, err := s.UploadPropertyImages(context.Background(), 1, []ImageUpload{{Filename: "a.jpg"}})

	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
	assert.Contains(t, err.Error(), "bucket not found")
}

func TestDeletePropertyImages(t *testing.T) {
	var removed []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/storage/v1/object/list/"):
			var req map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "properties/7", req["prefix"])
			fmt.Fprint(w, `[{"name":"a.jpg"},{"name":"b.jpg"}]`)
		case r.Method == http.MethodDelete:
			var req struct {
				Prefixes []string `json:"prefixes"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			removed = req.Prefixes
			fmt.Fprint(w, `{"message":"ok"}`)
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	s := NewSupabaseStorage(srv.URL, "k", "property-images")
	err := s.DeletePropertyImages(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, []string{"properties/7/a.jpg", "properties/7/b.jpg"}, removed)
}

func TestDeletePropertyImagesEmptyPrefix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			t.Fatal("remove should not be called when nothing is listed")
		}
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	s := NewSupabaseStorage(srv.URL, "k", "")
	assert.NoError(t, s.DeletePropertyImages(context.Background(), 9))
}
