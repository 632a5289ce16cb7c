package cep

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "homefinder-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "01310100", Normalize("01310-100"))
	assert.Equal(t, "01310100", Normalize("01.310-100"))
	assert.Equal(t, "01310100", Normalize("01310100"))
	assert.Equal(t, "", Normalize("abc"))
}

func TestLookupSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/01310100/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"cep": "01310-100",
			"logradouro": "Avenida Paulista",
			"bairro": "Bela Vista",
			"localidade": "São Paulo",
			"uf": "SP"
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	addr, err := client.Lookup(context.Background(), "01310-100")

	require.NoError(t, err)
	assert.Equal(t, "Avenida Paulista", addr.Street)
	assert.Equal(t, "Bela Vista", addr.Neighborhood)
	assert.Equal(t, "São Paulo", addr.City)
	assert.Equal(t, "SP", addr.UF)
}

func TestLookupInvalidLength(t *testing.T) {
	// Never reaches the provider.
	client := NewClient("http://127.0.0.1:1")

	_, err := client.Lookup(context.Background(), "1234")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCEP)

	_, err = client.Lookup(context.Background(), "123456789")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCEP)
}

func TestLookupProviderMiss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"erro": true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Lookup(context.Background(), "99999999")

	assert.ErrorIs(t, err, apperrors.ErrCEPNotFound)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestLookupUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Lookup(context.Background(), "01310100")

	assert.True(t, apperrors.IsUpstream(err))
}
