package remote

import (
	"colis-service/internal/domain"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL+"/", "secret")
	require.NoError(t, err)
	c.backoff = time.Millisecond
	return c
}

func TestNewClientValidatesURL(t *testing.T) {
	_, err := NewClient("  ", "")
	assert.Error(t, err)
	_, err = NewClient("not a url", "")
	assert.Error(t, err)
}

func TestParcelsLoader(t *testing.T) {
	var auth string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/colis", r.URL.Path)
		auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":2,"code":"CLS-NOU-ROS-0002","expediteur":"A","destinataire":"B","poids":1.5,"villeDepart":"Nouakchott","villeArrivee":"Rosso","tarif":500,"statut":"En transit"},
			{"id":1,"code":"CLS-XXX-XXX-0001","expediteur":"C","destinataire":"D","poids":2,"tarif":300,"statut":"Livré"}
		]`))
	}))

	parcels, err := c.Parcels().Load(context.Background())
	require.NoError(t, err)
	require.Len(t, parcels, 2)
	assert.Equal(t, "secret", auth)
	assert.Equal(t, "Rosso", *parcels[0].DestinationCity)
	assert.Equal(t, domain.ParcelDelivered, parcels[1].Status)
	assert.Nil(t, parcels[1].OriginCity)
}

func TestPassengersLoaderNullBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/passagers", r.URL.Path)
		_, _ = w.Write([]byte(`null`))
	}))

	passengers, err := c.Passengers().Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, passengers)
}

func TestRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[{"id":1,"nom":"Aicha","telephone":"36"}]`))
	}))

	passengers, err := c.Passengers().Load(context.Background())
	require.NoError(t, err)
	require.Len(t, passengers, 1)
	assert.Equal(t, "Aicha", passengers[0].Name)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "no such collection", http.StatusNotFound)
	}))

	_, err := c.Parcels().Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Equal(t, int32(1), calls.Load())
}

func TestGivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := c.Parcels().Load(context.Background())
	assert.Error(t, err)
	assert.Equal(t, int32(c.maxAttempts), calls.Load())
}

func TestMalformedBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"colis":`))
	}))

	_, err := c.Parcels().Load(context.Background())
	assert.Error(t, err)
}
