package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"infinity8/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second), srv
}

func TestClientForwardsBearerTokenFromContext(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(models.User{ID: 1})
	})

	ctx := WithToken(context.Background(), "token-123")
	if _, err := NewIdentityClient(client).Me(ctx); err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	if gotAuth != "Bearer token-123" {
		t.Fatalf("authorization header = %q", gotAuth)
	}
}

func TestClientOmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.Space{})
	})

	if _, err := NewSpacesClient(client).List(context.Background(), models.SpaceFilter{}); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("unexpected authorization header %q", gotAuth)
	}
}

func TestClientMapsDetailPayloadToUpstreamError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Slot no longer available"})
	})

	_, err := NewBookingsClient(client).Create(context.Background(), models.BookingInput{SpaceID: 1})
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("got %v, want UpstreamError", err)
	}
	if upstream.Status != http.StatusConflict {
		t.Errorf("status = %d", upstream.Status)
	}
	if upstream.Detail != "Slot no longer available" {
		t.Errorf("detail = %q, must pass through verbatim", upstream.Detail)
	}
}

func TestClientMapsUndecodableErrorToTransportError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream proxy error</html>"))
	})

	_, err := NewSpacesClient(client).Get(context.Background(), 1)
	var transport *TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("got %v, want TransportError", err)
	}
}

func TestClientMapsUnreachableHostToTransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 500*time.Millisecond)
	_, err := NewSpacesClient(client).Get(context.Background(), 1)
	var transport *TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("got %v, want TransportError", err)
	}
}

func TestAvailabilityRequestCarriesDateQuery(t *testing.T) {
	var gotPath, gotDate string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotDate = r.URL.Query().Get("date")
		json.NewEncoder(w).Encode(models.SpaceAvailability{SpaceID: 7, Date: gotDate})
	})

	availability, err := NewSpacesClient(client).Availability(context.Background(), 7, "2026-08-30")
	if err != nil {
		t.Fatalf("Availability failed: %v", err)
	}
	if gotPath != "/spaces/7/availability" {
		t.Errorf("path = %s", gotPath)
	}
	if gotDate != "2026-08-30" {
		t.Errorf("date = %s", gotDate)
	}
	if availability.SpaceID != 7 {
		t.Errorf("space id = %d", availability.SpaceID)
	}
}

func TestCancelTreatsNoContentAsSuccess(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/bookings/42" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := NewBookingsClient(client).Cancel(context.Background(), 42); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
}

func TestListSpacesEncodesFilters(t *testing.T) {
	var gotQuery map[string]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"type":         r.URL.Query().Get("type"),
			"min_capacity": r.URL.Query().Get("min_capacity"),
			"max_price":    r.URL.Query().Get("max_price"),
		}
		json.NewEncoder(w).Encode([]models.Space{})
	})

	filter := models.SpaceFilter{Type: models.SpaceTypeMeetingRoom, MinCapacity: 4, MaxPrice: 50}
	if _, err := NewSpacesClient(client).List(context.Background(), filter); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if gotQuery["type"] != "meeting_room" || gotQuery["min_capacity"] != "4" || gotQuery["max_price"] != "50" {
		t.Fatalf("query = %v", gotQuery)
	}
}
