package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"moviebook-cli/auth"
	"moviebook-cli/model"
)

func TestRequestCarriesHeaders(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, auth.Static("Bearer abc"))
	if _, err := client.GetMovies(context.Background()); err != nil {
		t.Fatalf("GetMovies: %v", err)
	}

	if got.Get("Authorization") != "Bearer abc" {
		t.Errorf("Authorization = %q", got.Get("Authorization"))
	}
	if got.Get("Accept") != "application/json" {
		t.Errorf("Accept = %q", got.Get("Accept"))
	}
}

func TestNoAuthorizationWhenSignedOut(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, nil)
	if _, err := client.GetMovies(context.Background()); err != nil {
		t.Fatalf("GetMovies: %v", err)
	}
	if _, ok := got["Authorization"]; ok {
		t.Error("unauthenticated request must not carry an Authorization header")
	}
}

func TestGetSeatStatusPathAndDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bookings/show/42/seats/status" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"bookedSeatIds": [5, 6], "lockedSeatIds": [7]}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, nil)
	status, err := client.GetSeatStatus(context.Background(), "42")
	if err != nil {
		t.Fatalf("GetSeatStatus: %v", err)
	}
	if len(status.BookedSeatIDs) != 2 || status.BookedSeatIDs[0] != 5 {
		t.Errorf("booked = %v", status.BookedSeatIDs)
	}
	if len(status.LockedSeatIDs) != 1 || status.LockedSeatIDs[0] != 7 {
		t.Errorf("locked = %v", status.LockedSeatIDs)
	}
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "seats already locked", http.StatusConflict)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, nil)
	_, err := client.CreateBooking(context.Background(), model.CreateBookingRequest{ShowID: "42"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Errorf("status = %d", apiErr.StatusCode)
	}
	if apiErr.Body != "seats already locked" {
		t.Errorf("body = %q", apiErr.Body)
	}
}

func TestHTMLResponseIsErrNotJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html>gateway timeout</html>`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, nil)
	_, err := client.GetMovies(context.Background())
	if !errors.Is(err, ErrNotJSON) {
		t.Fatalf("want ErrNotJSON, got %v", err)
	}
}

func TestCreateBookingSendsCanonicalBody(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type = %q", r.Header.Get("Content-Type"))
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 10, "showId": 42, "status": "PENDING_PAYMENT", "totalAmount": 550}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, nil)
	req := model.CreateBookingRequest{
		ShowID:      "42",
		TotalAmount: 550,
		Seats: []model.SeatRequest{
			{SeatID: 1, RowLabel: "A", SeatNumber: 1, SeatType: "REGULAR", Price: 200},
		},
	}
	created, err := client.CreateBooking(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if body["showId"] != "42" {
		t.Errorf("showId = %v", body["showId"])
	}
	if body["totalAmount"] != 550.0 {
		t.Errorf("totalAmount = %v", body["totalAmount"])
	}
	if created.ID != "10" || !created.IsPending() {
		t.Errorf("created = %+v", created)
	}
}

func TestFailedRequestIsNotRetried(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, nil)
	if _, err := client.GetMovies(context.Background()); err == nil {
		t.Fatal("want error")
	}
	if calls != 1 {
		t.Errorf("server called %d times, want exactly 1", calls)
	}
}

func TestCancelBookingUsesPut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path != "/bookings/10/cancel" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, nil)
	if err := client.CancelBooking(context.Background(), "10"); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
}

func TestSignIn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/signin" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var req model.SignInRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email != "a@b.c" {
			t.Errorf("email = %q", req.Email)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token": "Bearer xyz"}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, nil)
	token, err := client.SignIn(context.Background(), "a@b.c", "secret")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if token != "Bearer xyz" {
		t.Errorf("token = %q", token)
	}
}

func TestStatusPredicates(t *testing.T) {
	notFound := &APIError{StatusCode: http.StatusNotFound}
	unauthorized := &APIError{StatusCode: http.StatusUnauthorized}

	if !IsNotFound(notFound) || IsNotFound(unauthorized) {
		t.Error("IsNotFound misclassifies")
	}
	if !IsUnauthorized(unauthorized) || IsUnauthorized(notFound) {
		t.Error("IsUnauthorized misclassifies")
	}
	if IsNotFound(errors.New("plain")) {
		t.Error("plain error is not an APIError")
	}
}
