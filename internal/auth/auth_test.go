package auth

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pranavsoni27/edusync-go/internal/gateway"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient(gateway.New(srv.URL, time.Second, nil)), &calls
}

func TestLogin(t *testing.T) {
	var body map[string]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("Expected POST /auth/login, got %s %s", r.Method, r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Errorf("Expected no Authorization header on login, got %q", auth)
		}
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &body)
		w.Write([]byte(`{"token": "tok-1", "id": "u-1", "email": "s@example.com", "role": "student"}`))
	})

	identity, err := client.Login(context.Background(), Credentials{Email: "s@example.com", Password: "pw", Role: "student"})
	if err != nil {
		t.Fatalf("Login() returned an unexpected error: %v", err)
	}
	if identity.Token != "tok-1" || identity.ID != "u-1" {
		t.Errorf("Expected token 'tok-1' and id 'u-1', got %+v", identity)
	}
	if body["email"] != "s@example.com" || body["role"] != "student" {
		t.Errorf("Expected email and role in the request body, got %v", body)
	}
}

func TestLoginIncompleteResponse(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "missing token", body: `{"id": "u-1", "email": "s@example.com"}`},
		{name: "missing id", body: `{"token": "tok-1"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			})
			_, err := client.Login(context.Background(), Credentials{Email: "s@example.com", Password: "pw", Role: "student"})
			var invalid *gateway.InvalidPayloadError
			if !errors.As(err, &invalid) {
				t.Fatalf("Expected *InvalidPayloadError, but got %v", err)
			}
		})
	}
}

func TestLoginLocalValidation(t *testing.T) {
	testCases := []struct {
		name  string
		creds Credentials
	}{
		{name: "missing email", creds: Credentials{Password: "pw", Role: "student"}},
		{name: "invalid email", creds: Credentials{Email: "not-an-email", Password: "pw", Role: "student"}},
		{name: "missing password", creds: Credentials{Email: "s@example.com", Role: "student"}},
		{name: "missing role", creds: Credentials{Email: "s@example.com", Password: "pw"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{}`))
			})
			if _, err := client.Login(context.Background(), tc.creds); err == nil {
				t.Fatal("Expected a local validation error")
			}
			if *calls != 0 {
				t.Errorf("Expected no network call, but %d were made", *calls)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" {
			t.Errorf("Expected path /auth/register, got %s", r.URL.Path)
		}
		w.Write([]byte(`{"token": "tok-2", "id": "u-2", "email": "n@example.com", "role": "instructor"}`))
	})

	identity, err := client.Register(context.Background(), Registration{
		Name:     "New User",
		Email:    "n@example.com",
		Password: "pw",
		Role:     "instructor",
	})
	if err != nil {
		t.Fatalf("Register() returned an unexpected error: %v", err)
	}
	if identity.Role != "instructor" {
		t.Errorf("Expected role 'instructor', but got %q", identity.Role)
	}
}

func TestRegisterSurfacesValidationErrors(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors": ["email is taken", "password too weak"]}`))
	})

	_, err := client.Register(context.Background(), Registration{
		Name:     "New User",
		Email:    "n@example.com",
		Password: "pw",
		Role:     "student",
	})
	var serverErr *gateway.ServerError
	if !errors.As(err, &serverErr) {
		t.Fatalf("Expected *ServerError, but got %v", err)
	}
	if serverErr.Message != "email is taken, password too weak" {
		t.Errorf("Expected joined error list, but got %q", serverErr.Message)
	}
}
