package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/rogerio-castellano/erp-dashboard/internal/http"
	handler "github.com/rogerio-castellano/erp-dashboard/internal/http/handlers"
)

func TestSignupHandler(t *testing.T) {
	setupTestRepos()
	r := api.NewRouter()

	t.Run("valid signup", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/auth/signup",
			handler.SignupRequest{Email: "new@example.com", Name: "New User", Password: "secret-password"}, false)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201 Created, got %d", w.Code)
		}
		var resp handler.AuthResult
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.Token == "" {
			t.Errorf("expected a token in the response")
		}
		if resp.User.Role != "user" {
			t.Errorf("expected default role user, got %q", resp.User.Role)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/auth/signup",
			handler.SignupRequest{Email: "new@example.com", Name: "Again", Password: "secret-password"}, false)
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409 Conflict, got %d", w.Code)
		}
	})

	t.Run("short password", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/auth/signup",
			handler.SignupRequest{Email: "short@example.com", Name: "Short", Password: "abc"}, false)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/auth/signup",
			handler.SignupRequest{Email: "nobody@example.com"}, false)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})
}

func TestLoginHandler(t *testing.T) {
	setupTestRepos()
	r := api.NewRouter()

	doRequest(r, http.MethodPost, "/api/auth/signup",
		handler.SignupRequest{Email: "login@example.com", Name: "Login", Password: "secret-password"}, false)

	t.Run("valid credentials", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/auth/login",
			handler.CredentialsRequest{Email: "login@example.com", Password: "secret-password"}, false)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var resp handler.AuthResult
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.Token == "" {
			t.Errorf("expected a token in the response")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/auth/login",
			handler.CredentialsRequest{Email: "login@example.com", Password: "wrong"}, false)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 Unauthorized, got %d", w.Code)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/auth/login",
			handler.CredentialsRequest{Email: "ghost@example.com", Password: "secret-password"}, false)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 Unauthorized, got %d", w.Code)
		}
	})
}
