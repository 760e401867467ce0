package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	signUpErr     error
	signUpResult  *domain.Organizer
	loginErr      error
	loginToken    string
	profileErr    error
	profileResult *domain.Organizer
	lastEmail     string
	lastName      string
	lastProfileID string
}

func (f *fakeAuthService) SignUp(ctx context.Context, email, password, name string) (*domain.Organizer, error) {
	f.lastEmail = email
	f.lastName = name
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return f.signUpResult, nil
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, error) {
	f.lastEmail = email
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.loginToken, nil
}

func (f *fakeAuthService) Profile(ctx context.Context, organizerID string) (*domain.Organizer, error) {
	f.lastProfileID = organizerID
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profileResult, nil
}

func TestAuthController_SignUp(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"name":"Dev Community","email":"org@example.com","password":"password123"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:           "missing fields",
			body:           `{"email":"org@example.com"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "required",
		},
		{
			name:           "invalid email",
			body:           `{"name":"Dev","email":"bad","password":"password123"}`,
			fakeErr:        domain.ErrInvalidEmail,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid email",
		},
		{
			name:           "weak password",
			body:           `{"name":"Dev","email":"org@example.com","password":"short"}`,
			fakeErr:        domain.ErrWeakPassword,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "at least 8 characters",
		},
		{
			name:           "duplicate email",
			body:           `{"name":"Dev","email":"org@example.com","password":"password123"}`,
			fakeErr:        domain.ErrDuplicateEmail,
			wantStatus:     http.StatusConflict,
			wantBodySubstr: "already registered",
		},
		{
			name:           "service error",
			body:           `{"name":"Dev","email":"org@example.com","password":"password123"}`,
			fakeErr:        errors.New("db error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAuthService{
				signUpErr:    tt.fakeErr,
				signUpResult: &domain.Organizer{ID: "org-1", Email: "org@example.com", Name: "Dev Community"},
			}
			ctrl := NewAuthController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.SignUp(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var organizer domain.Organizer
				require.NoError(t, json.Unmarshal(dataBytes, &organizer))
				assert.Equal(t, "org-1", organizer.ID)
				assert.Empty(t, organizer.PasswordHash, "password hash must not be serialized")
			} else if tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			}
		})
	}
}

func TestAuthController_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"email":"org@example.com","password":"password123"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:           "missing password",
			body:           `{"email":"org@example.com"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "password is required",
		},
		{
			name:           "invalid credentials",
			body:           `{"email":"org@example.com","password":"wrong-password"}`,
			fakeErr:        domain.ErrInvalidCredentials,
			wantStatus:     http.StatusUnauthorized,
			wantBodySubstr: "invalid credentials",
		},
		{
			name:           "service error",
			body:           `{"email":"org@example.com","password":"password123"}`,
			fakeErr:        errors.New("token backend down"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "token backend down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAuthService{loginErr: tt.fakeErr, loginToken: "jwt-token"}
			ctrl := NewAuthController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.Login(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantStatus == http.StatusOK {
				var envelope struct {
					Data  LoginResponse     `json:"data"`
					Error *helpers.APIError `json:"error"`
				}
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.Nil(t, envelope.Error)
				assert.Equal(t, "jwt-token", envelope.Data.Token)
			} else if tt.wantBodySubstr != "" {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			}
		})
	}
}

func TestAuthController_Profile(t *testing.T) {
	tests := []struct {
		name          string
		noAuthContext bool
		fakeErr       error
		wantStatus    int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "no organizer in context", noAuthContext: true, wantStatus: http.StatusUnauthorized},
		{name: "account gone", fakeErr: domain.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "service error", fakeErr: errors.New("db error"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAuthService{
				profileErr:    tt.fakeErr,
				profileResult: &domain.Organizer{ID: "org-123", Email: "org@example.com", Name: "Dev Community"},
			}
			ctrl := NewAuthController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/organizer/me", nil)
			if !tt.noAuthContext {
				req = req.WithContext(middleware.SetOrganizerID(req.Context(), "org-123"))
			}
			rr := httptest.NewRecorder()

			ctrl.Profile(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "org-123", fake.lastProfileID)
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.Nil(t, envelope.Error)
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var organizer domain.Organizer
				require.NoError(t, json.Unmarshal(dataBytes, &organizer))
				assert.Equal(t, "org-123", organizer.ID)
				assert.Empty(t, organizer.PasswordHash)
			}
		})
	}
}
