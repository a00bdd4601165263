package handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-mate/backend/internal/domain"
	"github.com/pkordes/travel-mate/backend/internal/handler"
)

func ensuringUsers(created bool) *mockUserServicer {
	return &mockUserServicer{
		ensure: func(_ context.Context, caller domain.Identity) (domain.User, bool, error) {
			return domain.User{ID: "01J0000000000000000000USER", Subject: caller.Subject, CreatedAt: time.Now().UTC()}, created, nil
		},
	}
}

func TestLogin_201_FirstContact(t *testing.T) {
	for _, path := range []string{"/api/auth/login", "/api/auth/register"} {
		t.Run(path, func(t *testing.T) {
			rec := do(t, newHTTPHandler(services{users: ensuringUsers(true)}), http.MethodPost, path, "u1", nil)

			require.Equal(t, http.StatusCreated, rec.Code)
			resp := decode[handler.AuthResponse](t, rec)
			assert.True(t, resp.Created)
			assert.Equal(t, "01J0000000000000000000USER", resp.User.ID)
		})
	}
}

func TestLogin_200_Returning(t *testing.T) {
	rec := do(t, newHTTPHandler(services{users: ensuringUsers(false)}), http.MethodPost, "/api/auth/login", "u1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[handler.AuthResponse](t, rec).Created)
	assert.NotContains(t, rec.Body.String(), "u1", "the auth subject is never echoed")
}

func TestDeleteUser_204(t *testing.T) {
	var gotCaller domain.Identity
	var gotID string
	h := newHTTPHandler(services{users: &mockUserServicer{
		delete: func(_ context.Context, caller domain.Identity, userID string) error {
			gotCaller, gotID = caller, userID
			return nil
		},
	}})

	rec := do(t, h, http.MethodDelete, "/api/users/user-1", "u1", nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "u1", gotCaller.Subject)
	assert.Equal(t, "user-1", gotID)
}

func TestDeleteUser_403(t *testing.T) {
	h := newHTTPHandler(services{users: &mockUserServicer{
		delete: func(context.Context, domain.Identity, string) error { return domain.ErrForbidden },
	}})

	rec := do(t, h, http.MethodDelete, "/api/users/user-1", "u2", nil)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "only the owner may modify this user", decode[handler.ErrorResponse](t, rec).Error.Message)
}
