package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/cramdeck/cramdeck-api/internal/api/shared"
)

// requestWithUser returns the request with the given user ID placed in the
// context the way the auth middleware does.
func requestWithUser(r *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(r.Context(), shared.UserIDContextKey, userID)
	return r.WithContext(ctx)
}
