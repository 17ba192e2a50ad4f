package handlers

import (
	"errors"
	"net/http"

	"github.com/ideavault/backend/internal/extid"
	"github.com/ideavault/backend/internal/models"
	"github.com/ideavault/backend/internal/target"
	"github.com/labstack/echo/v4"
)

// getUserIDFromContext extracts the authenticated user's ID from the JWT
// claims stored by the auth middleware; 0 means not authenticated.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// contentOwnerID extracts the owning user of a resolved target entity.
// Used to pick the notification recipient for likes and comments.
func contentOwnerID(entity interface{}) (uint, bool) {
	switch e := entity.(type) {
	case *models.Idea:
		return e.CreatorID, true
	case *models.Memo:
		return e.CreatorID, true
	case *models.Comment:
		return e.CommentorID, true
	}
	return 0, false
}

// httpErrorForTarget maps the reference-resolution error taxonomy onto
// HTTP statuses. Corrupt references are a data-integrity bug signal, not a
// user error; callers log them before calling this.
func httpErrorForTarget(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, target.ErrInvalidKind),
		errors.Is(err, target.ErrMissingTarget),
		errors.Is(err, target.ErrAmbiguousTarget),
		errors.Is(err, extid.ErrInvalid):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, target.ErrTargetNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, target.ErrCorruptReference):
		return echo.NewHTTPError(http.StatusInternalServerError, "corrupt target reference")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
