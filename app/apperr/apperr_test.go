package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, fiber.StatusBadRequest, StatusCode(KindValidation))
	assert.Equal(t, fiber.StatusNotFound, StatusCode(KindNotFound))
	assert.Equal(t, fiber.StatusConflict, StatusCode(KindConflict))
	assert.Equal(t, fiber.StatusForbidden, StatusCode(KindForbidden))
	assert.Equal(t, fiber.StatusBadGateway, StatusCode(KindExternal))
	assert.Equal(t, fiber.StatusInternalServerError, StatusCode(KindInternal))
	assert.Equal(t, fiber.StatusInternalServerError, StatusCode(Kind("unknown")))
}

func TestIsKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFound("student not found"))

	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(errors.New("plain"), KindNotFound))
}

func TestUnwrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("Failed to fetch students", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "internal")
	assert.Contains(t, err.Error(), "connection refused")
}
