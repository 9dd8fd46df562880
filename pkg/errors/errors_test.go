package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesWrappedAppError(t *testing.T) {
	err := fmt.Errorf("submit review: %w", NotFound("Service item document", nil))

	assert.True(t, Is(err, CodeNotFound))
	assert.False(t, Is(err, CodeValidation))
	assert.False(t, Is(fmt.Errorf("plain"), CodeNotFound))
}

func TestConstructorsCarryStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, AuthRequired("sign in").Status)
	assert.Equal(t, http.StatusBadRequest, Validation("bad").Status)
	assert.Equal(t, http.StatusBadRequest, UploadError("too big", nil).Status)
	assert.Equal(t, http.StatusConflict, InvalidTransition("completed", "confirmed").Status)
	assert.Equal(t, http.StatusInternalServerError, OrderCreationFailed(nil).Status)
}

func TestErrorStringIncludesCause(t *testing.T) {
	err := TransactionFailure("Failed to submit review", fmt.Errorf("aborted"))

	assert.Equal(t, "TRANSACTION_FAILURE: Failed to submit review: aborted", err.Error())
	assert.Equal(t, "CONFLICT: exists", Conflict("exists").Error())
}
