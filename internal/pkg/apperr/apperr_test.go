package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodeMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{Unauthorized("no token"), 401},
		{Forbidden("not yours"), 403},
		{NotFound("admin not found"), 404},
		{InvalidInput("invalid amount"), 400},
		{Conflict("request already processed"), 409},
		{InsufficientFunds("insufficient balance"), 409},
		{Internal(errors.New("pq: connection refused")), 500},
		{errors.New("plain error"), 500},
	}

	for _, c := range cases {
		assert.Equal(t, c.code, StatusCode(c.err), c.err.Error())
	}
}

func TestPublicMessageMasksInternal(t *testing.T) {
	assert.Equal(t, "Something went wrong", PublicMessage(Internal(errors.New("pq: duplicate key"))))
	assert.Equal(t, "Something went wrong", PublicMessage(errors.New("raw driver error")))
	assert.Equal(t, "Insufficient balance in your admin wallet", PublicMessage(InsufficientFunds("Insufficient balance in your admin wallet")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := NotFound("wallet not found")
	wrapped := fmt.Errorf("processing fund request: %w", inner)

	assert.True(t, IsKind(wrapped, KindNotFound))
	assert.Equal(t, 404, StatusCode(wrapped))
}
