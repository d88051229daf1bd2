package middleware

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestExtractUserID(t *testing.T) {
	// JSON numbers decode to float64
	id, err := extractUserID(jwt.MapClaims{"id": float64(42)})
	assert.NoError(t, err)
	assert.Equal(t, uint(42), id)

	id, err = extractUserID(jwt.MapClaims{"id": "17"})
	assert.NoError(t, err)
	assert.Equal(t, uint(17), id)

	id, err = extractUserID(jwt.MapClaims{"id": 9})
	assert.NoError(t, err)
	assert.Equal(t, uint(9), id)
}

func TestExtractUserIDFailures(t *testing.T) {
	_, err := extractUserID(jwt.MapClaims{})
	assert.Error(t, err)

	_, err = extractUserID(jwt.MapClaims{"id": "not-a-number"})
	assert.Error(t, err)

	_, err = extractUserID(jwt.MapClaims{"id": true})
	assert.Error(t, err)
}
