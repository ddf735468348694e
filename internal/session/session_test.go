package session

import (
	"testing"
	"time"

	"ecofinds-be/internal/cart"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Identity(t *testing.T) {
	s := New()
	assert.NotEmpty(t, s.ID)
	assert.False(t, s.Authenticated())

	s.Login(42)
	require.True(t, s.Authenticated())
	assert.Equal(t, uint(42), *s.UserID)

	s.Logout()
	assert.False(t, s.Authenticated())

	// Logout is idempotent.
	s.Logout()
	assert.False(t, s.Authenticated())
}

func TestSession_Flashes(t *testing.T) {
	s := New()
	s.Flash("saved")
	s.Flash("welcome back")

	assert.Equal(t, []string{"saved", "welcome back"}, s.DrainFlashes())
	assert.Empty(t, s.DrainFlashes())
}

func TestSession_CartRoundTrip(t *testing.T) {
	s := New()
	s.Cart = s.Cart.Add(cart.Entry{ProductID: 1, Price: decimal.RequireFromString("10.0")})

	assert.Equal(t, 1, s.Cart.Len())
	assert.True(t, s.Cart.Total().Equal(decimal.RequireFromString("10.0")))
}

func TestSignAndParseToken(t *testing.T) {
	secret := []byte("test-secret")

	t.Run("RoundTrip", func(t *testing.T) {
		token, err := SignToken("sess-123", secret, time.Hour)
		require.NoError(t, err)

		id, err := ParseToken(token, secret)
		require.NoError(t, err)
		assert.Equal(t, "sess-123", id)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := SignToken("sess-123", secret, time.Hour)
		require.NoError(t, err)

		_, err = ParseToken(token, []byte("other-secret"))
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := SignToken("sess-123", secret, -time.Minute)
		require.NoError(t, err)

		_, err = ParseToken(token, secret)
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParseToken("not-a-token", secret)
		assert.Error(t, err)
	})
}
