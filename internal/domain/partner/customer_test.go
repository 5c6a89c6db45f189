package partner

import (
	"testing"

	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/catalog"
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCustomer(t *testing.T, balance float64) *Customer {
	t.Helper()
	c, err := NewCustomer("Ana Souza", "ana@example.com", "secret123",
		decimal.NewFromFloat(balance), catalog.TasteProfileSweetMild)
	require.NoError(t, err)
	c.ClearEvents()
	return c
}

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer with lowered email and hashed password", func(t *testing.T) {
		c, err := NewCustomer("Ana", "Ana@Example.COM", "secret123",
			decimal.NewFromInt(100), catalog.TasteProfileBrightFruity)

		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", c.Email)
		assert.True(t, c.Balance.Equal(decimal.NewFromInt(100)))
		assert.NotEqual(t, "secret123", c.PasswordHash)
		assert.True(t, c.VerifyPassword("secret123"))
		assert.False(t, c.VerifyPassword("wrong"))
		assert.Len(t, c.PendingEvents(), 1)
	})

	t.Run("rejects invalid taste profile", func(t *testing.T) {
		_, err := NewCustomer("Ana", "ana@example.com", "secret123",
			decimal.Zero, "smoky_bitter")
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_TASTE_PROFILE", domainErr.Code)
	})

	t.Run("rejects negative initial balance", func(t *testing.T) {
		_, err := NewCustomer("Ana", "ana@example.com", "secret123",
			decimal.NewFromInt(-1), catalog.TasteProfileSweetMild)
		assert.Error(t, err)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := NewCustomer("Ana", "not-an-email", "secret123",
			decimal.Zero, catalog.TasteProfileSweetMild)
		assert.Error(t, err)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewCustomer("Ana", "ana@example.com", "abc",
			decimal.Zero, catalog.TasteProfileSweetMild)
		assert.Error(t, err)
	})
}

func TestCustomerBalance(t *testing.T) {
	t.Run("add balance", func(t *testing.T) {
		c := newTestCustomer(t, 50)
		require.NoError(t, c.AddBalance(decimal.NewFromInt(25)))
		assert.True(t, c.Balance.Equal(decimal.NewFromInt(75)))
		assert.Len(t, c.PendingEvents(), 1)
	})

	t.Run("add non-positive amount fails", func(t *testing.T) {
		c := newTestCustomer(t, 50)
		assert.Error(t, c.AddBalance(decimal.Zero))
		assert.Error(t, c.AddBalance(decimal.NewFromInt(-5)))
	})

	t.Run("deduct balance", func(t *testing.T) {
		c := newTestCustomer(t, 100)
		require.NoError(t, c.DeductBalance(decimal.NewFromInt(30)))
		assert.True(t, c.Balance.Equal(decimal.NewFromInt(70)))
	})

	t.Run("deduct beyond balance fails and leaves balance intact", func(t *testing.T) {
		c := newTestCustomer(t, 10)
		err := c.DeductBalance(decimal.NewFromInt(11))

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INSUFFICIENT_BALANCE", domainErr.Code)
		assert.True(t, c.Balance.Equal(decimal.NewFromInt(10)))
	})

	t.Run("deduct exact balance succeeds", func(t *testing.T) {
		c := newTestCustomer(t, 10)
		require.NoError(t, c.DeductBalance(decimal.NewFromInt(10)))
		assert.True(t, c.Balance.IsZero())
	})

	t.Run("can afford", func(t *testing.T) {
		c := newTestCustomer(t, 10)
		assert.True(t, c.CanAfford(decimal.NewFromInt(10)))
		assert.False(t, c.CanAfford(decimal.NewFromFloat(10.01)))
	})
}

func TestCustomerRecommendations(t *testing.T) {
	c := newTestCustomer(t, 0)
	assert.Equal(t, catalog.TasteProfileSweetMild.Recommendations(), c.RecommendedCoffees())
}

func TestCustomerUpdate(t *testing.T) {
	c := newTestCustomer(t, 0)

	require.NoError(t, c.Update("Ana Paula", "ana.paula@example.com", catalog.TasteProfileBalancedComplete))
	assert.Equal(t, "Ana Paula", c.Name)
	assert.Equal(t, catalog.TasteProfileBalancedComplete, c.Profile)

	assert.Error(t, c.Update("Ana", "ana@example.com", "invalid"))
}

func TestChangePassword(t *testing.T) {
	c := newTestCustomer(t, 0)

	t.Run("wrong current password fails", func(t *testing.T) {
		err := c.ChangePassword("wrong", "newsecret")
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("short new password fails", func(t *testing.T) {
		assert.Error(t, c.ChangePassword("secret123", "abc"))
	})

	t.Run("changes password", func(t *testing.T) {
		require.NoError(t, c.ChangePassword("secret123", "newsecret"))
		assert.True(t, c.VerifyPassword("newsecret"))
		assert.False(t, c.VerifyPassword("secret123"))
	})
}
