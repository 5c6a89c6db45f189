package catalog

import (
	"testing"

	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTasteProfile(t *testing.T) {
	t.Run("accepts every predefined profile", func(t *testing.T) {
		for _, p := range AllTasteProfiles() {
			got, err := NewTasteProfile(p.String())
			require.NoError(t, err)
			assert.Equal(t, p, got)
		}
	})

	t.Run("rejects unknown profile", func(t *testing.T) {
		_, err := NewTasteProfile("smoky_bitter")
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_TASTE_PROFILE", domainErr.Code)
	})

	t.Run("rejects empty profile", func(t *testing.T) {
		_, err := NewTasteProfile("")
		assert.Error(t, err)
	})
}

func TestTasteProfileRecommendations(t *testing.T) {
	tests := []struct {
		profile TasteProfile
		count   int
	}{
		{TasteProfileSweetMild, 2},
		{TasteProfileBrightFruity, 3},
		{TasteProfileBoldFullBodied, 2},
		{TasteProfileBalancedComplete, 2},
	}

	for _, tt := range tests {
		t.Run(tt.profile.String(), func(t *testing.T) {
			recs := tt.profile.Recommendations()
			assert.Len(t, recs, tt.count)
		})
	}

	t.Run("invalid profile has no recommendations", func(t *testing.T) {
		assert.Nil(t, TasteProfile("unknown").Recommendations())
	})
}

func TestTasteProfileDisplayName(t *testing.T) {
	assert.Equal(t, "Sweet and Mild", TasteProfileSweetMild.DisplayName())
	assert.Equal(t, "Balanced and Complete", TasteProfileBalancedComplete.DisplayName())
}
