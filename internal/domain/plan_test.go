package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitsForTier(t *testing.T) {
	free := LimitsForTier(PlanFree)
	assert.Equal(t, 2, free.Projects)
	assert.Equal(t, 5, free.AIGenerations)

	pro := LimitsForTier(PlanPro)
	assert.Equal(t, Unlimited, pro.Projects)
	assert.Equal(t, Unlimited, pro.AIGenerations)

	// Unknown tiers fall back to the free caps
	unknown := LimitsForTier(PlanTier("platinum"))
	assert.Equal(t, free, unknown)
}

func TestIsValidPlanTier(t *testing.T) {
	assert.True(t, IsValidPlanTier("free"))
	assert.True(t, IsValidPlanTier("pro"))
	assert.True(t, IsValidPlanTier("agency"))
	assert.False(t, IsValidPlanTier("platinum"))
	assert.False(t, IsValidPlanTier(""))
}

func TestAccountQuotaRemaining(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		want    int
	}{
		{"fresh free account", Account{AIGenerationsUsed: 0, AIGenerationsLimit: 5}, 5},
		{"one slot left", Account{AIGenerationsUsed: 4, AIGenerationsLimit: 5}, 1},
		{"exhausted", Account{AIGenerationsUsed: 5, AIGenerationsLimit: 5}, 0},
		{"over limit clamps to zero", Account{AIGenerationsUsed: 7, AIGenerationsLimit: 5}, 0},
		{"unlimited", Account{AIGenerationsUsed: 9000, AIGenerationsLimit: -1}, Unlimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.account.QuotaRemaining())
		})
	}
}
