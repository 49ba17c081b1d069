package domain

import "slices"

// PlanTier represents a subscription tier for an account
type PlanTier string

const (
	// PlanFree is the default tier, limited to a small number of projects and AI generations
	PlanFree PlanTier = "free"

	// PlanPro removes the project and generation caps for individual designers
	PlanPro PlanTier = "pro"

	// PlanAgency removes the caps and is intended for multi-designer studios
	PlanAgency PlanTier = "agency"
)

// Unlimited marks a limit that is not enforced
const Unlimited = -1

// ValidPlanTiers contains all valid subscription tiers
var ValidPlanTiers = []PlanTier{PlanFree, PlanPro, PlanAgency}

// PlanLimits holds the per-tier caps
type PlanLimits struct {
	Projects      int
	AIGenerations int
}

var planLimits = map[PlanTier]PlanLimits{
	PlanFree:   {Projects: 2, AIGenerations: 5},
	PlanPro:    {Projects: Unlimited, AIGenerations: Unlimited},
	PlanAgency: {Projects: Unlimited, AIGenerations: Unlimited},
}

// IsValidPlanTier checks if a given tier is valid
func IsValidPlanTier(tier string) bool {
	return slices.Contains(ValidPlanTiers, PlanTier(tier))
}

// LimitsForTier returns the caps for a tier, falling back to free-tier caps
// for unknown tiers
func LimitsForTier(tier PlanTier) PlanLimits {
	if limits, ok := planLimits[tier]; ok {
		return limits
	}
	return planLimits[PlanFree]
}

// BypassesQuota reports whether the tier is exempt from the AI generation quota
func (t PlanTier) BypassesQuota() bool {
	return LimitsForTier(t).AIGenerations == Unlimited
}
