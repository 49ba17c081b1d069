package utils

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	ClaimsKey    ContextKey = "claims"
	AccountIDKey ContextKey = "account_id"
	PlanTierKey  ContextKey = "plan_tier"
)

var (
	ErrNoClaimsInContext    = errors.New("no claims found in context")
	ErrInvalidClaimsType    = errors.New("invalid claims type")
	ErrNoAccountIDInClaims  = errors.New("no account_id found in claims")
	ErrInvalidAccountIDType = errors.New("account_id must be a string")
)

func GetAccountIDFromContext(c context.Context) (string, error) {
	claims, exists := c.Value(ClaimsKey).(jwt.MapClaims)
	if !exists {
		return "", ErrNoClaimsInContext
	}

	accountID, exists := claims[string(AccountIDKey)]
	if !exists {
		return "", ErrNoAccountIDInClaims
	}

	accountIDStr, ok := accountID.(string)
	if !ok {
		return "", ErrInvalidAccountIDType
	}

	return accountIDStr, nil
}

// GetPlanTierFromContext returns the caller's plan tier claim, defaulting to
// an empty string when absent. The tier claim is informational; the quota
// decision always reads the account row.
func GetPlanTierFromContext(c context.Context) string {
	claims, exists := c.Value(ClaimsKey).(jwt.MapClaims)
	if !exists {
		return ""
	}
	tier, _ := claims[string(PlanTierKey)].(string)
	return tier
}
