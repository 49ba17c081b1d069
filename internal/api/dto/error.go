package dto

// Error represents a standard error response. Kind tells the caller which
// category of failure occurred so the UI can pick the right copy.
type Error struct {
	Kind  string `json:"kind,omitempty" example:"quota_exceeded"`
	Error string `json:"error" example:"error message"`
}
