package service

import "strings"

// GenerationRequest is the transient input of one design generation. It is
// never persisted; only the composed result is.
type GenerationRequest struct {
	ProjectID string
	RoomType  string
	Style     string
	Budget    *float64
	Keywords  []string
}

// ValidateGenerationRequest checks required fields and returns a normalized
// copy with trimmed strings. It has no side effects; callers must use the
// returned request, not the original.
func ValidateGenerationRequest(req GenerationRequest) (GenerationRequest, error) {
	req.ProjectID = strings.TrimSpace(req.ProjectID)
	req.RoomType = strings.TrimSpace(req.RoomType)
	req.Style = strings.TrimSpace(req.Style)

	if req.ProjectID == "" {
		return GenerationRequest{}, &ValidationError{Field: "project_id", Reason: "must not be empty"}
	}
	if req.RoomType == "" {
		return GenerationRequest{}, &ValidationError{Field: "room_type", Reason: "must not be empty"}
	}
	if req.Style == "" {
		return GenerationRequest{}, &ValidationError{Field: "style", Reason: "must not be empty"}
	}
	if req.Budget != nil && *req.Budget < 0 {
		return GenerationRequest{}, &ValidationError{Field: "budget", Reason: "must be a non-negative number"}
	}

	if len(req.Keywords) > 0 {
		keywords := make([]string, 0, len(req.Keywords))
		for _, kw := range req.Keywords {
			kw = strings.TrimSpace(kw)
			if kw != "" {
				keywords = append(keywords, kw)
			}
		}
		req.Keywords = keywords
	}

	return req, nil
}
