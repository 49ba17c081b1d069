package service

import (
	"strings"

	"github.com/atelierhq/design-studio-api/internal/domain"
)

// ProviderOutput is everything the generation provider produced for one
// request, in the provider's own ordering.
type ProviderOutput struct {
	Description  string
	ImageURLs    []string
	ColorPalette []string
	ProductList  []string
}

// ComposeDesign assembles a validated request and the provider's output into
// one Design record. Pure; list order is preserved exactly as produced.
func ComposeDesign(accountID string, req GenerationRequest, out ProviderOutput) *domain.Design {
	return &domain.Design{
		ProjectID:    req.ProjectID,
		AccountID:    accountID,
		RoomType:     req.RoomType,
		Style:        req.Style,
		Budget:       req.Budget,
		Keywords:     strings.Join(req.Keywords, ", "),
		ImageURLs:    append(domain.StringList{}, out.ImageURLs...),
		ColorPalette: append(domain.StringList{}, out.ColorPalette...),
		ProductList:  append(domain.StringList{}, out.ProductList...),
		Description:  out.Description,
	}
}
