package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atelierhq/design-studio-api/internal/domain"
)

func TestComposeDesign_PreservesListOrder(t *testing.T) {
	out := ProviderOutput{
		Description:  "A calm bedroom.",
		ImageURLs:    []string{"https://img/3.png", "https://img/1.png", "https://img/2.png"},
		ColorPalette: []string{"#2C2A26", "#FFFFFF", "#B0A695"},
		ProductList:  []string{"bed frame", "nightstand", "wool rug"},
	}
	req := GenerationRequest{ProjectID: "p1", RoomType: "bedroom", Style: "japandi"}

	design := ComposeDesign("account1", req, out)

	assert.Equal(t, domain.StringList{"https://img/3.png", "https://img/1.png", "https://img/2.png"}, design.ImageURLs)
	assert.Equal(t, domain.StringList{"#2C2A26", "#FFFFFF", "#B0A695"}, design.ColorPalette)
	assert.Equal(t, domain.StringList{"bed frame", "nightstand", "wool rug"}, design.ProductList)
}

func TestComposeDesign_Fields(t *testing.T) {
	budget := 1200.0
	req := GenerationRequest{
		ProjectID: "p1",
		RoomType:  "home office",
		Style:     "industrial",
		Budget:    &budget,
		Keywords:  []string{"exposed brick", "steel shelving"},
	}

	design := ComposeDesign("account1", req, ProviderOutput{Description: "desc"})

	assert.Equal(t, "account1", design.AccountID)
	assert.Equal(t, "p1", design.ProjectID)
	assert.Equal(t, "home office", design.RoomType)
	assert.Equal(t, "industrial", design.Style)
	assert.Equal(t, &budget, design.Budget)
	assert.Equal(t, "exposed brick, steel shelving", design.Keywords)
	assert.Equal(t, "desc", design.Description)
	assert.Empty(t, design.ImageURLs)
}

func TestComposeDesign_DoesNotAliasProviderSlices(t *testing.T) {
	images := []string{"https://img/1.png"}
	design := ComposeDesign("account1", GenerationRequest{ProjectID: "p1", RoomType: "bedroom", Style: "modern"}, ProviderOutput{ImageURLs: images})

	images[0] = "mutated"

	assert.Equal(t, domain.StringList{"https://img/1.png"}, design.ImageURLs)
}
