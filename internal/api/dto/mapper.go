package dto

import (
	"github.com/atelierhq/design-studio-api/internal/domain"
)

// FromAccount converts an Account domain model to an AccountResponse DTO
func FromAccount(account *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:                 account.ID,
		Name:               account.Name,
		Email:              account.Email,
		PlanTier:           string(account.Tier()),
		AIGenerationsUsed:  account.AIGenerationsUsed,
		AIGenerationsLimit: account.AIGenerationsLimit,
		CreatedAt:          account.CreatedAt,
		UpdatedAt:          account.UpdatedAt,
	}
}

// FromProject converts a Project domain model to a ProjectResponse DTO
func FromProject(project *domain.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          project.ID,
		AccountID:   project.AccountID,
		Title:       project.Title,
		Description: project.Description,
		Status:      project.Status,
		Budget:      project.Budget,
		Spent:       project.Spent,
		Deadline:    project.Deadline,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

func FromProjects(projects []domain.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = *FromProject(&project)
	}
	return responses
}

// FromDesign converts a Design domain model to a DesignResponse DTO
func FromDesign(design *domain.Design) *DesignResponse {
	return &DesignResponse{
		ID:           design.ID,
		ProjectID:    design.ProjectID,
		AccountID:    design.AccountID,
		RoomType:     design.RoomType,
		Style:        design.Style,
		Budget:       design.Budget,
		Keywords:     design.Keywords,
		ImageURLs:    design.ImageURLs,
		ColorPalette: design.ColorPalette,
		Description:  design.Description,
		ProductList:  design.ProductList,
		CreatedAt:    design.CreatedAt,
	}
}

func FromDesigns(designs []domain.Design) []DesignResponse {
	responses := make([]DesignResponse, len(designs))
	for i, design := range designs {
		responses[i] = *FromDesign(&design)
	}
	return responses
}

// FromActivity converts an Activity domain model to an ActivityResponse DTO
func FromActivity(activity *domain.Activity) *ActivityResponse {
	return &ActivityResponse{
		ID:           activity.ID,
		AccountID:    activity.AccountID,
		Action:       activity.Action,
		ResourceType: activity.ResourceType,
		ResourceID:   activity.ResourceID,
		Metadata:     activity.Metadata,
		CreatedAt:    activity.CreatedAt,
	}
}

func FromActivities(activities []domain.Activity) []ActivityResponse {
	responses := make([]ActivityResponse, len(activities))
	for i, activity := range activities {
		responses[i] = *FromActivity(&activity)
	}
	return responses
}
