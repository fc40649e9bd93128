package handlers

import (
	"time"

	"orgdir/application/queries"
	"orgdir/domain/core/entities"
)

// Mapping from domain entities to the query read models. Handlers never
// hand entities to the transport layer directly.

func activityResult(a *entities.Activity) queries.ActivityResult {
	result := queries.ActivityResult{
		ID:        a.ID().String(),
		Name:      a.Name().String(),
		Level:     a.Level(),
		CreatedAt: a.CreatedAt().Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt().Format(time.RFC3339),
	}
	if !a.IsRoot() {
		result.ParentID = a.ParentID().String()
	}
	return result
}

func buildingResult(b *entities.Building) queries.BuildingResult {
	return queries.BuildingResult{
		ID:        b.ID().String(),
		Address:   b.Address().String(),
		Latitude:  b.Coordinates().Latitude(),
		Longitude: b.Coordinates().Longitude(),
		CreatedAt: b.CreatedAt().Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt().Format(time.RFC3339),
	}
}

func organizationResult(o *entities.Organization) queries.OrganizationResult {
	phones := make([]string, 0, len(o.Phones()))
	for _, phone := range o.Phones() {
		phones = append(phones, phone.String())
	}

	activityNames := make([]string, 0, len(o.Activities()))
	for _, activity := range o.Activities() {
		activityNames = append(activityNames, activity.Name().String())
	}

	return queries.OrganizationResult{
		ID:         o.ID().String(),
		Name:       o.Name().String(),
		Building:   buildingResult(o.Building()),
		Phones:     phones,
		Activities: activityNames,
		CreatedAt:  o.CreatedAt().Format(time.RFC3339),
		UpdatedAt:  o.UpdatedAt().Format(time.RFC3339),
	}
}

func organizationsPage(items []*entities.Organization, total, limit, offset int) *queries.OrganizationsPageResult {
	results := make([]queries.OrganizationResult, 0, len(items))
	for _, org := range items {
		results = append(results, organizationResult(org))
	}
	return &queries.OrganizationsPageResult{
		Items:  results,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
}

func userResult(u *entities.User) queries.UserResult {
	return queries.UserResult{
		ID:        u.ID().String(),
		Username:  u.Username().String(),
		CreatedAt: u.CreatedAt().Format(time.RFC3339),
	}
}

func apiKeyResult(k *entities.APIKey) queries.APIKeyResult {
	result := queries.APIKeyResult{
		Key:       k.Key(),
		UserID:    k.UserID().String(),
		CreatedAt: k.CreatedAt().Format(time.RFC3339),
	}
	if k.LastUsed() != nil {
		result.LastUsed = k.LastUsed().Format(time.RFC3339)
	}
	if k.BannedAt() != nil {
		result.BannedAt = k.BannedAt().Format(time.RFC3339)
	}
	return result
}
