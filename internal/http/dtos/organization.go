package dtos

import "github.com/just-nibble/standup-service/internal/domain"

type OrganizationsResponse struct {
	Organizations []domain.Organization `json:"organizations"`
}

// OrganizationInput mirrors what the settings page posts back, which is the
// shape GitHub's org listing returns.
type OrganizationInput struct {
	ID          int64  `json:"id"`
	Login       string `json:"login"`
	AvatarURL   string `json:"avatar_url"`
	Description string `json:"description,omitempty"`
}

type SaveOrganizationsRequest struct {
	Organizations []OrganizationInput `json:"organizations"`
}

func (r SaveOrganizationsRequest) ToDomain() []domain.Organization {
	if r.Organizations == nil {
		return nil
	}
	orgs := make([]domain.Organization, 0, len(r.Organizations))
	for _, o := range r.Organizations {
		orgs = append(orgs, domain.Organization{
			ID:          o.ID,
			Login:       o.Login,
			AvatarURL:   o.AvatarURL,
			Description: o.Description,
		})
	}
	return orgs
}
