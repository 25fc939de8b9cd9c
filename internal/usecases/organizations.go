package usecases

import (
	"context"
	"fmt"

	"github.com/just-nibble/standup-service/internal/domain"
	"github.com/just-nibble/standup-service/internal/gitsource"
	"github.com/just-nibble/standup-service/internal/repository"
	"github.com/just-nibble/standup-service/pkg/errcodes"
)

type OrganizationUsecase interface {
	// ListRemote lists the organizations visible to the user on GitHub.
	ListRemote(ctx context.Context, user domain.User) ([]domain.Organization, error)
	// ListTracked lists the user's persisted tracked subset.
	ListTracked(ctx context.Context, userID uint) ([]domain.Organization, error)
	// SaveTracked replaces the user's tracked subset with the given set.
	SaveTracked(ctx context.Context, userID uint, orgs []domain.Organization) error
}

type organizationUsecase struct {
	orgStore repository.OrganizationStore
	github   gitsource.Factory
}

func NewOrganizationUsecase(orgStore repository.OrganizationStore, github gitsource.Factory) OrganizationUsecase {
	return &organizationUsecase{orgStore: orgStore, github: github}
}

func (u *organizationUsecase) ListRemote(ctx context.Context, user domain.User) ([]domain.Organization, error) {
	return u.github(user.AccessToken).ListOrganizations(ctx)
}

func (u *organizationUsecase) ListTracked(ctx context.Context, userID uint) ([]domain.Organization, error) {
	return u.orgStore.ListActiveByUser(ctx, userID)
}

func (u *organizationUsecase) SaveTracked(ctx context.Context, userID uint, orgs []domain.Organization) error {
	if orgs == nil {
		return fmt.Errorf("%w: organizations array is required", errcodes.ErrValidation)
	}
	return u.orgStore.ReplaceTrackedSet(ctx, userID, orgs)
}
