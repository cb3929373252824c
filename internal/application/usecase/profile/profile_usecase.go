package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/devconnect/internal/domain/profile"
	"github.com/khoahotran/devconnect/internal/domain/user"
	"github.com/khoahotran/devconnect/pkg/apperror"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	userRepo    user.Repository
}

func NewProfileUseCase(profileRepo profile.Repository, userRepo user.Repository) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

func (uc *ProfileUseCase) GetCurrent(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	p, err := uc.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("There is no profile for this user")
		}
		return nil, err
	}
	return p, nil
}

func (uc *ProfileUseCase) List(ctx context.Context) ([]*profile.Profile, error) {
	return uc.profileRepo.List(ctx)
}

func (uc *ProfileUseCase) GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	p, err := uc.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("Profile not found")
		}
		return nil, err
	}
	return p, nil
}

// CreateOrUpdate merges the patch into the caller's stored profile, or
// creates one when none exists. Fields absent from the patch retain
// their prior values.
func (uc *ProfileUseCase) CreateOrUpdate(ctx context.Context, userID uuid.UUID, patch profile.Patch) (*profile.Profile, error) {
	p, err := uc.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, profile.ErrProfileNotFound) {
			return nil, err
		}
		p = &profile.Profile{
			UserID:     userID,
			Skills:     []string{},
			Social:     map[string]string{},
			Experience: []profile.Experience{},
			Education:  []profile.Education{},
		}
	}

	p.Apply(patch)
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProfileUseCase) AddExperience(ctx context.Context, userID uuid.UUID, exp profile.Experience) (*profile.Profile, error) {
	p, err := uc.GetCurrent(ctx, userID)
	if err != nil {
		return nil, err
	}

	exp.ID = uuid.New()
	p.AddExperience(exp)
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProfileUseCase) AddEducation(ctx context.Context, userID uuid.UUID, edu profile.Education) (*profile.Profile, error) {
	p, err := uc.GetCurrent(ctx, userID)
	if err != nil {
		return nil, err
	}

	edu.ID = uuid.New()
	p.AddEducation(edu)
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProfileUseCase) RemoveExperience(ctx context.Context, userID, experienceID uuid.UUID) (*profile.Profile, error) {
	p, err := uc.GetCurrent(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := p.RemoveExperience(experienceID); err != nil {
		return nil, apperror.NewBadRequest("The experience you're trying to delete doesn't exist")
	}
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProfileUseCase) RemoveEducation(ctx context.Context, userID, educationID uuid.UUID) (*profile.Profile, error) {
	p, err := uc.GetCurrent(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := p.RemoveEducation(educationID); err != nil {
		return nil, apperror.NewBadRequest("The education you're trying to delete doesn't exist")
	}
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteAccount removes the caller's profile and user record. There is
// no undo.
func (uc *ProfileUseCase) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := uc.profileRepo.Delete(ctx, userID); err != nil {
		return err
	}
	return uc.userRepo.Delete(ctx, userID)
}
