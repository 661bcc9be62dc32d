package impl

import (
	"context"
	"testing"

	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	mockRepo "inkwell/internal/mocks/repository"
	"inkwell/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)

	return profileServiceFixtures{
		service:     NewProfileService(profileRepo, newDiscardLogger()),
		profileRepo: profileRepo,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	expected := &entity.Profile{UserID: "u1", FirstName: "Ada", LastName: "Lovelace"}

	fx.profileRepo.EXPECT().FindByUserID(ctx, "u1").Return(expected, nil)

	profile, err := fx.service.GetProfile(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, expected, profile)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindByUserID(ctx, "u1").Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.GetProfile(ctx, "u1")

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_GetProfile_BackendError(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindByUserID(ctx, "u1").Return(nil, errors.New("connection reset"))

	_, err := fx.service.GetProfile(ctx, "u1")

	assert.ErrorIs(t, err, domainerrors.ErrBackendUnavailable)
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	existing := &entity.Profile{UserID: "u1", FirstName: "Ada", LastName: "Byron", Email: "ada@inkwell.test"}

	fx.profileRepo.EXPECT().FindByUserID(ctx, "u1").Return(existing, nil)
	fx.profileRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.LastName == "Lovelace" && p.FirstName == "Ada"
		})).
		Return(nil)

	profile, err := fx.service.UpdateProfile(ctx, "u1", entity.ProfilePatch{LastName: strPtr(" Lovelace ")})

	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", profile.DisplayName())
}

func TestProfileService_UpdateProfile_Validation(t *testing.T) {
	tests := []struct {
		name  string
		patch entity.ProfilePatch
	}{
		{name: "empty patch", patch: entity.ProfilePatch{}},
		{name: "blank first name", patch: entity.ProfilePatch{FirstName: strPtr("  ")}},
		{name: "invalid email", patch: entity.ProfilePatch{Email: strPtr("not-an-email")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)

			_, err := fx.service.UpdateProfile(context.Background(), "u1", tt.patch)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestProfileService_RequiresUser(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.GetProfile(context.Background(), "")
	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)

	_, err = fx.service.UpdateProfile(context.Background(), "", entity.ProfilePatch{FirstName: strPtr("A")})
	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
}
