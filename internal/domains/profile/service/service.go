package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"path"
	"strings"

	"forge/config"
	"forge/infras/otel"
	"forge/infras/s3"
	"forge/internal/domains/profile/model"
	"forge/internal/domains/profile/model/dto"
	"forge/internal/domains/profile/repository"
	userModel "forge/internal/domains/user/model"
	userRepo "forge/internal/domains/user/repository"
	"forge/shared"
	"forge/shared/constant"
	gDto "forge/shared/dto"
	"forge/shared/failure"
	gModel "forge/shared/model"
	"forge/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const avatarDirectory = "avatars"

type Profile interface {
	GetOwn(ctx context.Context) (dto.ProfileResponse, error)
	Update(ctx context.Context, req dto.UpdateProfileRequest) (dto.ProfileResponse, error)
	UploadAvatar(ctx context.Context, req dto.UploadAvatarRequest) (dto.UploadAvatarResponse, error)
	GetByUsername(ctx context.Context, username string) (dto.PublicProfileResponse, error)
}

type serviceImpl struct {
	repo     repository.Profile
	userRepo userRepo.User
	cfg      *config.Config
	otel     otel.Otel
	s3       s3.S3
}

func New(repo repository.Profile, userRepo userRepo.User, cfg *config.Config, otel otel.Otel, s3 s3.S3) Profile {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		cfg:      cfg,
		otel:     otel,
		s3:       s3,
	}
}

// GetOwn returns the caller's profile, creating it from the user record on
// first access.
func (s *serviceImpl) GetOwn(ctx context.Context) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOwn")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.SignInRequired
	}

	profile, err := s.getOrCreate(ctx, user)
	if err != nil {
		return res, err
	}

	res.FromModel(profile)

	return res, nil
}

func (s *serviceImpl) getOrCreate(ctx context.Context, userID string) (profile model.Profile, err error) {
	profile, err = s.repo.Get(ctx, shared.FilterByID(userID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile")

		return profile, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.ID != constant.Empty {
		return profile, nil
	}

	account, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user for profile creation")

		return profile, fmt.Errorf("failed to get user for profile creation: %w", err)
	}

	if account.ID == constant.Empty {
		return profile, failure.NotFound("user not found")
	}

	profile = newProfileFromUser(account)

	if err = s.repo.Insert(ctx, profile); err != nil {
		log.Error().Err(err).Msg("failed to create profile")

		return profile, fmt.Errorf("failed to create profile: %w", err)
	}

	log.Info().Str("userID", userID).Msg("profile created lazily")

	return profile, nil
}

// newProfileFromUser seeds a profile from the auth record. The username is
// derived from the email local part with a random suffix to dodge collisions.
func newProfileFromUser(account userModel.User) model.Profile {
	localPart := account.Email
	if at := strings.Index(localPart, "@"); at > 0 {
		localPart = localPart[:at]
	}

	displayName := localPart
	if account.FullName != nil && *account.FullName != constant.Empty {
		displayName = *account.FullName
	}

	username := sanitizeUsername(localPart) + uuid.NewString()[:6]

	return model.Profile{
		ID:          account.ID,
		DisplayName: displayName,
		Username:    username,
		Email:       account.Email,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  account.ID,
			ModifiedBy: account.ID,
		},
	}
}

func sanitizeUsername(raw string) string {
	var sb strings.Builder

	for _, r := range strings.ToLower(raw) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}

	if sb.Len() == 0 {
		return "user"
	}

	return sb.String()
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateProfileRequest) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.SignInRequired
	}

	if _, err = s.getOrCreate(ctx, user); err != nil {
		return res, err
	}

	if req.Username != constant.Empty {
		taken, checkErr := s.usernameTaken(ctx, req.Username, user)
		if checkErr != nil {
			return res, checkErr
		}

		if taken {
			return res, failure.Conflict("username already taken")
		}
	}

	filter := shared.FilterByID(user, model.FieldID, model.TableName)
	updatedFields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update profile")

		return res, fmt.Errorf("failed to update profile: %w", err)
	}

	profile, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload profile")

		return res, fmt.Errorf("failed to reload profile: %w", err)
	}

	res.FromModel(profile)

	return res, nil
}

func (s *serviceImpl) usernameTaken(ctx context.Context, username, ownerID string) (bool, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldUsername, Table: model.TableName, Value: username, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldID, Table: model.TableName, Value: ownerID, Operator: gDto.FilterOperatorNotEq},
		},
	}

	taken, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check username availability")

		return false, fmt.Errorf("failed to check username availability: %w", err)
	}

	return taken, nil
}

func (s *serviceImpl) UploadAvatar(ctx context.Context, req dto.UploadAvatarRequest) (res dto.UploadAvatarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadAvatar")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.SignInRequired
	}

	profile, err := s.getOrCreate(ctx, user)
	if err != nil {
		return res, err
	}

	bucketName := s.cfg.External.S3.BucketName
	directory := path.Join(avatarDirectory, user)

	url, err := s.s3.UploadFile(ctx, bucketName, directory, req.AvatarFile, req.Avatar, req.Avatar.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload avatar")

		return res, fmt.Errorf("failed to upload avatar: %w", err)
	}

	filter := shared.FilterByID(user, model.FieldID, model.TableName)
	updatedFields := map[string]any{
		model.FieldAvatarURL:     url,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to store avatar url")

		return res, fmt.Errorf("failed to store avatar url: %w", err)
	}

	// The replaced avatar is an orphaned object once the new URL is stored.
	if profile.AvatarURL != nil && *profile.AvatarURL != constant.Empty && *profile.AvatarURL != url {
		oldObjectName := s.s3.GetObjectNameFromURL(bucketName, *profile.AvatarURL)
		if oldObjectName != constant.Empty {
			if delErr := s.s3.DeleteFile(ctx, bucketName, constant.Empty, oldObjectName); delErr != nil {
				log.Warn().Err(delErr).Msg("failed to delete previous avatar")
			}
		}
	}

	res.URL = url

	return res, nil
}

func (s *serviceImpl) GetByUsername(ctx context.Context, username string) (res dto.PublicProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByUsername")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldUsername, Table: model.TableName, Value: username, Operator: gDto.FilterOperatorEq},
		},
	}

	profile, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile by username")

		return res, fmt.Errorf("failed to get profile by username: %w", err)
	}

	if profile.ID == constant.Empty {
		return res, failure.NotFound("profile not found")
	}

	res.FromModel(profile)

	return res, nil
}
