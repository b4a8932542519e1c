package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"forge/config"
	"forge/infras/otel/mocks"
	s3Mocks "forge/infras/s3/mocks"
	"forge/internal/domains/profile/model"
	"forge/internal/domains/profile/model/dto"
	profileMocks "forge/internal/domains/profile/repository/mocks"
	"forge/internal/domains/profile/service"
	userModel "forge/internal/domains/user/model"
	userMocks "forge/internal/domains/user/repository/mocks"
	"forge/shared/constant"
)

func TestProfileService_GetOwn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := profileMocks.NewMockProfile(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockUserRepo, cfg, mockOtel, mockS3)

	t.Run("anonymous request rejected", func(t *testing.T) {
		_, err := svc.GetOwn(context.Background())

		assert.Error(t, err)
	})

	t.Run("existing profile returned as is", func(t *testing.T) {
		profile := model.Profile{
			ID:          "test-user-id",
			DisplayName: "Jamie Smith",
			Username:    "jamiesmith",
			Email:       "jamie@example.com",
		}

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(profile, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		result, err := svc.GetOwn(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "jamiesmith", result.Username)
	})

	t.Run("profile created lazily from the user record", func(t *testing.T) {
		fullName := "Jamie Smith"

		account := userModel.User{
			ID:       "test-user-id",
			Email:    "jamie.smith@example.com",
			FullName: &fullName,
		}

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Profile{}, nil)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(account, nil)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, profile model.Profile) error {
				assert.Equal(t, "test-user-id", profile.ID)
				assert.Equal(t, "Jamie Smith", profile.DisplayName)
				assert.True(t, strings.HasPrefix(profile.Username, "jamiesmith"))
				assert.Greater(t, len(profile.Username), len("jamiesmith"))

				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		result, err := svc.GetOwn(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "Jamie Smith", result.DisplayName)
		assert.Equal(t, "jamie.smith@example.com", result.Email)
	})

	t.Run("unknown user cannot get a profile", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Profile{}, nil)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "ghost-user-id")
		_, err := svc.GetOwn(ctx)

		assert.Error(t, err)
	})
}

func TestProfileService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := profileMocks.NewMockProfile(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockUserRepo, cfg, mockOtel, mockS3)

	existing := model.Profile{
		ID:          "test-user-id",
		DisplayName: "Jamie Smith",
		Username:    "jamiesmith",
		Email:       "jamie@example.com",
	}

	tests := []struct {
		name      string
		req       dto.UpdateProfileRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdateProfileRequest{DisplayName: "Jamie S."},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existing, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				updated := existing
				updated.DisplayName = "Jamie S."

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(updated, nil)
			},
			wantErr: false,
		},
		{
			name: "username conflict",
			req:  dto.UpdateProfileRequest{Username: "takenname"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existing, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "username change to a free name",
			req:  dto.UpdateProfileRequest{Username: "freshname"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existing, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				updated := existing
				updated.Username = "freshname"

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(updated, nil)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			_, err := svc.Update(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProfileService_UploadAvatar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := profileMocks.NewMockProfile(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.External.S3.BucketName = "test-bucket"

	svc := service.New(mockRepo, mockUserRepo, cfg, mockOtel, mockS3)

	existing := model.Profile{ID: "test-user-id", Username: "jamiesmith", Email: "jamie@example.com"}

	req := dto.UploadAvatarRequest{
		Avatar: &multipart.FileHeader{Filename: "avatar.png"},
	}

	t.Run("successful upload", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existing, nil)

		mockS3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/avatars/test-user-id/avatar.png", nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "https://cdn.example.com/avatars/test-user-id/avatar.png", fields[model.FieldAvatarURL])

				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		result, err := svc.UploadAvatar(ctx, req)

		assert.NoError(t, err)
		assert.NotEmpty(t, result.URL)
	})

	t.Run("replaces the previous avatar", func(t *testing.T) {
		oldURL := "https://cdn.example.com/avatars/test-user-id/old.png"

		withAvatar := existing
		withAvatar.AvatarURL = &oldURL

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(withAvatar, nil)

		mockS3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/avatars/test-user-id/new.png", nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		mockS3.EXPECT().
			GetObjectNameFromURL("test-bucket", oldURL).
			Return("avatars/test-user-id/old.png")

		mockS3.EXPECT().
			DeleteFile(gomock.Any(), "test-bucket", "", "avatars/test-user-id/old.png").
			Return(nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		result, err := svc.UploadAvatar(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/avatars/test-user-id/new.png", result.URL)
	})

	t.Run("previous avatar delete failure does not fail the upload", func(t *testing.T) {
		oldURL := "https://cdn.example.com/avatars/test-user-id/old.png"

		withAvatar := existing
		withAvatar.AvatarURL = &oldURL

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(withAvatar, nil)

		mockS3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/avatars/test-user-id/new.png", nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		mockS3.EXPECT().
			GetObjectNameFromURL("test-bucket", oldURL).
			Return("avatars/test-user-id/old.png")

		mockS3.EXPECT().
			DeleteFile(gomock.Any(), "test-bucket", "", "avatars/test-user-id/old.png").
			Return(errors.New("object already gone"))

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		result, err := svc.UploadAvatar(ctx, req)

		assert.NoError(t, err)
		assert.NotEmpty(t, result.URL)
	})

	t.Run("upload error", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existing, nil)

		mockS3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("s3 upload error"))

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := svc.UploadAvatar(ctx, req)

		assert.Error(t, err)
	})

	t.Run("anonymous upload rejected", func(t *testing.T) {
		_, err := svc.UploadAvatar(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestProfileService_GetByUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := profileMocks.NewMockProfile(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockUserRepo, cfg, mockOtel, mockS3)

	t.Run("public view hides contact details", func(t *testing.T) {
		phone := "+447700900123"

		profile := model.Profile{
			ID:          "test-user-id",
			DisplayName: "Jamie Smith",
			Username:    "jamiesmith",
			Email:       "jamie@example.com",
			Phone:       &phone,
		}

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(profile, nil)

		result, err := svc.GetByUsername(context.Background(), "jamiesmith")

		assert.NoError(t, err)
		assert.Equal(t, "Jamie Smith", result.DisplayName)
		assert.Equal(t, "jamiesmith", result.Username)
	})

	t.Run("profile not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Profile{}, nil)

		_, err := svc.GetByUsername(context.Background(), "nobody")

		assert.Error(t, err)
	})
}
