package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	apperrors "cookenu/internal/errors"
	"cookenu/internal/model"
)

func TestUserService_GetUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, "u1").Return(&model.User{ID: "u1", Name: "Ana"}, nil)
	mockRepo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)
	svc := NewUserService(mockRepo, nil, time.Hour, nil)

	user, err := svc.GetProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)

	_, err = svc.GetUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestUserService_Follow(t *testing.T) {
	tests := []struct {
		name          string
		followerID    string
		targetID      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:       "follows existing user",
			followerID: "a",
			targetID:   "b",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, "b").Return(&model.User{ID: "b"}, nil)
				m.On("InsertFollow", mock.Anything, "a", "b").Return(nil)
			},
		},
		{
			name:          "cannot follow self",
			followerID:    "a",
			targetID:      "a",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrCannotFollowSelf,
		},
		{
			name:       "target does not exist",
			followerID: "a",
			targetID:   "ghost",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, "ghost").Return(nil, nil)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)
			svc := NewUserService(mockRepo, nil, time.Hour, nil)

			err := svc.Follow(context.Background(), tt.followerID, tt.targetID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Unfollow(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, "b").Return(&model.User{ID: "b"}, nil)
	mockRepo.On("DeleteFollow", mock.Anything, "a", "b").Return(nil).Twice()
	mockRepo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)
	svc := NewUserService(mockRepo, nil, time.Hour, nil)

	require.NoError(t, svc.Unfollow(context.Background(), "a", "b"))
	require.NoError(t, svc.Unfollow(context.Background(), "a", "b"))
	assert.ErrorIs(t, svc.Unfollow(context.Background(), "a", "ghost"), apperrors.ErrUserNotFound)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Feed(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("SelectFeed", mock.Anything, "lonely").Return(nil, nil)
	mockRepo.On("SelectFeed", mock.Anything, "a").Return([]model.FeedRecipe{{ID: "r1", UserName: "Bia"}}, nil)
	mockRepo.On("SelectFeed", mock.Anything, "broken").
		Return(nil, apperrors.NewStorageError("select feed", errors.New("timeout")))
	svc := NewUserService(mockRepo, nil, time.Hour, nil)

	feed, err := svc.Feed(context.Background(), "lonely")
	require.NoError(t, err)
	assert.NotNil(t, feed)
	assert.Empty(t, feed)

	feed, err = svc.Feed(context.Background(), "a")
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "Bia", feed[0].UserName)

	_, err = svc.Feed(context.Background(), "broken")
	assert.Equal(t, apperrors.KindStorage, apperrors.KindOf(err))
}

func TestUserService_DeleteUser(t *testing.T) {
	tests := []struct {
		name          string
		role          model.Role
		setupMocks    func(*MockUserRepository, *MockTokenStore)
		expectedError error
		wantWarnings  int
	}{
		{
			name: "admin deletes and revokes tokens",
			role: model.RoleAdmin,
			setupMocks: func(r *MockUserRepository, s *MockTokenStore) {
				r.On("FindByID", mock.Anything, "b").Return(&model.User{ID: "b"}, nil)
				r.On("Delete", mock.Anything, "b").Return(nil)
				s.On("RevokeUser", mock.Anything, "b", time.Hour).Return(nil)
			},
		},
		{
			name: "revocation failure does not fail the delete",
			role: model.RoleAdmin,
			setupMocks: func(r *MockUserRepository, s *MockTokenStore) {
				r.On("FindByID", mock.Anything, "b").Return(&model.User{ID: "b"}, nil)
				r.On("Delete", mock.Anything, "b").Return(nil)
				s.On("RevokeUser", mock.Anything, "b", time.Hour).Return(errors.New("redis down"))
			},
			wantWarnings: 1,
		},
		{
			name:          "normal user is rejected",
			role:          model.RoleNormal,
			setupMocks:    func(r *MockUserRepository, s *MockTokenStore) {},
			expectedError: apperrors.ErrAdminOnly,
		},
		{
			name: "missing user",
			role: model.RoleAdmin,
			setupMocks: func(r *MockUserRepository, s *MockTokenStore) {
				r.On("FindByID", mock.Anything, "b").Return(nil, nil)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockStore := new(MockTokenStore)
			tt.setupMocks(mockRepo, mockStore)
			core, logs := observer.New(zap.WarnLevel)
			svc := NewUserService(mockRepo, mockStore, time.Hour, zap.New(core))

			err := svc.DeleteUser(context.Background(), tt.role, "b")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			require.Equal(t, tt.wantWarnings, logs.Len())
			for _, entry := range logs.All() {
				assert.Equal(t, "b", entry.ContextMap()["user_id"])
				assert.Equal(t, "redis down", entry.ContextMap()["error"])
			}
			mockRepo.AssertExpectations(t)
			mockStore.AssertExpectations(t)
		})
	}
}
