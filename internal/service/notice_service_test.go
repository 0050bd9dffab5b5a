package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "noticeboard/internal/errors"
	"noticeboard/internal/model"
)

// MockNoticeRepository is a mock implementation of NoticeRepository.
type MockNoticeRepository struct {
	mock.Mock
}

func (m *MockNoticeRepository) Create(ctx context.Context, notice *model.Notice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

func (m *MockNoticeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Notice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Notice), args.Error(1)
}

func (m *MockNoticeRepository) List(ctx context.Context) ([]model.Notice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Notice), args.Error(1)
}

func (m *MockNoticeRepository) Update(ctx context.Context, notice *model.Notice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

func (m *MockNoticeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestNoticeService_Create(t *testing.T) {
	date := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)

	t.Run("successful create", func(t *testing.T) {
		mockRepo := new(MockNoticeRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Notice")).Return(nil)

		svc := NewNoticeService(mockRepo, nil)
		notice, err := svc.Create(context.Background(), "Holiday", date, model.TypeLeave, 1)

		assert.NoError(t, err)
		assert.Equal(t, "Holiday", notice.Title)
		assert.Equal(t, date, notice.Date)
		assert.Equal(t, model.TypeLeave, notice.Type)
		assert.Equal(t, uint(1), notice.CreatedBy)
		mockRepo.AssertExpectations(t)
	})

	t.Run("invalid type rejected before persistence", func(t *testing.T) {
		mockRepo := new(MockNoticeRepository)

		svc := NewNoticeService(mockRepo, nil)
		notice, err := svc.Create(context.Background(), "Holiday", date, "party", 1)

		assert.ErrorIs(t, err, apperrors.ErrInvalidNoticeType)
		assert.Nil(t, notice)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestNoticeService_Get(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockNoticeRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(&model.Notice{ID: id, Title: "Holiday"}, nil)

		svc := NewNoticeService(mockRepo, nil)
		notice, err := svc.Get(context.Background(), id)

		assert.NoError(t, err)
		assert.Equal(t, id, notice.ID)
	})

	t.Run("missing id maps to not found", func(t *testing.T) {
		mockRepo := new(MockNoticeRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		svc := NewNoticeService(mockRepo, nil)
		_, err := svc.Get(context.Background(), id)

		assert.ErrorIs(t, err, apperrors.ErrNoticeNotFound)
	})
}

func TestNoticeService_List(t *testing.T) {
	newer := model.Notice{Title: "Newer", Date: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)}
	older := model.Notice{Title: "Older", Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}

	mockRepo := new(MockNoticeRepository)
	mockRepo.On("List", mock.Anything).Return([]model.Notice{newer, older}, nil)

	svc := NewNoticeService(mockRepo, nil)
	notices, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, notices, 2)
	assert.Equal(t, "Newer", notices[0].Title)
	assert.Equal(t, "Older", notices[1].Title)
}

func TestNoticeService_Update(t *testing.T) {
	id := uuid.New()
	origDate := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)
	stored := func() *model.Notice {
		return &model.Notice{ID: id, Title: "Holiday", Date: origDate, Type: model.TypeLeave}
	}

	t.Run("title-only update keeps date and type", func(t *testing.T) {
		mockRepo := new(MockNoticeRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(stored(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Notice")).Return(nil)

		svc := NewNoticeService(mockRepo, nil)
		title := "Extended Holiday"
		notice, err := svc.Update(context.Background(), id, NoticeUpdate{Title: &title})

		assert.NoError(t, err)
		assert.Equal(t, "Extended Holiday", notice.Title)
		assert.Equal(t, origDate, notice.Date)
		assert.Equal(t, model.TypeLeave, notice.Type)
		mockRepo.AssertExpectations(t)
	})

	t.Run("invalid type rejected", func(t *testing.T) {
		mockRepo := new(MockNoticeRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(stored(), nil)

		svc := NewNoticeService(mockRepo, nil)
		bad := "party"
		_, err := svc.Update(context.Background(), id, NoticeUpdate{Type: &bad})

		assert.ErrorIs(t, err, apperrors.ErrInvalidNoticeType)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("missing id maps to not found", func(t *testing.T) {
		mockRepo := new(MockNoticeRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		svc := NewNoticeService(mockRepo, nil)
		title := "anything"
		_, err := svc.Update(context.Background(), id, NoticeUpdate{Title: &title})

		assert.ErrorIs(t, err, apperrors.ErrNoticeNotFound)
	})
}

func TestNoticeService_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("successful delete", func(t *testing.T) {
		mockRepo := new(MockNoticeRepository)
		mockRepo.On("Delete", mock.Anything, id).Return(nil)

		svc := NewNoticeService(mockRepo, nil)
		assert.NoError(t, svc.Delete(context.Background(), id))
	})

	t.Run("missing id maps to not found", func(t *testing.T) {
		mockRepo := new(MockNoticeRepository)
		mockRepo.On("Delete", mock.Anything, id).Return(gorm.ErrRecordNotFound)

		svc := NewNoticeService(mockRepo, nil)
		err := svc.Delete(context.Background(), id)

		assert.ErrorIs(t, err, apperrors.ErrNoticeNotFound)
	})
}
