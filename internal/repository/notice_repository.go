package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"noticeboard/internal/model"
)

// NoticeRepository defines notice persistence operations.
type NoticeRepository interface {
	Create(ctx context.Context, notice *model.Notice) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Notice, error)
	List(ctx context.Context) ([]model.Notice, error)
	Update(ctx context.Context, notice *model.Notice) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type noticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository creates a new notice repository.
func NewNoticeRepository(db *gorm.DB) NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) Create(ctx context.Context, notice *model.Notice) error {
	return r.db.WithContext(ctx).Create(notice).Error
}

func (r *noticeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Notice, error) {
	var notice model.Notice
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&notice).Error; err != nil {
		return nil, err
	}
	return &notice, nil
}

// List returns every notice, newest event date first.
func (r *noticeRepository) List(ctx context.Context) ([]model.Notice, error) {
	var notices []model.Notice
	if err := r.db.WithContext(ctx).Order("date DESC").Find(&notices).Error; err != nil {
		return nil, err
	}
	return notices, nil
}

func (r *noticeRepository) Update(ctx context.Context, notice *model.Notice) error {
	return r.db.WithContext(ctx).Save(notice).Error
}

// Delete removes a notice, reporting gorm.ErrRecordNotFound when the id did
// not match a row.
func (r *noticeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Notice{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
