package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"noticeboard/internal/cache"
	apperrors "noticeboard/internal/errors"
	"noticeboard/internal/model"
	"noticeboard/internal/repository"
)

const (
	noticeListCacheKey = "notices:all"
	noticeListCacheTTL = time.Minute
)

// NoticeUpdate carries the optional fields of a partial update. Nil means
// leave the stored value untouched.
type NoticeUpdate struct {
	Title *string
	Date  *time.Time
	Type  *string
}

// NoticeService exposes notice board operations.
type NoticeService interface {
	Create(ctx context.Context, title string, date time.Time, noticeType string, createdBy uint) (*model.Notice, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Notice, error)
	List(ctx context.Context) ([]model.Notice, error)
	Update(ctx context.Context, id uuid.UUID, update NoticeUpdate) (*model.Notice, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type noticeService struct {
	repo  repository.NoticeRepository
	cache *cache.Client
}

// NewNoticeService builds a NoticeService with repository and cache.
func NewNoticeService(repo repository.NoticeRepository, cache *cache.Client) NoticeService {
	return &noticeService{repo: repo, cache: cache}
}

func (s *noticeService) Create(ctx context.Context, title string, date time.Time, noticeType string, createdBy uint) (*model.Notice, error) {
	if !model.ValidNoticeType(noticeType) {
		return nil, apperrors.ErrInvalidNoticeType
	}

	notice := &model.Notice{
		Title:     title,
		Date:      date,
		Type:      noticeType,
		CreatedBy: createdBy,
	}
	if err := s.repo.Create(ctx, notice); err != nil {
		return nil, fmt.Errorf("create notice: %w", err)
	}

	s.cache.Delete(ctx, noticeListCacheKey)
	return notice, nil
}

func (s *noticeService) Get(ctx context.Context, id uuid.UUID) (*model.Notice, error) {
	notice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoticeNotFound
		}
		return nil, fmt.Errorf("find notice: %w", err)
	}
	return notice, nil
}

// List returns all notices newest event first, served from the cache when the
// feed was fetched recently.
func (s *noticeService) List(ctx context.Context) ([]model.Notice, error) {
	var cached []model.Notice
	if s.cache.GetJSON(ctx, noticeListCacheKey, &cached) {
		return cached, nil
	}

	notices, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}

	s.cache.SetJSON(ctx, noticeListCacheKey, notices, noticeListCacheTTL)
	return notices, nil
}

// Update changes only the provided fields; everything else keeps its prior
// value. Concurrent updates are last-write-wins.
func (s *noticeService) Update(ctx context.Context, id uuid.UUID, update NoticeUpdate) (*model.Notice, error) {
	notice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoticeNotFound
		}
		return nil, fmt.Errorf("find notice: %w", err)
	}

	if update.Title != nil {
		notice.Title = *update.Title
	}
	if update.Date != nil {
		notice.Date = *update.Date
	}
	if update.Type != nil {
		if !model.ValidNoticeType(*update.Type) {
			return nil, apperrors.ErrInvalidNoticeType
		}
		notice.Type = *update.Type
	}

	if err := s.repo.Update(ctx, notice); err != nil {
		return nil, fmt.Errorf("update notice: %w", err)
	}

	s.cache.Delete(ctx, noticeListCacheKey)
	return notice, nil
}

func (s *noticeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNoticeNotFound
		}
		return fmt.Errorf("delete notice: %w", err)
	}

	s.cache.Delete(ctx, noticeListCacheKey)
	return nil
}
