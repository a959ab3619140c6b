package service

import (
	"errors"

	"github.com/PhanHoangKe/GooglePhotosClone/internal/common"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/consts"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/model"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/repository"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/storage"

	"gorm.io/gorm"
)

type PhotoService struct {
	photos repository.PhotoStore
	users  repository.UserStore
	quota  *QuotaLedger
	blobs  *storage.DiskStore
}

func NewPhotoService(photos repository.PhotoStore, users repository.UserStore, quota *QuotaLedger, blobs *storage.DiskStore) *PhotoService {
	return &PhotoService{
		photos: photos,
		users:  users,
		quota:  quota,
		blobs:  blobs,
	}
}

type PhotoListQuery struct {
	UserID  uint
	Search  string
	SortBy  string
	SortDir string
	Page    int
}

type PhotoPage struct {
	Items    []model.Photo `json:"items"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// List returns the library view: active photos of the owner, searchable by
// display name, sortable by name, size or upload time (default upload time
// descending).
func (s *PhotoService) List(q PhotoListQuery) (*PhotoPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}

	items, total, err := s.photos.ListActive(repository.ListPhotosParams{
		UserID:  q.UserID,
		Search:  q.Search,
		SortBy:  q.SortBy,
		SortDir: q.SortDir,
		Offset:  (page - 1) * consts.PhotosPerPage,
		Limit:   consts.PhotosPerPage,
	})
	if err != nil {
		return nil, common.NewInternalError("failed to list photos")
	}

	return &PhotoPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: consts.PhotosPerPage,
	}, nil
}

// findOwnedPhoto resolves a photo scoped to the owner. A photo that exists
// but belongs to someone else surfaces as not-found.
func (s *PhotoService) findOwnedPhoto(userID, photoID uint) (*model.Photo, error) {
	photo, err := s.photos.FindByIDAndUserID(photoID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("photo not found")
		}
		return nil, common.NewInternalError("failed to load photo")
	}
	return photo, nil
}
