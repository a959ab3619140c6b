package repository

import (
	"time"

	"github.com/PhanHoangKe/GooglePhotosClone/internal/model"
)

// Sort keys accepted by the library view. Anything else falls back to the
// upload-time default.
const (
	SortByName     = "name"
	SortBySize     = "size"
	SortByUploaded = "uploaded_at"
)

type ListPhotosParams struct {
	UserID  uint
	Search  string // case-insensitive substring on display name
	SortBy  string
	SortDir string // "asc" or "desc"
	Offset  int
	Limit   int
}

type PhotoStore interface {
	Create(photo *model.Photo) error
	FindByIDAndUserID(photoID uint, userID uint) (*model.Photo, error)
	FindActiveByIDsAndUserID(ids []uint, userID uint) ([]model.Photo, error)
	FindActiveByIDAndUserID(photoID uint, userID uint) (*model.Photo, error)
	FindByUserID(userID uint) ([]model.Photo, error)

	ListActive(params ListPhotosParams) ([]model.Photo, int64, error)
	ListTrashed(userID uint, search string, offset, limit int) ([]model.Photo, int64, error)

	MarkTrashed(photo *model.Photo, at time.Time) error
	RestoreTrashed(photo *model.Photo) error

	// DeleteAndDecreaseUserStorage destroys the record and applies the
	// clamped quota decrement in one transaction.
	DeleteAndDecreaseUserStorage(photo *model.Photo) error
}
