package service

import (
	"time"

	"github.com/PhanHoangKe/GooglePhotosClone/internal/common"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/consts"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/logger"
)

// Trash moves an active photo into the trash. The blob and the quota ledger
// are untouched; only a later purge reclaims the bytes.
func (s *PhotoService) Trash(userID, photoID uint) error {
	photo, err := s.findOwnedPhoto(userID, photoID)
	if err != nil {
		return err
	}
	if photo.IsDeleted {
		return common.NewValidationError("photo is already in the trash")
	}
	if err := s.photos.MarkTrashed(photo, time.Now()); err != nil {
		return common.NewInternalError("failed to move photo to trash")
	}
	return nil
}

// Restore returns a trashed photo to the library. Restoring an active photo
// is rejected, not silently ignored.
func (s *PhotoService) Restore(userID, photoID uint) error {
	photo, err := s.findOwnedPhoto(userID, photoID)
	if err != nil {
		return err
	}
	if !photo.IsDeleted {
		return common.NewValidationError("photo is not in the trash")
	}
	if err := s.photos.RestoreTrashed(photo); err != nil {
		return common.NewInternalError("failed to restore photo")
	}
	return nil
}

// Purge permanently destroys a trashed photo: blob first (best-effort, a
// missing blob never blocks cleanup), then record and clamped ledger
// decrement in one transaction.
func (s *PhotoService) Purge(userID, photoID uint) error {
	photo, err := s.findOwnedPhoto(userID, photoID)
	if err != nil {
		return err
	}
	if !photo.IsDeleted {
		return common.NewNotFoundError("photo not found in trash")
	}

	if !s.blobs.Delete(consts.NamespacePhotos, photo.Filename) {
		logger.S.Warnw("purge: blob already missing",
			"user_id", userID, "photo_id", photoID, "key", photo.Filename)
	}

	if err := s.photos.DeleteAndDecreaseUserStorage(photo); err != nil {
		return common.NewInternalError("failed to delete photo")
	}
	return nil
}

// ListTrash returns trashed photos newest-deleted first.
func (s *PhotoService) ListTrash(userID uint, search string, page int) (*PhotoPage, error) {
	if page < 1 {
		page = 1
	}

	items, total, err := s.photos.ListTrashed(userID, search,
		(page-1)*consts.PhotosPerPage, consts.PhotosPerPage)
	if err != nil {
		return nil, common.NewInternalError("failed to list trash")
	}

	return &PhotoPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: consts.PhotosPerPage,
	}, nil
}
