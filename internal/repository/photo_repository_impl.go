package repository

import (
	"strings"
	"time"

	"github.com/PhanHoangKe/GooglePhotosClone/internal/model"

	"gorm.io/gorm"
)

type PhotoRepository struct {
	db *gorm.DB
}

func (r *PhotoRepository) Create(photo *model.Photo) error {
	return r.db.Create(photo).Error
}

func (r *PhotoRepository) FindByIDAndUserID(photoID uint, userID uint) (*model.Photo, error) {
	var photo model.Photo
	if err := r.db.Where("id = ? AND user_id = ?", photoID, userID).
		First(&photo).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepository) FindActiveByIDAndUserID(photoID uint, userID uint) (*model.Photo, error) {
	var photo model.Photo
	if err := r.db.Where("id = ? AND user_id = ? AND is_deleted = ?", photoID, userID, false).
		First(&photo).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepository) FindActiveByIDsAndUserID(ids []uint, userID uint) ([]model.Photo, error) {
	var photos []model.Photo
	if err := r.db.Where("id IN ? AND user_id = ? AND is_deleted = ?", ids, userID, false).
		Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *PhotoRepository) FindByUserID(userID uint) ([]model.Photo, error) {
	var photos []model.Photo
	if err := r.db.Where("user_id = ?", userID).Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *PhotoRepository) ListActive(params ListPhotosParams) ([]model.Photo, int64, error) {
	var photos []model.Photo
	var total int64

	query := r.db.Model(&model.Photo{}).
		Where("user_id = ? AND is_deleted = ?", params.UserID, false)

	if params.Search != "" {
		query = query.Where("LOWER(original_filename) LIKE ?",
			"%"+strings.ToLower(params.Search)+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order(orderClause(params.SortBy, params.SortDir)).
		Offset(params.Offset).Limit(params.Limit).
		Find(&photos).Error; err != nil {
		return nil, 0, err
	}

	return photos, total, nil
}

func (r *PhotoRepository) ListTrashed(userID uint, search string, offset, limit int) ([]model.Photo, int64, error) {
	var photos []model.Photo
	var total int64

	query := r.db.Model(&model.Photo{}).
		Where("user_id = ? AND is_deleted = ?", userID, true)

	if search != "" {
		query = query.Where("LOWER(original_filename) LIKE ?",
			"%"+strings.ToLower(search)+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("deleted_at desc").
		Offset(offset).Limit(limit).
		Find(&photos).Error; err != nil {
		return nil, 0, err
	}

	return photos, total, nil
}

func (r *PhotoRepository) MarkTrashed(photo *model.Photo, at time.Time) error {
	return r.db.Model(photo).Updates(map[string]interface{}{
		"is_deleted": true,
		"deleted_at": at,
	}).Error
}

func (r *PhotoRepository) RestoreTrashed(photo *model.Photo) error {
	return r.db.Model(photo).Updates(map[string]interface{}{
		"is_deleted": false,
		"deleted_at": nil,
	}).Error
}

func (r *PhotoRepository) DeleteAndDecreaseUserStorage(photo *model.Photo) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("photo_id = ?", photo.ID).
			Delete(&model.AlbumPhoto{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(photo).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).Where("id = ?", photo.UserID).
			UpdateColumn("storage_used",
				gorm.Expr("CASE WHEN storage_used > ? THEN storage_used - ? ELSE 0 END",
					photo.FileSize, photo.FileSize)).Error
	})
}

// orderClause whitelists sortable columns; unknown input degrades to the
// default rather than erroring.
func orderClause(sortBy, sortDir string) string {
	dir := "desc"
	if strings.EqualFold(sortDir, "asc") {
		dir = "asc"
	}
	switch sortBy {
	case SortByName:
		return "original_filename " + dir
	case SortBySize:
		return "file_size " + dir
	case SortByUploaded:
		return "uploaded_at " + dir
	default:
		return "uploaded_at desc"
	}
}
