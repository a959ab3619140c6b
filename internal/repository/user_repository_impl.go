package repository

import (
	"github.com/PhanHoangKe/GooglePhotosClone/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) Save(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepository) FieldExists(field UserField, value string, excludeUserID *uint) (bool, error) {
	query := r.db.Model(&model.User{}).Where(string(field)+" = ?", value)
	if excludeUserID != nil {
		query = query.Where("id <> ?", *excludeUserID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) UpdateProfileByID(userID uint, updates map[string]interface{}) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) UpdatePasswordByID(userID uint, hashedPassword string) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).
		UpdateColumn("password", hashedPassword).Error
}

func (r *UserRepository) UpdateAvatar(user *model.User, publicURL string) error {
	return r.db.Model(user).Update("avatar", publicURL).Error
}

func (r *UserRepository) ClearAvatar(user *model.User) error {
	return r.db.Model(user).Update("avatar", "").Error
}

func (r *UserRepository) IncreaseStorageUsed(userID uint, delta int64) error {
	if delta <= 0 {
		return nil
	}
	return r.db.Model(&model.User{}).Where("id = ?", userID).
		UpdateColumn("storage_used", gorm.Expr("storage_used + ?", delta)).Error
}

func (r *UserRepository) DecreaseStorageUsedClamped(userID uint, size int64) error {
	if size <= 0 {
		return nil
	}
	// A drifted counter must never wrap below zero.
	return r.db.Model(&model.User{}).Where("id = ?", userID).
		UpdateColumn("storage_used",
			gorm.Expr("CASE WHEN storage_used > ? THEN storage_used - ? ELSE 0 END", size, size)).Error
}

func (r *UserRepository) HardDeleteWithPhotos(userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var albumIDs []uint
		if err := tx.Model(&model.Album{}).Where("user_id = ?", userID).
			Pluck("id", &albumIDs).Error; err != nil {
			return err
		}
		if len(albumIDs) > 0 {
			if err := tx.Where("album_id IN ?", albumIDs).
				Delete(&model.AlbumPhoto{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.Album{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.Photo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{}, userID).Error
	})
}
