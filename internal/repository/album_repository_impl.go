package repository

import (
	"github.com/PhanHoangKe/GooglePhotosClone/internal/model"

	"gorm.io/gorm"
)

type AlbumRepository struct {
	db *gorm.DB
}

func (r *AlbumRepository) CreateWithPhotos(album *model.Album, photoIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(album).Error; err != nil {
			return err
		}
		return syncPhotosTx(tx, album.ID, photoIDs)
	})
}

func (r *AlbumRepository) SyncPhotos(albumID uint, photoIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return syncPhotosTx(tx, albumID, photoIDs)
	})
}

// syncPhotosTx implements replace-all membership semantics: the previous set
// is dropped and photoIDs define both membership and order.
func syncPhotosTx(tx *gorm.DB, albumID uint, photoIDs []uint) error {
	if err := tx.Where("album_id = ?", albumID).
		Delete(&model.AlbumPhoto{}).Error; err != nil {
		return err
	}
	memberships := make([]model.AlbumPhoto, 0, len(photoIDs))
	for i, photoID := range photoIDs {
		memberships = append(memberships, model.AlbumPhoto{
			AlbumID:    albumID,
			PhotoID:    photoID,
			OrderIndex: i,
		})
	}
	if len(memberships) == 0 {
		return nil
	}
	return tx.Create(&memberships).Error
}

func (r *AlbumRepository) FindByIDAndUserID(albumID uint, userID uint) (*model.Album, error) {
	var album model.Album
	if err := r.db.Where("id = ? AND user_id = ?", albumID, userID).
		First(&album).Error; err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *AlbumRepository) ListByUser(userID uint) ([]model.Album, error) {
	var albums []model.Album
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&albums).Error; err != nil {
		return nil, err
	}
	return albums, nil
}

func (r *AlbumRepository) CountPhotosByAlbumIDs(albumIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(albumIDs))
	if len(albumIDs) == 0 {
		return counts, nil
	}

	type row struct {
		AlbumID uint
		Count   int64
	}
	var rows []row
	if err := r.db.Model(&model.AlbumPhoto{}).
		Select("album_id, COUNT(*) as count").
		Where("album_id IN ?", albumIDs).
		Group("album_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, rw := range rows {
		counts[rw.AlbumID] = rw.Count
	}
	return counts, nil
}

func (r *AlbumRepository) ListAlbumPhotos(albumID uint) ([]model.Photo, error) {
	var photos []model.Photo
	if err := r.db.Model(&model.Photo{}).
		Joins("JOIN album_photos ON album_photos.photo_id = photos.id").
		Where("album_photos.album_id = ?", albumID).
		Order("album_photos.order_index asc, photos.uploaded_at desc").
		Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}
