package repository

import "github.com/PhanHoangKe/GooglePhotosClone/internal/model"

type AlbumStore interface {
	// CreateWithPhotos persists the album and its ordered memberships as one
	// atomic unit; order_index follows the position in photoIDs.
	CreateWithPhotos(album *model.Album, photoIDs []uint) error
	// SyncPhotos replaces the album's whole membership set with photoIDs.
	SyncPhotos(albumID uint, photoIDs []uint) error
	FindByIDAndUserID(albumID uint, userID uint) (*model.Album, error)
	ListByUser(userID uint) ([]model.Album, error)
	CountPhotosByAlbumIDs(albumIDs []uint) (map[uint]int64, error)
	// ListAlbumPhotos returns member photos ordered by order_index asc,
	// upload time desc as tiebreak.
	ListAlbumPhotos(albumID uint) ([]model.Photo, error)
}
