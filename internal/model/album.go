package model

import "time"

// Album groups photos of a single user. CoverPhotoID is a weak reference
// fixed at creation; readers re-validate it instead of relying on a foreign
// key (the cover may have been trashed or purged since).
type Album struct {
	ID           uint `json:"id" gorm:"primaryKey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	UserID       uint   `json:"user_id" gorm:"not null;index"`
	User         User   `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	Name         string `json:"name" gorm:"not null"`
	Description  string `json:"description"`
	CoverPhotoID *uint  `json:"cover_photo_id"`
	// Schema-provisioned for metadata-derived albums; always false today.
	IsAutoGenerated bool `json:"is_auto_generated" gorm:"not null;default:false"`
}

// AlbumPhoto is the ordered membership pivot. OrderIndex is the zero-based
// display position assigned at album creation, unique per album by
// construction.
type AlbumPhoto struct {
	ID         uint `gorm:"primaryKey"`
	AlbumID    uint `gorm:"not null;uniqueIndex:uniq_album_photo;index:idx_album_order"`
	PhotoID    uint `gorm:"not null;uniqueIndex:uniq_album_photo"`
	OrderIndex int  `gorm:"not null;default:0;index:idx_album_order"`
	CreatedAt  time.Time
	Album      Album `gorm:"foreignKey:AlbumID;references:ID;constraint:OnDelete:CASCADE;"`
	Photo      Photo `gorm:"foreignKey:PhotoID;references:ID;constraint:OnDelete:CASCADE;"`
}
