package model

import "time"

// Photo is immutable after upload except for its deletion state and album
// membership. Filename is the generated storage key; OriginalFilename is the
// user-facing display name; FilePath is the public URL computed once at
// write time.
type Photo struct {
	ID               uint `json:"id" gorm:"primaryKey"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	UserID           uint       `json:"user_id" gorm:"not null;index:idx_user_photos"`
	User             User       `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	Filename         string     `json:"filename" gorm:"not null;unique"`
	OriginalFilename string     `json:"original_filename" gorm:"not null"`
	FilePath         string     `json:"file_path" gorm:"not null;size:512"`
	FileSize         int64      `json:"file_size" gorm:"not null"`
	MimeType         string     `json:"mime_type" gorm:"not null;size:100"`
	FileType         string     `json:"file_type" gorm:"not null;default:image;size:16"`
	UploadedAt       time.Time  `json:"uploaded_at" gorm:"not null;index"`
	IsDeleted        bool       `json:"is_deleted" gorm:"not null;default:false;index:idx_user_photos"`
	DeletedAt        *time.Time `json:"deleted_at"`
}
