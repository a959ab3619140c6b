package model

import "time"

type User struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string `json:"username" gorm:"unique;not null"`
	Email     string `json:"email" gorm:"unique;not null;size:255"`
	Password  string `json:"-" gorm:"not null"`
	Avatar    string `json:"avatar"`
	// Denormalized byte counters backing the quota ledger. StorageUsed is
	// adjusted only by the upload commit and purge paths and never goes
	// negative.
	StorageUsed  int64   `json:"storage_used" gorm:"not null;default:0"`
	StorageLimit int64   `json:"storage_limit" gorm:"not null;default:5368709120"`
	Photos       []Photo `json:"-"`
	Albums       []Album `json:"-"`
}

// EffectiveStorageLimit returns the byte cap for the user, falling back to
// the 5 GiB default for rows migrated without a limit.
func (u *User) EffectiveStorageLimit() int64 {
	if u.StorageLimit > 0 {
		return u.StorageLimit
	}
	return 5 << 30
}
