package repository

import "github.com/PhanHoangKe/GooglePhotosClone/internal/model"

type UserField string

const (
	UserFieldUsername UserField = "username"
	UserFieldEmail    UserField = "email"
)

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Create(user *model.User) error
	Save(user *model.User) error
	FieldExists(field UserField, value string, excludeUserID *uint) (bool, error)
	UpdateProfileByID(userID uint, updates map[string]interface{}) error
	UpdatePasswordByID(userID uint, hashedPassword string) error
	UpdateAvatar(user *model.User, publicURL string) error
	ClearAvatar(user *model.User) error

	// Quota ledger writes. IncreaseStorageUsed is the single per-batch
	// commit; DecreaseStorageUsedClamped never lets the counter go negative.
	IncreaseStorageUsed(userID uint, delta int64) error
	DecreaseStorageUsedClamped(userID uint, size int64) error

	// HardDeleteWithPhotos removes the user and every owned photo, album and
	// membership row in one transaction.
	HardDeleteWithPhotos(userID uint) error
}
