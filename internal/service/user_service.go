package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"github.com/PhanHoangKe/GooglePhotosClone/internal/common"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/consts"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/logger"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/model"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/repository"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/storage"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	users  repository.UserStore
	photos repository.PhotoStore
	blobs  *storage.DiskStore
}

func NewUserService(users repository.UserStore, photos repository.PhotoStore, blobs *storage.DiskStore) *UserService {
	return &UserService{users: users, photos: photos, blobs: blobs}
}

func (s *UserService) GetByID(userID uint) (*model.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("user not found")
		}
		return nil, common.NewInternalError("failed to load user")
	}
	return user, nil
}

type ProfileUpdate struct {
	Username string
	Email    string
	// Avatar is the optional inline avatar of the profile form; its ceiling
	// (2 MiB) is stricter than the dedicated avatar endpoint.
	Avatar *multipart.FileHeader
}

// UpdateProfile changes username/email and optionally the avatar in one
// call, mirroring the profile form submit.
func (s *UserService) UpdateProfile(userID uint, upd ProfileUpdate) (*model.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if username := strings.TrimSpace(upd.Username); username != "" && username != user.Username {
		if len(username) < 3 || len(username) > 32 {
			return nil, common.NewValidationError("username must be 3-32 characters")
		}
		if taken, err := s.users.FieldExists(repository.UserFieldUsername, username, &userID); err != nil {
			return nil, common.NewInternalError("failed to check username")
		} else if taken {
			return nil, common.NewConflictError("username is already taken")
		}
		updates["username"] = username
	}

	if email := strings.ToLower(strings.TrimSpace(upd.Email)); email != "" && email != user.Email {
		if !strings.Contains(email, "@") || len(email) > 255 {
			return nil, common.NewValidationError("invalid email address")
		}
		if taken, err := s.users.FieldExists(repository.UserFieldEmail, email, &userID); err != nil {
			return nil, common.NewInternalError("failed to check email")
		} else if taken {
			return nil, common.NewConflictError("email is already registered")
		}
		updates["email"] = email
	}

	if upd.Avatar != nil {
		url, err := s.saveAvatarBlob(user, upd.Avatar, consts.MaxProfileAvatarFileBytes)
		if err != nil {
			return nil, err
		}
		updates["avatar"] = url
	}

	if len(updates) > 0 {
		if err := s.users.UpdateProfileByID(userID, updates); err != nil {
			return nil, common.NewInternalError("failed to update profile")
		}
	}
	return s.GetByID(userID)
}

// UpdateAvatar is the dedicated avatar endpoint with its own 5 MiB ceiling.
func (s *UserService) UpdateAvatar(userID uint, file *multipart.FileHeader) (string, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return "", err
	}
	url, err := s.saveAvatarBlob(user, file, consts.MaxAvatarFileBytes)
	if err != nil {
		return "", err
	}
	if err := s.users.UpdateAvatar(user, url); err != nil {
		return "", common.NewInternalError("failed to update avatar")
	}
	return url, nil
}

func (s *UserService) RemoveAvatar(userID uint) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	if user.Avatar == "" {
		return nil
	}
	s.deleteAvatarBlob(user.Avatar)
	if err := s.users.ClearAvatar(user); err != nil {
		return common.NewInternalError("failed to remove avatar")
	}
	return nil
}

// saveAvatarBlob validates and stores a new avatar, removing the previous
// blob best-effort. Avatars never count against the storage quota.
func (s *UserService) saveAvatarBlob(user *model.User, fh *multipart.FileHeader, maxBytes int64) (string, error) {
	if fh.Size > maxBytes {
		return "", common.NewValidationError(fmt.Sprintf(
			"avatar exceeds the %d MB limit", maxBytes>>20))
	}
	mediaType := declaredMediaType(fh)
	if !strings.HasPrefix(mediaType, "image/") {
		return "", common.NewValidationError("avatar must be an image")
	}

	src, err := fh.Open()
	if err != nil {
		return "", common.NewInternalError("cannot read uploaded file")
	}
	defer func() { _ = src.Close() }()

	key, err := s.blobs.Store(src, consts.NamespaceAvatars, storageExt(fh.Filename, mediaType))
	if err != nil {
		logger.S.Errorw("avatar blob write failed", "user_id", user.ID, "err", err)
		return "", common.NewInternalError("failed to store avatar")
	}

	if user.Avatar != "" {
		s.deleteAvatarBlob(user.Avatar)
	}
	return s.blobs.PublicURL(consts.NamespaceAvatars, key), nil
}

// deleteAvatarBlob maps a stored public URL back to its key and removes the
// blob. Best-effort only.
func (s *UserService) deleteAvatarBlob(publicURL string) {
	key := path.Base(publicURL)
	if !s.blobs.Delete(consts.NamespaceAvatars, key) {
		logger.S.Warnw("old avatar blob already missing", "key", key)
	}
}

// UpdatePassword requires the current password before setting a new one.
func (s *UserService) UpdatePassword(userID uint, currentPassword, newPassword string) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)) != nil {
		return common.NewUnauthorizedError("current password is incorrect")
	}
	if len(newPassword) < 8 {
		return common.NewValidationError("password must be at least 8 characters")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.NewInternalError("failed to hash password")
	}
	if err := s.users.UpdatePasswordByID(userID, string(hashed)); err != nil {
		return common.NewInternalError("failed to update password")
	}
	return nil
}

// DeleteAccount verifies the password, removes every owned blob, then drops
// the user with all photos, albums and memberships in one transaction.
func (s *UserService) DeleteAccount(userID uint, password string) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return common.NewUnauthorizedError("password is incorrect")
	}

	photos, err := s.photos.FindByUserID(userID)
	if err != nil {
		return common.NewInternalError("failed to load photos for deletion")
	}
	for _, p := range photos {
		if !s.blobs.Delete(consts.NamespacePhotos, p.Filename) {
			logger.S.Warnw("account deletion: blob already missing",
				"user_id", userID, "key", p.Filename)
		}
	}
	if user.Avatar != "" {
		s.deleteAvatarBlob(user.Avatar)
	}

	if err := s.users.HardDeleteWithPhotos(userID); err != nil {
		return common.NewInternalError("failed to delete account")
	}
	return nil
}
