package service

import (
	"testing"
	"time"

	"github.com/PhanHoangKe/GooglePhotosClone/internal/model"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/repository"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/storage"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/testutils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	blobs    *storage.DiskStore
	services *Services
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb := testutils.SetupDB(t)
	blobs := storage.NewDiskStore(t.TempDir(), "/storage/")
	repos := repository.NewRepositories(gdb)
	return &testEnv{
		db:       gdb,
		blobs:    blobs,
		services: NewServices(repos, blobs),
	}
}

func mustCreateUser(t *testing.T, gdb *gorm.DB, username string, used, limit int64) *model.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		Password:     string(hashed),
		StorageUsed:  used,
		StorageLimit: limit,
	}
	if err := gdb.Create(user).Error; err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return user
}

func mustCreatePhoto(t *testing.T, gdb *gorm.DB, userID uint, name string, size int64) *model.Photo {
	t.Helper()

	photo := &model.Photo{
		UserID:           userID,
		Filename:         name + ".jpg",
		OriginalFilename: name,
		FilePath:         "/storage/photos/" + name + ".jpg",
		FileSize:         size,
		MimeType:         "image/jpeg",
		FileType:         "image",
		UploadedAt:       time.Now(),
	}
	if err := gdb.Create(photo).Error; err != nil {
		t.Fatalf("create photo %q: %v", name, err)
	}
	return photo
}

func mustTrashPhoto(t *testing.T, gdb *gorm.DB, photoID uint) {
	t.Helper()

	now := time.Now()
	if err := gdb.Model(&model.Photo{}).Where("id = ?", photoID).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_at": now}).Error; err != nil {
		t.Fatalf("trash photo %d: %v", photoID, err)
	}
}

func storedUsed(t *testing.T, gdb *gorm.DB, userID uint) int64 {
	t.Helper()

	var user model.User
	if err := gdb.First(&user, userID).Error; err != nil {
		t.Fatalf("reload user %d: %v", userID, err)
	}
	return user.StorageUsed
}

func testTime(t *testing.T, rfc3339 string) time.Time {
	t.Helper()

	ts, err := time.Parse(time.RFC3339, rfc3339)
	if err != nil {
		t.Fatalf("parse time %q: %v", rfc3339, err)
	}
	return ts
}

func countPhotos(t *testing.T, gdb *gorm.DB, userID uint) int64 {
	t.Helper()

	var n int64
	if err := gdb.Model(&model.Photo{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		t.Fatalf("count photos: %v", err)
	}
	return n
}
