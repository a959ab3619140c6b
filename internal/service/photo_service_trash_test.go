package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/PhanHoangKe/GooglePhotosClone/internal/common"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/consts"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/model"

	"gorm.io/gorm"
)

func TestTrashRestore_RoundTrip(t *testing.T) {
	env := setupTestEnv(t)
	user := mustCreateUser(t, env.db, "alice", 100, 1000)
	photo := mustCreatePhoto(t, env.db, user.ID, "sunset", 100)

	if err := env.services.Photo.Trash(user.ID, photo.ID); err != nil {
		t.Fatalf("Trash failed: %v", err)
	}

	var trashed model.Photo
	if err := env.db.First(&trashed, photo.ID).Error; err != nil {
		t.Fatalf("reload photo: %v", err)
	}
	if !trashed.IsDeleted || trashed.DeletedAt == nil {
		t.Fatalf("photo not marked trashed: is_deleted=%v deleted_at=%v", trashed.IsDeleted, trashed.DeletedAt)
	}
	// Trashing keeps the bytes accounted.
	if got := storedUsed(t, env.db, user.ID); got != 100 {
		t.Fatalf("storage_used = %d after trash, want 100", got)
	}

	if err := env.services.Photo.Restore(user.ID, photo.ID); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	var restored model.Photo
	if err := env.db.First(&restored, photo.ID).Error; err != nil {
		t.Fatalf("reload photo: %v", err)
	}
	if restored.IsDeleted || restored.DeletedAt != nil {
		t.Fatalf("photo not fully restored: is_deleted=%v deleted_at=%v", restored.IsDeleted, restored.DeletedAt)
	}
}

func TestTrash_RejectsAlreadyTrashed(t *testing.T) {
	env := setupTestEnv(t)
	user := mustCreateUser(t, env.db, "bob", 0, 1000)
	photo := mustCreatePhoto(t, env.db, user.ID, "dunes", 50)
	mustTrashPhoto(t, env.db, photo.ID)

	if err := env.services.Photo.Trash(user.ID, photo.ID); !common.IsCode(err, common.ErrorCodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRestore_RejectsActivePhoto(t *testing.T) {
	env := setupTestEnv(t)
	user := mustCreateUser(t, env.db, "carol", 0, 1000)
	photo := mustCreatePhoto(t, env.db, user.ID, "forest", 50)

	if err := env.services.Photo.Restore(user.ID, photo.ID); !common.IsCode(err, common.ErrorCodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPurge_DeletesRecordBlobAndReleasesBytes(t *testing.T) {
	env := setupTestEnv(t)
	user := mustCreateUser(t, env.db, "dora", 0, 1<<20)

	key, err := env.blobs.Store(strings.NewReader("jpeg bytes"), consts.NamespacePhotos, ".jpg")
	if err != nil {
		t.Fatalf("store blob: %v", err)
	}
	photo := &model.Photo{
		UserID:           user.ID,
		Filename:         key,
		OriginalFilename: "city",
		FilePath:         env.blobs.PublicURL(consts.NamespacePhotos, key),
		FileSize:         400,
		MimeType:         "image/jpeg",
		FileType:         "image",
	}
	if err := env.db.Create(photo).Error; err != nil {
		t.Fatalf("create photo: %v", err)
	}
	if err := env.db.Model(&model.User{}).Where("id = ?", user.ID).
		Update("storage_used", 400).Error; err != nil {
		t.Fatalf("seed storage_used: %v", err)
	}
	mustTrashPhoto(t, env.db, photo.ID)

	if err := env.services.Photo.Purge(user.ID, photo.ID); err != nil {
		t.Fatalf("Purge failed: %v", err)
	}

	if err := env.db.First(&model.Photo{}, photo.ID).Error; !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("record should be gone, got err=%v", err)
	}
	if env.blobs.Exists(consts.NamespacePhotos, key) {
		t.Fatal("blob should be gone after purge")
	}
	if got := storedUsed(t, env.db, user.ID); got != 0 {
		t.Fatalf("storage_used = %d after purge, want 0", got)
	}
}

func TestPurge_DecrementClampsAtZero(t *testing.T) {
	env := setupTestEnv(t)
	// Ledger drifted below the photo's recorded size.
	user := mustCreateUser(t, env.db, "ed", 100, 1000)
	photo := mustCreatePhoto(t, env.db, user.ID, "glacier", 400)
	mustTrashPhoto(t, env.db, photo.ID)

	if err := env.services.Photo.Purge(user.ID, photo.ID); err != nil {
		t.Fatalf("Purge failed: %v", err)
	}
	if got := storedUsed(t, env.db, user.ID); got != 0 {
		t.Fatalf("storage_used = %d, want clamp to 0", got)
	}
}

func TestPurge_RequiresTrashedState(t *testing.T) {
	env := setupTestEnv(t)
	user := mustCreateUser(t, env.db, "fay", 0, 1000)
	photo := mustCreatePhoto(t, env.db, user.ID, "coast", 50)

	if err := env.services.Photo.Purge(user.ID, photo.ID); !common.IsCode(err, common.ErrorCodeNotFound) {
		t.Fatalf("purging an active photo should report not-found, got %v", err)
	}
}

func TestPurge_SucceedsWhenBlobAlreadyMissing(t *testing.T) {
	env := setupTestEnv(t)
	user := mustCreateUser(t, env.db, "gil", 300, 1000)
	photo := mustCreatePhoto(t, env.db, user.ID, "storm", 300)
	mustTrashPhoto(t, env.db, photo.ID)

	// No blob was ever written for this record.
	if err := env.services.Photo.Purge(user.ID, photo.ID); err != nil {
		t.Fatalf("Purge should tolerate a missing blob, got %v", err)
	}
	if got := storedUsed(t, env.db, user.ID); got != 0 {
		t.Fatalf("storage_used = %d, want 0", got)
	}
}

func TestTrashOperations_HideOtherOwnersPhotos(t *testing.T) {
	env := setupTestEnv(t)
	owner := mustCreateUser(t, env.db, "hana", 0, 1000)
	intruder := mustCreateUser(t, env.db, "ivan", 0, 1000)
	photo := mustCreatePhoto(t, env.db, owner.ID, "private", 50)

	if err := env.services.Photo.Trash(intruder.ID, photo.ID); !common.IsCode(err, common.ErrorCodeNotFound) {
		t.Fatalf("foreign trash should report not-found, got %v", err)
	}
	mustTrashPhoto(t, env.db, photo.ID)
	if err := env.services.Photo.Restore(intruder.ID, photo.ID); !common.IsCode(err, common.ErrorCodeNotFound) {
		t.Fatalf("foreign restore should report not-found, got %v", err)
	}
	if err := env.services.Photo.Purge(intruder.ID, photo.ID); !common.IsCode(err, common.ErrorCodeNotFound) {
		t.Fatalf("foreign purge should report not-found, got %v", err)
	}
}

func TestListTrash_NewestDeletionFirst(t *testing.T) {
	env := setupTestEnv(t)
	user := mustCreateUser(t, env.db, "june", 0, 1000)

	first := mustCreatePhoto(t, env.db, user.ID, "one", 10)
	second := mustCreatePhoto(t, env.db, user.ID, "two", 10)
	mustCreatePhoto(t, env.db, user.ID, "active", 10)

	older := testTime(t, "2026-08-01T10:00:00Z")
	newer := testTime(t, "2026-08-02T10:00:00Z")
	if err := env.db.Model(&model.Photo{}).Where("id = ?", first.ID).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_at": older}).Error; err != nil {
		t.Fatalf("trash first: %v", err)
	}
	if err := env.db.Model(&model.Photo{}).Where("id = ?", second.ID).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_at": newer}).Error; err != nil {
		t.Fatalf("trash second: %v", err)
	}

	page, err := env.services.Photo.ListTrash(user.ID, "", 1)
	if err != nil {
		t.Fatalf("ListTrash failed: %v", err)
	}
	if page.Total != 2 || len(page.Items) != 2 {
		t.Fatalf("trash listing = %d items (total %d), want 2", len(page.Items), page.Total)
	}
	if page.Items[0].ID != second.ID || page.Items[1].ID != first.ID {
		t.Fatalf("trash not ordered by deleted_at desc: got [%d %d]", page.Items[0].ID, page.Items[1].ID)
	}
}
