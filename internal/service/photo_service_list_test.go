package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/PhanHoangKe/GooglePhotosClone/internal/consts"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/model"
)

func seedLibrary(t *testing.T, env *testEnv, userID uint) (a, b, c *model.Photo) {
	t.Helper()

	mk := func(name string, size int64, uploaded time.Time) *model.Photo {
		photo := &model.Photo{
			UserID:           userID,
			Filename:         name + ".jpg",
			OriginalFilename: name,
			FilePath:         "/storage/photos/" + name + ".jpg",
			FileSize:         size,
			MimeType:         "image/jpeg",
			FileType:         "image",
			UploadedAt:       uploaded,
		}
		if err := env.db.Create(photo).Error; err != nil {
			t.Fatalf("create photo %q: %v", name, err)
		}
		return photo
	}
	base := testTime(t, "2026-08-01T00:00:00Z")
	a = mk("Alps", 300, base.Add(2*time.Hour))
	b = mk("Beach", 100, base.Add(3*time.Hour))
	c = mk("canyon", 200, base.Add(1*time.Hour))
	return a, b, c
}

func TestList_DefaultsToNewestUploadFirst(t *testing.T) {
	env := setupTestEnv(t)
	user := mustCreateUser(t, env.db, "alice", 0, 1000)
	a, b, c := seedLibrary(t, env, user.ID)

	page, err := env.services.Photo.List(PhotoListQuery{UserID: user.ID})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Total != 3 {
		t.Fatalf("total = %d, want 3", page.Total)
	}
	want := []uint{b.ID, a.ID, c.ID}
	for i, w := range want {
		if page.Items[i].ID != w {
			t.Fatalf("position %d = photo %d, want %d", i, page.Items[i].ID, w)
		}
	}
}

func TestList_SortWhitelist(t *testing.T) {
	env := setupTestEnv(t)
	user := mustCreateUser(t, env.db, "bob", 0, 1000)
	a, b, c := seedLibrary(t, env, user.ID)

	cases := []struct {
		sortBy, sortDir string
		want            []uint
	}{
		{"name", "asc", []uint{a.ID, b.ID, c.ID}},
		{"size", "asc", []uint{b.ID, c.ID, a.ID}},
		{"size", "desc", []uint{a.ID, c.ID, b.ID}},
		{"uploaded_at", "asc", []uint{c.ID, a.ID, b.ID}},
		// Unknown sort keys fall back to newest upload first.
		{"file_path; DROP TABLE photos", "asc", []uint{b.ID, a.ID, c.ID}},
	}
	for _, tc := range cases {
		page, err := env.services.Photo.List(PhotoListQuery{
			UserID: user.ID, SortBy: tc.sortBy, SortDir: tc.sortDir,
		})
		if err != nil {
			t.Fatalf("List(%s %s) failed: %v", tc.sortBy, tc.sortDir, err)
		}
		for i, w := range tc.want {
			if page.Items[i].ID != w {
				t.Fatalf("sort %s %s: position %d = %d, want %d",
					tc.sortBy, tc.sortDir, i, page.Items[i].ID, w)
			}
		}
	}
}

func TestList_SearchIsCaseInsensitive(t *testing.T) {
	env := setupTestEnv(t)
	user := mustCreateUser(t, env.db, "carol", 0, 1000)
	_, _, c := seedLibrary(t, env, user.ID)

	page, err := env.services.Photo.List(PhotoListQuery{UserID: user.ID, Search: "CAN"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Total != 1 || page.Items[0].ID != c.ID {
		t.Fatalf("search CAN matched %d items, want only photo %d", page.Total, c.ID)
	}
}

func TestList_ExcludesTrashedAndForeignPhotos(t *testing.T) {
	env := setupTestEnv(t)
	user := mustCreateUser(t, env.db, "dave", 0, 1000)
	other := mustCreateUser(t, env.db, "erin", 0, 1000)

	visible := mustCreatePhoto(t, env.db, user.ID, "visible", 10)
	hidden := mustCreatePhoto(t, env.db, user.ID, "hidden", 10)
	mustTrashPhoto(t, env.db, hidden.ID)
	mustCreatePhoto(t, env.db, other.ID, "foreign", 10)

	page, err := env.services.Photo.List(PhotoListQuery{UserID: user.ID})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Total != 1 || page.Items[0].ID != visible.ID {
		t.Fatalf("library leaked trashed or foreign photos: %+v", page.Items)
	}
}

func TestList_PaginatesAtFixedPageSize(t *testing.T) {
	env := setupTestEnv(t)
	user := mustCreateUser(t, env.db, "fay", 0, 1<<20)

	for i := 0; i < consts.PhotosPerPage+3; i++ {
		mustCreatePhoto(t, env.db, user.ID, fmt.Sprintf("p%02d", i), 10)
	}

	first, err := env.services.Photo.List(PhotoListQuery{UserID: user.ID, Page: 1})
	if err != nil {
		t.Fatalf("List page 1 failed: %v", err)
	}
	if len(first.Items) != consts.PhotosPerPage {
		t.Fatalf("page 1 = %d items, want %d", len(first.Items), consts.PhotosPerPage)
	}
	second, err := env.services.Photo.List(PhotoListQuery{UserID: user.ID, Page: 2})
	if err != nil {
		t.Fatalf("List page 2 failed: %v", err)
	}
	if len(second.Items) != 3 {
		t.Fatalf("page 2 = %d items, want 3", len(second.Items))
	}
	if first.Total != int64(consts.PhotosPerPage+3) || second.Total != first.Total {
		t.Fatalf("totals inconsistent: %d vs %d", first.Total, second.Total)
	}
}
