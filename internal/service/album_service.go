package service

import (
	"errors"
	"strings"
	"time"

	"github.com/PhanHoangKe/GooglePhotosClone/internal/common"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/model"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/repository"

	"gorm.io/gorm"
)

type AlbumService struct {
	albums repository.AlbumStore
	photos repository.PhotoStore
}

func NewAlbumService(albums repository.AlbumStore, photos repository.PhotoStore) *AlbumService {
	return &AlbumService{albums: albums, photos: photos}
}

// CoverPhoto is the denormalized cover pointer, re-validated on every read:
// a trashed or purged cover renders as nil instead of a broken link.
type CoverPhoto struct {
	ID       uint   `json:"id"`
	FilePath string `json:"file_path"`
}

type AlbumSummary struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	PhotosCount int64       `json:"photos_count"`
	CreatedAt   time.Time   `json:"created_at"`
	CoverPhoto  *CoverPhoto `json:"cover_photo"`
}

type AlbumDetail struct {
	AlbumSummary
	Photos []model.Photo `json:"photos"`
}

// Create builds an album from an ordered, duplicate-free list of the
// caller's active photos. Membership order follows the list position and the
// cover is fixed to the first id. Any invalid id fails the whole operation
// before anything is written.
func (s *AlbumService) Create(userID uint, name, description string, photoIDs []uint) (*model.Album, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.NewValidationError("album name is required")
	}
	if len(name) > 255 {
		return nil, common.NewValidationError("album name is too long")
	}
	if len(description) > 1000 {
		return nil, common.NewValidationError("album description is too long")
	}
	if len(photoIDs) == 0 {
		return nil, common.NewValidationError("select at least one photo")
	}

	seen := make(map[uint]struct{}, len(photoIDs))
	for _, id := range photoIDs {
		if _, dup := seen[id]; dup {
			return nil, common.NewValidationError("duplicate photo in selection")
		}
		seen[id] = struct{}{}
	}

	photos, err := s.photos.FindActiveByIDsAndUserID(photoIDs, userID)
	if err != nil {
		return nil, common.NewInternalError("failed to verify photos")
	}
	if len(photos) != len(photoIDs) {
		return nil, common.NewValidationError("one or more photos are invalid")
	}

	coverID := photoIDs[0]
	album := &model.Album{
		UserID:       userID,
		Name:         name,
		Description:  description,
		CoverPhotoID: &coverID,
	}
	if err := s.albums.CreateWithPhotos(album, photoIDs); err != nil {
		return nil, common.NewInternalError("failed to create album")
	}
	return album, nil
}

// List returns the caller's albums newest first with member counts and
// re-validated covers.
func (s *AlbumService) List(userID uint) ([]AlbumSummary, error) {
	albums, err := s.albums.ListByUser(userID)
	if err != nil {
		return nil, common.NewInternalError("failed to list albums")
	}

	albumIDs := make([]uint, 0, len(albums))
	coverIDs := make([]uint, 0, len(albums))
	for _, a := range albums {
		albumIDs = append(albumIDs, a.ID)
		if a.CoverPhotoID != nil {
			coverIDs = append(coverIDs, *a.CoverPhotoID)
		}
	}

	counts, err := s.albums.CountPhotosByAlbumIDs(albumIDs)
	if err != nil {
		return nil, common.NewInternalError("failed to count album photos")
	}
	covers, err := s.resolveCovers(coverIDs, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]AlbumSummary, 0, len(albums))
	for _, a := range albums {
		summaries = append(summaries, s.summarize(&a, counts[a.ID], covers))
	}
	return summaries, nil
}

// Get loads one album with its photos in membership order. Ownership
// mismatches surface as not-found.
func (s *AlbumService) Get(userID, albumID uint) (*AlbumDetail, error) {
	album, err := s.albums.FindByIDAndUserID(albumID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("album not found")
		}
		return nil, common.NewInternalError("failed to load album")
	}

	photos, err := s.albums.ListAlbumPhotos(album.ID)
	if err != nil {
		return nil, common.NewInternalError("failed to load album photos")
	}

	var coverIDs []uint
	if album.CoverPhotoID != nil {
		coverIDs = []uint{*album.CoverPhotoID}
	}
	covers, err := s.resolveCovers(coverIDs, userID)
	if err != nil {
		return nil, err
	}

	return &AlbumDetail{
		AlbumSummary: s.summarize(album, int64(len(photos)), covers),
		Photos:       photos,
	}, nil
}

// resolveCovers loads the active photos the cover ids still point to.
func (s *AlbumService) resolveCovers(coverIDs []uint, userID uint) (map[uint]*CoverPhoto, error) {
	covers := make(map[uint]*CoverPhoto, len(coverIDs))
	if len(coverIDs) == 0 {
		return covers, nil
	}
	photos, err := s.photos.FindActiveByIDsAndUserID(coverIDs, userID)
	if err != nil {
		return nil, common.NewInternalError("failed to load album covers")
	}
	for _, p := range photos {
		p := p
		covers[p.ID] = &CoverPhoto{ID: p.ID, FilePath: p.FilePath}
	}
	return covers, nil
}

func (s *AlbumService) summarize(album *model.Album, count int64, covers map[uint]*CoverPhoto) AlbumSummary {
	summary := AlbumSummary{
		ID:          album.ID,
		Name:        album.Name,
		Description: album.Description,
		PhotosCount: count,
		CreatedAt:   album.CreatedAt,
	}
	if album.CoverPhotoID != nil {
		summary.CoverPhoto = covers[*album.CoverPhotoID]
	}
	return summary
}
