package service

import (
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/PhanHoangKe/GooglePhotosClone/internal/common"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/consts"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/logger"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/model"
)

var safeExtPattern = regexp.MustCompile(`^\.[a-z0-9]{1,8}$`)

// UploadBatch runs the whole upload pipeline for one batch: validation,
// quota pre-flight against the batch total, then per file in submitted
// order blob write followed by record write, and finally one ledger commit
// for the realized bytes. A batch that fails validation or the quota check
// performs no side effects at all.
func (s *PhotoService) UploadBatch(userID uint, files []*multipart.FileHeader, titles []string) (int, error) {
	totalSize, err := validateUploadBatch(files)
	if err != nil {
		return 0, err
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return 0, common.NewInternalError("failed to load user")
	}
	if !s.quota.CanStore(user, totalSize) {
		return 0, common.NewCapacityError(fmt.Sprintf(
			"not enough storage: %d bytes requested, %d bytes free",
			totalSize, s.quota.Remaining(user)))
	}

	created := 0
	var realized int64
	now := time.Now()

	for i, fh := range files {
		photo, err := s.storeOne(userID, fh, displayName(titles, i, fh.Filename), now)
		if err != nil {
			// Files persisted so far stay; commit their bytes so the
			// ledger matches the records that do exist.
			s.commitRealized(userID, realized)
			return created, err
		}
		created++
		realized += photo.FileSize
	}

	s.commitRealized(userID, realized)
	return created, nil
}

// storeOne persists a single file: blob strictly before record, so a failure
// can orphan a blob but never leaves a record without bytes. A record write
// failure deletes the fresh blob again.
func (s *PhotoService) storeOne(userID uint, fh *multipart.FileHeader, name string, now time.Time) (*model.Photo, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, common.NewInternalError("cannot read uploaded file")
	}
	defer func() { _ = src.Close() }()

	mediaType := declaredMediaType(fh)
	key, err := s.blobs.Store(src, consts.NamespacePhotos, storageExt(fh.Filename, mediaType))
	if err != nil {
		logger.S.Errorw("blob write failed", "user_id", userID, "err", err)
		return nil, common.NewInternalError("failed to store file")
	}

	photo := &model.Photo{
		UserID:           userID,
		Filename:         key,
		OriginalFilename: name,
		FilePath:         s.blobs.PublicURL(consts.NamespacePhotos, key),
		FileSize:         fh.Size,
		MimeType:         mediaType,
		FileType:         classifyFileType(mediaType),
		UploadedAt:       now,
	}
	if err := s.photos.Create(photo); err != nil {
		s.blobs.Delete(consts.NamespacePhotos, key)
		logger.S.Errorw("photo record write failed", "user_id", userID, "key", key, "err", err)
		return nil, common.NewInternalError("failed to save photo record")
	}
	return photo, nil
}

func (s *PhotoService) commitRealized(userID uint, realized int64) {
	if realized == 0 {
		return
	}
	if err := s.quota.Commit(userID, realized); err != nil {
		logger.S.Errorw("quota commit failed", "user_id", userID, "bytes", realized, "err", err)
	}
}

func validateUploadBatch(files []*multipart.FileHeader) (int64, error) {
	if len(files) == 0 {
		return 0, common.NewValidationError("no files submitted")
	}
	if len(files) > consts.MaxUploadBatchFiles {
		return 0, common.NewValidationError(fmt.Sprintf(
			"at most %d files per upload", consts.MaxUploadBatchFiles))
	}

	var total int64
	for _, fh := range files {
		if fh.Size > consts.MaxPhotoFileBytes {
			return 0, common.NewValidationError(fmt.Sprintf(
				"file %q exceeds the %d MB limit", fh.Filename, consts.MaxPhotoFileBytes>>20))
		}
		mediaType := declaredMediaType(fh)
		if !acceptedMediaType(mediaType) {
			return 0, common.NewValidationError(fmt.Sprintf(
				"unsupported file type %q", mediaType))
		}
		total += fh.Size
	}
	return total, nil
}

// declaredMediaType normalizes the client's Content-Type part header.
func declaredMediaType(fh *multipart.FileHeader) string {
	mediaType, _, err := mime.ParseMediaType(fh.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return strings.ToLower(mediaType)
}

func acceptedMediaType(mediaType string) bool {
	return strings.HasPrefix(mediaType, "image/") || strings.HasPrefix(mediaType, "video/")
}

// classifyFileType derives the coarse type persisted on the photo row.
func classifyFileType(mediaType string) string {
	switch {
	case strings.Contains(mediaType, "video"):
		return consts.FileTypeVideo
	case strings.Contains(mediaType, "gif"):
		return consts.FileTypeGIF
	default:
		return consts.FileTypeImage
	}
}

// displayName picks the index-aligned title when present and non-blank,
// otherwise the client's original file name.
func displayName(titles []string, index int, originalName string) string {
	if index < len(titles) {
		if title := strings.TrimSpace(titles[index]); title != "" {
			return title
		}
	}
	return filepath.Base(originalName)
}

// storageExt chooses the extension appended to the generated key. The client
// filename only contributes a vetted extension, never a path.
func storageExt(originalName, mediaType string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	if safeExtPattern.MatchString(ext) {
		return ext
	}
	if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ".bin"
}
