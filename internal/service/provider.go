package service

import (
	"github.com/PhanHoangKe/GooglePhotosClone/internal/repository"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/storage"
)

type Services struct {
	Auth  *AuthService
	User  *UserService
	Photo *PhotoService
	Album *AlbumService
	Quota *QuotaLedger
}

func NewServices(repos *repository.Repositories, blobs *storage.DiskStore) *Services {
	quota := NewQuotaLedger(repos.User)
	return &Services{
		Auth:  NewAuthService(repos.User),
		User:  NewUserService(repos.User, repos.Photo, blobs),
		Photo: NewPhotoService(repos.Photo, repos.User, quota, blobs),
		Album: NewAlbumService(repos.Album, repos.Photo),
		Quota: quota,
	}
}
