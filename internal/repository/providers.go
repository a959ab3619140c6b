package repository

import "gorm.io/gorm"

type Repositories struct {
	User  UserStore
	Photo PhotoStore
	Album AlbumStore
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}

func NewPhotoRepository(db *gorm.DB) PhotoStore {
	return &PhotoRepository{db: db}
}

func NewAlbumRepository(db *gorm.DB) AlbumStore {
	return &AlbumRepository{db: db}
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:  NewUserRepository(db),
		Photo: NewPhotoRepository(db),
		Album: NewAlbumRepository(db),
	}
}
