package consts

// Blob store namespaces. Photo uploads and avatars never share a directory.
const (
	NamespacePhotos  = "photos"
	NamespaceAvatars = "avatars"
)

// Upload ceilings. The three avatar/photo limits are independent entry
// points, not one configurable knob.
const (
	MaxUploadBatchFiles = 20

	MaxPhotoFileBytes         = 20 << 20 // per file in a photo batch
	MaxAvatarFileBytes        = 5 << 20  // dedicated avatar endpoint
	MaxProfileAvatarFileBytes = 2 << 20  // inline avatar in profile update
)

// DefaultStorageLimitBytes is the per-user quota applied when a user row
// carries no explicit limit (5 GiB).
const DefaultStorageLimitBytes int64 = 5 << 30

// PhotosPerPage is the fixed page size of the library and trash views.
const PhotosPerPage = 12

// Coarse media classification persisted on each photo.
const (
	FileTypeImage = "image"
	FileTypeVideo = "video"
	FileTypeGIF   = "gif"
)
