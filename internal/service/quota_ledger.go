package service

import (
	"github.com/PhanHoangKe/GooglePhotosClone/internal/model"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/repository"
)

// QuotaLedger fronts the denormalized storage_used counter on the user row.
// The capacity check is advisory: it reads a snapshot, so two concurrent
// batches from the same user can both pass against stale state and jointly
// overshoot the limit. Uploads are not serialized per user on purpose.
type QuotaLedger struct {
	users repository.UserStore
}

func NewQuotaLedger(users repository.UserStore) *QuotaLedger {
	return &QuotaLedger{users: users}
}

// CanStore checks whether delta more bytes fit under the user's limit. Must
// be called with the whole batch total before any blob is written.
func (l *QuotaLedger) CanStore(user *model.User, delta int64) bool {
	return user.StorageUsed+delta <= user.EffectiveStorageLimit()
}

// Remaining returns the free bytes under the limit, never negative.
func (l *QuotaLedger) Remaining(user *model.User) int64 {
	remaining := user.EffectiveStorageLimit() - user.StorageUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Commit adds the realized byte total of a successful batch in a single
// increment.
func (l *QuotaLedger) Commit(userID uint, delta int64) error {
	return l.users.IncreaseStorageUsed(userID, delta)
}

// Release subtracts a purged photo's recorded size, clamped at zero.
func (l *QuotaLedger) Release(userID uint, size int64) error {
	return l.users.DecreaseStorageUsedClamped(userID, size)
}
