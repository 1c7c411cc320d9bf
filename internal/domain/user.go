package domain

import (
	"time"

	"gorm.io/datatypes"
)

// User is a registered player account. Usernames are exact-match and
// case-sensitive: "Alice" and "alice" are different accounts.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PlayerSave holds the single save blob for a user. SaveData is opaque to
// the server; the client owns its structure. The unique index on UserID
// enforces the one-save-per-user invariant at the storage layer.
type PlayerSave struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"userId" gorm:"uniqueIndex;not null"`
	SaveData  datatypes.JSON `json:"saveData"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
