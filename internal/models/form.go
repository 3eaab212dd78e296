package models

// IntakeForm is metadata for a client intake document. The binary payload
// lives in object storage under StorageKey, never in the database.
type IntakeForm struct {
	BaseModel
	AccountID   string `gorm:"type:uuid;index;not null"`
	Name        string `gorm:"not null"`
	StorageKey  string `gorm:"not null"`
	ContentType string
	Size        int64
}
