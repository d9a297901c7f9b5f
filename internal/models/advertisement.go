package models

// Advertisement represents a classified ad posted by a user.
type Advertisement struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Header  string  `gorm:"not null" json:"header"`
	Desc    *string `json:"desc,omitempty"`
	OwnerID uint    `gorm:"not null;index" json:"owner_id"`
}
