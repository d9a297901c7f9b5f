// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered owner of advertisements.
type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Password         string    `gorm:"size:70;not null" json:"-"`
	RegistrationTime time.Time `gorm:"autoCreateTime" json:"registration_time"`

	// Owned advertisements are removed by the database when the user is deleted.
	Advertisements []Advertisement `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"advertisements,omitempty"`
}
