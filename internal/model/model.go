package model

import (
	"time"
)

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"size:64;not null;uniqueIndex" json:"username"`
	HashedPassword string    `gorm:"not null" json:"-"`
	Role           UserRole  `gorm:"type:varchar(16);not null" json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type UserRole string

const (
	RoleManager    UserRole = "MANAGER"
	RoleTeamLeader UserRole = "TEAMLEADER"
	RoleFloorStaff UserRole = "FLOORSTAFF"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleManager, RoleTeamLeader, RoleFloorStaff:
		return true
	}
	return false
}

type Movie struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Title       string      `gorm:"size:200;not null" json:"title"`
	Year        int         `gorm:"not null" json:"year"`
	Rating      MovieRating `gorm:"type:varchar(4);not null" json:"rating"`
	CreatedByID uint        `gorm:"not null;index" json:"createdBy"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type MovieRating string

const (
	RatingG  MovieRating = "G"
	RatingPG MovieRating = "PG"
	RatingM  MovieRating = "M"
	RatingMA MovieRating = "MA"
	RatingR  MovieRating = "R"
)

func (r MovieRating) Valid() bool {
	switch r {
	case RatingG, RatingPG, RatingM, RatingMA, RatingR:
		return true
	}
	return false
}

// AuditLog rows are written by the audit workflow only, never directly by
// request handlers.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Action    string    `gorm:"size:32;not null;index" json:"action"`
	ActorID   uint      `gorm:"index" json:"actorId"`
	MovieID   *uint     `gorm:"index" json:"movieId,omitempty"`
	Detail    string    `gorm:"type:text" json:"detail"`
	CreatedAt time.Time `json:"createdAt"`
}
