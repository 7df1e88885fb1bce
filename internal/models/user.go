// Package models contains the persisted domain entities and the API error taxonomy.
package models

import "time"

// User is an account. The password hash never leaves the server.
type User struct {
	ID       uint      `gorm:"primaryKey" json:"_id"`
	Name     string    `gorm:"not null" json:"name"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Avatar   string    `json:"avatar"`
	Date     time.Time `gorm:"autoCreateTime" json:"date"`
}

// UserSummary is the public slice of a user embedded in profile listings.
type UserSummary struct {
	ID     uint   `json:"_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Summary returns the public fields of u.
func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}
