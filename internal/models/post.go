package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Like records that a user liked a post.
type Like struct {
	ID   string `json:"_id"`
	User uint   `json:"user"`
}

func (l *Like) ElementID() string      { return l.ID }
func (l *Like) SetElementID(id string) { l.ID = id }

// Comment is a reply on a post. Name and avatar are captured when it is written.
type Comment struct {
	ID     string    `json:"_id"`
	User   uint      `json:"user"`
	Text   string    `json:"text"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

func (c *Comment) ElementID() string      { return c.ID }
func (c *Comment) SetElementID(id string) { c.ID = id }

// ApplyPatch only lets the text change.
func (c *Comment) ApplyPatch(patch Comment) {
	c.Text = patch.Text
}

// Post is a status update. Name and avatar are snapshots of the author at creation.
type Post struct {
	ID       uint                         `gorm:"primaryKey" json:"_id"`
	UserID   uint                         `gorm:"not null;index" json:"user"`
	Text     string                       `gorm:"type:text;not null" json:"text"`
	Name     string                       `json:"name"`
	Avatar   string                       `json:"avatar"`
	Likes    datatypes.JSONSlice[Like]    `json:"likes"`
	Comments datatypes.JSONSlice[Comment] `json:"comments"`
	Date     time.Time                    `gorm:"index" json:"date"`
}

// NewPost returns a post by author with empty likes and comments.
func NewPost(author *User, text string, now time.Time) *Post {
	return &Post{
		UserID:   author.ID,
		Text:     text,
		Name:     author.Name,
		Avatar:   author.Avatar,
		Likes:    datatypes.JSONSlice[Like]{},
		Comments: datatypes.JSONSlice[Comment]{},
		Date:     now,
	}
}

// AfterFind keeps embedded arrays non-nil so they serialize as [].
func (p *Post) AfterFind(_ *gorm.DB) error {
	if p.Likes == nil {
		p.Likes = datatypes.JSONSlice[Like]{}
	}
	if p.Comments == nil {
		p.Comments = datatypes.JSONSlice[Comment]{}
	}
	return nil
}
