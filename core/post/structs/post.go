// Package structs defines the post model and its form.
package structs

import (
	"errors"
	"time"

	groupStructs "github.com/ncobase/yatube/core/group/structs"
	userStructs "github.com/ncobase/yatube/core/user/structs"
	"github.com/ncobase/yatube/util"
)

var (
	// ErrPostNotFound is returned when no post matches the lookup
	ErrPostNotFound = errors.New("post not found")
	// ErrNotAuthor is returned when someone other than the author edits a post
	ErrNotAuthor = errors.New("only the author can edit the post")
)

// titleLength is how much of the text a post shows as its name
const titleLength = 15

// Post is a text published by a user, optionally in a group
type Post struct {
	ID       uint                `gorm:"primaryKey" json:"id"`
	Text     string              `gorm:"type:text;not null" json:"text"`
	PubDate  time.Time           `gorm:"not null;index" json:"pub_date"`
	AuthorID uint                `gorm:"not null;index" json:"author_id"`
	Author   *userStructs.User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"author,omitempty"`
	GroupID  *uint               `gorm:"index" json:"group_id"`
	Group    *groupStructs.Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"group,omitempty"`
}

// TableName sets the table of the model
func (Post) TableName() string {
	return "posts"
}

func (p *Post) String() string {
	return util.Truncate(p.Text, titleLength)
}

// PostForm is the body of the new and edit post forms. Group is the id of
// the selected group as submitted, empty for none.
type PostForm struct {
	Text  string `form:"text" validate:"notblank"`
	Group string `form:"group"`
}

// FormFromPost pre-fills a form with the current values of a post
func FormFromPost(p *Post) *PostForm {
	form := &PostForm{Text: p.Text}
	if p.GroupID != nil {
		form.Group = util.UintToString(*p.GroupID)
	}
	return form
}
