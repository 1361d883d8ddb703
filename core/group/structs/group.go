// Package structs defines the group model.
package structs

import "errors"

var (
	// ErrGroupNotFound is returned when no group matches the lookup
	ErrGroupNotFound = errors.New("group not found")
	// ErrGroupExists is returned when the title or slug is already used
	ErrGroupExists = errors.New("group already exists")
)

// Group is a named collection of posts addressed by its slug
type Group struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:200;uniqueIndex;not null" json:"title"`
	Slug        string `gorm:"size:50;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
}

// TableName sets the table of the model
func (Group) TableName() string {
	return "groups"
}

func (g *Group) String() string {
	return g.Title
}

// CreateGroupBody holds the fields of a new group; an empty slug is derived from the title
type CreateGroupBody struct {
	Title       string `json:"title" validate:"notblank,max=200"`
	Slug        string `json:"slug" validate:"required,slug"`
	Description string `json:"description"`
}
