// Package core lists the persistent models of the site.
package core

import (
	groupStructs "github.com/ncobase/yatube/core/group/structs"
	postStructs "github.com/ncobase/yatube/core/post/structs"
	userStructs "github.com/ncobase/yatube/core/user/structs"
)

// Models returns the models to migrate, referenced tables first
func Models() []any {
	return []any{
		&userStructs.User{},
		&groupStructs.Group{},
		&postStructs.Post{},
	}
}
