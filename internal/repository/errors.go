package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrRecipeNotFound is returned by single-recipe lookups when no row matches.
var ErrRecipeNotFound = errors.New("recipe not found")

// isDuplicateKey reports whether err is a uniqueness violation on the target
// table's own key. The drivers translate their constraint codes (SQLITE_CONSTRAINT_PRIMARYKEY,
// SQLITE_CONSTRAINT_UNIQUE, postgres 23505) into gorm.ErrDuplicatedKey when
// the handle is opened with TranslateError, so the match is by kind rather
// than by parsing error text. Every other integrity or storage error stays
// fatal and propagates to the caller.
func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
