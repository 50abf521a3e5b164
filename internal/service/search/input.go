package search

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/doblock-backend/internal/domain"
)

// CategoryFeed selects tag-based feed search. Any other category searches members.
const CategoryFeed = "feed"

const maxKeywordLength = 100

// SearchInput holds the parameters for a keyword search.
type SearchInput struct {
	Keyword  string
	Category string
}

// Validate checks all fields and collects all errors.
func (i SearchInput) Validate() error {
	var errs []domain.FieldError

	keyword := domain.NormalizeKeyword(i.Keyword)
	if keyword == "" {
		errs = append(errs, domain.FieldError{Field: "keyword", Message: "required"})
	}
	if utf8.RuneCountInString(keyword) > maxKeywordLength {
		errs = append(errs, domain.FieldError{Field: "keyword", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// IsFeedSearch reports whether the input targets feeds rather than members.
func (i SearchInput) IsFeedSearch() bool {
	return strings.TrimSpace(i.Category) == CategoryFeed
}
