package ladder

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/gosimple/slug"
)

// NormalizeName trims the name and checks the minimum length.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < MinNameLength {
		return "", ErrInvalidName
	}
	return name, nil
}

// Avatar returns the two upper-cased leading characters of a name.
func Avatar(name string) string {
	runes := []rune(strings.TrimSpace(name))
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}

// Slug is the lookup key for a player name, e.g. "Jordan Ray" -> "jordan-ray".
func Slug(name string) string {
	return slug.Make(name)
}

// Validate checks the creation rules for a match. It does not check that the
// players exist.
func (m NewMatch) Validate() error {
	switch {
	case m.Player1ID == "" || m.Player2ID == "":
		return ErrMissingPlayer
	case m.Player1ID == m.Player2ID:
		return ErrSamePlayer
	case m.Score1 < 0 || m.Score2 < 0:
		return ErrNegativeScore
	case m.Score1 == m.Score2:
		return ErrDraw
	}
	return nil
}

// IsValidationError reports whether err is a rejected-input error rather than
// a lookup or storage failure.
func IsValidationError(err error) bool {
	for _, target := range []error{ErrInvalidName, ErrMissingPlayer, ErrSamePlayer, ErrNegativeScore, ErrDraw, ErrUnknownPlayer} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
