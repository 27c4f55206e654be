package translit

import (
	"strings"

	"github.com/cockroachdb/errors"

	"codeberg.org/snonux/banglahindi/internal/lexicon"
)

// ValidateBanglaText checks that text is worth transliterating.
func ValidateBanglaText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("text cannot be empty")
	}

	if !lexicon.ContainsBangla(text) {
		return errors.WithHint(
			errors.New("text must contain Bangla characters"),
			"input is expected in Bengali script (U+0980 to U+09FF)")
	}

	return nil
}
