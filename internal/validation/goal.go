package validation

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const MaxGoalTextLength = 500

var (
	ErrGoalTextRequired = errors.New("Please add a text field")
	ErrGoalTextTooLong  = errors.New("text is too long (max 500 characters)")
)

// GoalText trims the text and checks it is non-empty and within bounds.
func GoalText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)

	if trimmed == "" {
		return "", ErrGoalTextRequired
	}

	if utf8.RuneCountInString(trimmed) > MaxGoalTextLength {
		return "", ErrGoalTextTooLong
	}

	return trimmed, nil
}
