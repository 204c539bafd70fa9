package rest

import (
	"fmt"
	"net/mail"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/taskboard/internal/server/models"
)

const (
	nameMinLen        = 2
	nameMaxLen        = 50
	passwordMinLen    = 6
	titleMinLen       = 3
	titleMaxLen       = 100
	descriptionMaxLen = 500
)

func validateName(name string) []string {
	n := utf8.RuneCountInString(name)
	if n < nameMinLen || n > nameMaxLen {
		return []string{fmt.Sprintf("name must be between %d and %d characters", nameMinLen, nameMaxLen)}
	}
	return nil
}

func validateEmail(email string) []string {
	if _, err := mail.ParseAddress(email); err != nil {
		return []string{"please provide a valid email"}
	}
	return nil
}

func validatePassword(password string) []string {
	if utf8.RuneCountInString(password) < passwordMinLen {
		return []string{fmt.Sprintf("password must be at least %d characters long", passwordMinLen)}
	}
	return nil
}

func validateTitle(title string) []string {
	n := utf8.RuneCountInString(title)
	if n < titleMinLen || n > titleMaxLen {
		return []string{fmt.Sprintf("title must be between %d and %d characters", titleMinLen, titleMaxLen)}
	}
	return nil
}

func validateDescription(description string) []string {
	if utf8.RuneCountInString(description) > descriptionMaxLen {
		return []string{fmt.Sprintf("description cannot exceed %d characters", descriptionMaxLen)}
	}
	return nil
}

func validatePriority(priority string) []string {
	if !models.ValidPriority(models.Priority(priority)) {
		return []string{"priority must be low, medium, or high"}
	}
	return nil
}

// parseDueDate accepts an RFC 3339 timestamp.
func parseDueDate(value string) (time.Time, []string) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, []string{"dueDate must be a valid RFC 3339 timestamp"}
	}
	return t, nil
}
