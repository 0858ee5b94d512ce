package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.FullName) == "" {
		errors = append(errors, ValidationError{"fullName", "is required"})
	} else if len(input.FullName) > 100 {
		errors = append(errors, ValidationError{"fullName", "must not exceed 100 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	} else if !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}

	if strings.TrimSpace(input.Address) == "" {
		errors = append(errors, ValidationError{"address", "is required"})
	} else if len(input.Address) > 255 {
		errors = append(errors, ValidationError{"address", "must not exceed 255 characters"})
	}

	if strings.TrimSpace(input.JobImportance) == "" {
		errors = append(errors, ValidationError{"jobImportance", "is required"})
	}
	if strings.TrimSpace(input.CustomerExperience) == "" {
		errors = append(errors, ValidationError{"customerExperience", "is required"})
	}
	if strings.TrimSpace(input.ContactTime) == "" {
		errors = append(errors, ValidationError{"contactTime", "is required"})
	}

	return errors
}

func isValidPhoneNumber(phone string) bool {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(phone, "")

	return len(cleaned) >= 3 && len(cleaned) <= 15
}
