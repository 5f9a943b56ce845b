package services

import (
	"fmt"
	"time"

	"taskboard-project/backend/board-service/models"
)

// requiredText enforces the create-time rule for an entity's primary text
// field: present and non-empty, otherwise the "is required" message.
func requiredText(payload models.Patch, key, requiredMsg string) (string, error) {
	if !payload.Has(key) {
		return "", &ValidationError{Message: requiredMsg}
	}
	value, err := payload.StringField(key)
	if err != nil || value == nil || *value == "" {
		return "", &ValidationError{Message: requiredMsg}
	}
	return *value, nil
}

// updatedText enforces the update-time rule for a required text field: the
// key may be absent, but when present it must be a non-empty string.
// Returns nil when the key is absent.
func updatedText(payload models.Patch, key, emptyMsg string) (*string, error) {
	if !payload.Has(key) {
		return nil, nil
	}
	value, err := payload.StringField(key)
	if err != nil || value == nil || *value == "" {
		return nil, &ValidationError{Message: emptyMsg}
	}
	return value, nil
}

// optionalText reads an optional free-text field. null clears it; any
// non-string value is rejected.
func optionalText(payload models.Patch, key, label string) (*string, error) {
	value, err := payload.StringField(key)
	if err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("%s must be a string", label)}
	}
	return value, nil
}

// dateField reads an optional calendar-date field. null clears it; a present
// string must be a valid YYYY-MM-DD date.
func dateField(payload models.Patch, key string) (*string, error) {
	value, err := payload.StringField(key)
	if err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("Invalid %s format. Use YYYY-MM-DD.", key)}
	}
	if value != nil {
		if _, parseErr := time.Parse("2006-01-02", *value); parseErr != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("Invalid %s format. Use YYYY-MM-DD.", key)}
		}
	}
	return value, nil
}

// orderField parses the sibling-order field. The stored value is taken
// verbatim: no uniqueness or contiguity check, no shifting of siblings.
func orderField(payload models.Patch, key string) (int, error) {
	value, err := payload.IntField(key)
	if err != nil {
		return 0, &ValidationError{Message: "Order must be an integer"}
	}
	return value, nil
}

// completedField parses the subtask completion flag, rejecting anything that
// is not a genuine boolean.
func completedField(payload models.Patch, key string) (bool, error) {
	value, err := payload.BoolField(key)
	if err != nil {
		return false, &ValidationError{Message: "Completed status must be a boolean"}
	}
	return value, nil
}
