package utils

import (
	"strings"

	"github.com/meddesk/clinic-api/models"
)

// FilterUsers narrows a fetched user list with a case-insensitive substring
// match across name, email and specialization. An empty term matches all.
func FilterUsers(users []models.AdminUserView, term string) []models.AdminUserView {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return users
	}

	filtered := make([]models.AdminUserView, 0, len(users))
	for _, user := range users {
		if strings.Contains(strings.ToLower(user.Name), term) ||
			strings.Contains(strings.ToLower(user.Email), term) ||
			strings.Contains(strings.ToLower(user.Specialization), term) {
			filtered = append(filtered, user)
		}
	}
	return filtered
}
