package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meddesk/clinic-api/models"
)

func testUsers() []models.AdminUserView {
	return []models.AdminUserView{
		{ID: 1, Name: "Alice Smith", Email: "alice@example.com", Role: models.RolePatient},
		{ID: 2, Name: "Dr. Bob Jones", Email: "bob@clinic.com", Role: models.RoleDoctor, Specialization: "Cardiology"},
		{ID: 3, Name: "Carol Admin", Email: "carol@clinic.com", Role: models.RoleAdmin},
	}
}

func TestFilterUsersEmptyTermReturnsAll(t *testing.T) {
	users := testUsers()
	assert.Equal(t, users, FilterUsers(users, ""))
	assert.Equal(t, users, FilterUsers(users, "   "))
}

func TestFilterUsersMatchesName(t *testing.T) {
	filtered := FilterUsers(testUsers(), "alice")
	assert.Len(t, filtered, 1)
	assert.Equal(t, uint(1), filtered[0].ID)
}

func TestFilterUsersMatchesEmail(t *testing.T) {
	filtered := FilterUsers(testUsers(), "CLINIC.COM")
	assert.Len(t, filtered, 2)
}

func TestFilterUsersMatchesSpecialization(t *testing.T) {
	filtered := FilterUsers(testUsers(), "cardio")
	assert.Len(t, filtered, 1)
	assert.Equal(t, uint(2), filtered[0].ID)
}

func TestFilterUsersNoMatch(t *testing.T) {
	assert.Empty(t, FilterUsers(testUsers(), "dermatology"))
}
