package students

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/models"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/services"
)

func TestOverlayRosterRowKeepsStoredFields(t *testing.T) {
	existing := &models.Student{
		PRN:      "TE123",
		Name:     "Asha Kulkarni",
		Year:     "TE",
		Division: "A",
		RollNo:   "42",
		Email:    "asha@example.com",
		Phone:    "9900112233",
	}

	// A partial roster: no email or phone columns at all.
	overlayRosterRow(existing, services.Row{
		"prn":      "TE123",
		"name":     "Asha S Kulkarni",
		"division": "B",
	})

	assert.Equal(t, "Asha S Kulkarni", existing.Name)
	assert.Equal(t, "B", existing.Division)
	assert.Equal(t, "asha@example.com", existing.Email)
	assert.Equal(t, "9900112233", existing.Phone)
	assert.Equal(t, "TE", existing.Year)
	assert.Equal(t, "42", existing.RollNo)
}

func TestOverlayRosterRowHeaderAliases(t *testing.T) {
	s := &models.Student{PRN: "BE001"}

	overlayRosterRow(s, services.Row{
		"full name":   "Rahul Mehta",
		"class":       "BE",
		"div":         "A",
		"roll number": "7",
		"email id":    "rahul@example.com",
		"mobile":      "9800123456",
	})

	assert.Equal(t, "Rahul Mehta", s.Name)
	assert.Equal(t, "BE", s.Year)
	assert.Equal(t, "A", s.Division)
	assert.Equal(t, "7", s.RollNo)
	assert.Equal(t, "rahul@example.com", s.Email)
	assert.Equal(t, "9800123456", s.Phone)
}
