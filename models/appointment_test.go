package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmationCode(t *testing.T) {
	a := Appointment{ID: "9f8e7d6c-aaaa-bbbb-cccc-0123456789ab"}
	assert.Equal(t, "6789AB", a.ConfirmationCode())

	short := Appointment{ID: "ab12"}
	assert.Equal(t, "AB12", short.ConfirmationCode())
}

func TestIsValidTimeSlot(t *testing.T) {
	assert.True(t, IsValidTimeSlot("09:00"))
	assert.True(t, IsValidTimeSlot("17:00"))
	assert.False(t, IsValidTimeSlot("12:00"))
	assert.False(t, IsValidTimeSlot("9:00"))
	assert.False(t, IsValidTimeSlot(""))
}

func TestFixedReferenceData(t *testing.T) {
	assert.Len(t, TimeSlots, 13)
	assert.Len(t, Doctors, 3)
	assert.NotEmpty(t, Services)
	assert.Equal(t, []string{"Dr. Can Yılmaz", "Dr. Elif Demir", "Dr. Mehmet Öz"}, DoctorNames())
}
