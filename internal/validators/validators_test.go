package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPHMobile(t *testing.T) {
	valid := []string{"09171234567", "09998887766"}
	for _, s := range valid {
		assert.True(t, IsPHMobile(s), s)
	}

	invalid := []string{
		"",
		"0917123456",    // too short
		"091712345678",  // too long
		"08171234567",   // wrong prefix
		"+639171234567", // international form not accepted
		"0917-123-4567",
	}
	for _, s := range invalid {
		assert.False(t, IsPHMobile(s), s)
	}
}

func TestIsBloodType(t *testing.T) {
	for _, s := range []string{"A+", "A-", "B+", "B-", "O+", "O-", "AB+", "AB-"} {
		assert.True(t, IsBloodType(s), s)
	}

	for _, s := range []string{"", "C+", "a+", "AB", "O", "AB +"} {
		assert.False(t, IsBloodType(s), s)
	}
}

func TestCustomTags(t *testing.T) {
	v := New()

	type intake struct {
		Phone string `validate:"required,ph_mobile"`
		Blood string `validate:"required,blood_type"`
	}

	assert.NoError(t, v.Struct(intake{Phone: "09171234567", Blood: "O+"}))
	assert.Error(t, v.Struct(intake{Phone: "12345", Blood: "O+"}))
	assert.Error(t, v.Struct(intake{Phone: "09171234567", Blood: "X+"}))
}
