package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserProfile_Usable(t *testing.T) {
	var nilProfile *UserProfile

	assert.False(t, nilProfile.Usable())
	assert.False(t, (&UserProfile{}).Usable())
	assert.True(t, (&UserProfile{Email: "u@x.com"}).Usable())
}
