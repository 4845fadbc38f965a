package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryValid(t *testing.T) {
	for _, category := range Categories {
		assert.True(t, category.Valid(), "category %q should be valid", category)
	}

	assert.False(t, Category("Gardening").Valid())
	assert.False(t, Category("").Valid())
}

func TestCategoryColor(t *testing.T) {
	assert.Equal(t, "primary", CategoryTechnology.Color())
	assert.Equal(t, "dark", CategorySoftware.Color())

	// Unknown categories fall back to the default badge color.
	assert.Equal(t, "primary", Category("Gardening").Color())
}

func TestNotificationTypeValid(t *testing.T) {
	assert.True(t, NotificationFollow.Valid())
	assert.True(t, NotificationLike.Valid())
	assert.True(t, NotificationComment.Valid())

	assert.False(t, NotificationType("mention").Valid())
	assert.False(t, NotificationType("").Valid())
}
