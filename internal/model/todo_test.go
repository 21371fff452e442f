package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category Category
		want     bool
	}{
		{CategoryWork, true},
		{CategoryPersonal, true},
		{CategoryStudy, true},
		{CategoryShopping, true},
		{CategoryOther, true},
		{Category(""), false},
		{Category("chores"), false},
		{Category("WORK"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.category.Valid(), "category %q", tt.category)
	}
}

func TestPriority_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		priority Priority
		want     bool
	}{
		{PriorityLow, true},
		{PriorityMedium, true},
		{PriorityHigh, true},
		{Priority(""), false},
		{Priority("urgent"), false},
		{Priority("High"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.priority.Valid(), "priority %q", tt.priority)
	}
}
