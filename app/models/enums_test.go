package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, "completed", NormalizeStatus("Completed"))
	assert.Equal(t, "pending", NormalizeStatus("  PENDING "))
	assert.Equal(t, "late", NormalizeStatus("late"))
	assert.Equal(t, "", NormalizeStatus("   "))
}

func TestNormalizeDay(t *testing.T) {
	assert.Equal(t, Monday, NormalizeDay("monday"))
	assert.Equal(t, Saturday, NormalizeDay(" SATURDAY "))
	assert.Equal(t, Wednesday, NormalizeDay("Wednesday"))
	assert.Equal(t, DayOfWeek(""), NormalizeDay(""))
}
