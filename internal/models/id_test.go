package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIDIsValid(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.Len(t, id, 24)
		assert.True(t, ValidID(id))
		assert.False(t, seen[id], "ids must not repeat")
		seen[id] = true
	}
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID("507f1f77bcf86cd799439011"))

	assert.False(t, ValidID(""))
	assert.False(t, ValidID("507f1f77bcf86cd79943901"))           // too short
	assert.False(t, ValidID("507f1f77bcf86cd7994390111"))         // too long
	assert.False(t, ValidID("507F1F77BCF86CD799439011"))          // uppercase
	assert.False(t, ValidID("507f1f77bcf86cd79943901g"))          // non-hex
	assert.False(t, ValidID("507f1f77bcf86cd799439011\n"))        // trailing newline
	assert.False(t, ValidID("'; DROP TABLE reservations; --...")) // injection attempt
}
