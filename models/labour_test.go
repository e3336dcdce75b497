package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkLoad(t *testing.T) {
	assert.Equal(t, 1.0, WorkLoad(AttendancePresent))
	assert.Equal(t, 0.5, WorkLoad(AttendanceHalfDay))
	assert.Equal(t, 0.0, WorkLoad(AttendanceAbsent))
	assert.Equal(t, 0.0, WorkLoad("UNKNOWN"))
}
