package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEducationLevelsAtLeast(t *testing.T) {
	assert.Equal(t,
		[]EducationLevel{EducationPrimary, EducationSecondary, EducationTertiary},
		EducationLevelsAtLeast(EducationPrimary))
	assert.Equal(t,
		[]EducationLevel{EducationSecondary, EducationTertiary},
		EducationLevelsAtLeast(EducationSecondary))
	assert.Equal(t,
		[]EducationLevel{EducationTertiary},
		EducationLevelsAtLeast(EducationTertiary))
}

func TestEducationLevelValid(t *testing.T) {
	assert.True(t, EducationLevel("tertiary").Valid())
	assert.False(t, EducationLevel("doctorate").Valid())
	assert.False(t, EducationLevel("").Valid())
}
