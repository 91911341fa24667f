package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepControllerNavigation(t *testing.T) {
	valid := map[int]bool{}
	sc := NewStepController(TotalSteps, func(step int) bool {
		ok, gated := valid[step]
		return !gated || ok
	})

	assert.True(t, sc.IsFirstStep())
	assert.False(t, sc.Retreat(), "retreat from the first step is a no-op")
	assert.Equal(t, 0, sc.Current())

	valid[0] = false
	assert.False(t, sc.Advance())
	assert.Equal(t, 0, sc.Current())

	valid[0] = true
	assert.True(t, sc.Advance())
	assert.Equal(t, 1, sc.Current())

	assert.True(t, sc.Retreat())
	assert.Equal(t, 0, sc.Current())
}

func TestStepControllerJumpTo(t *testing.T) {
	sc := NewStepController(TotalSteps, func(int) bool { return false })

	assert.False(t, sc.JumpTo(5))
	assert.False(t, sc.JumpTo(-1))
	assert.Equal(t, 0, sc.Current())

	assert.True(t, sc.JumpTo(2), "jumps ignore the gate")
	assert.Equal(t, 2, sc.Current())
}

func TestStepControllerStopsAtLastStep(t *testing.T) {
	sc := NewStepController(TotalSteps, nil)

	for i := 0; i < TotalSteps-1; i++ {
		assert.True(t, sc.Advance())
	}
	assert.True(t, sc.IsLastStep())
	assert.False(t, sc.Advance())
	assert.Equal(t, TotalSteps-1, sc.Current())
}

func TestStepControllerState(t *testing.T) {
	sc := NewStepController(TotalSteps, nil)

	assert.Equal(t, StepState{
		Current:            0,
		Name:               "welcome",
		Total:              4,
		IsFirstStep:        true,
		CanProceed:         true,
		ProgressPercentage: 25,
	}, sc.State())

	sc.JumpTo(StepPreferences)
	st := sc.State()
	assert.Equal(t, "preferences", st.Name)
	assert.True(t, st.IsLastStep)
	assert.False(t, st.IsFirstStep)
	assert.InDelta(t, 100.0, st.ProgressPercentage, 1e-9)
}

func TestStepName(t *testing.T) {
	assert.Equal(t, "user-info", StepName(StepUserInfo))
	assert.Equal(t, "contact-info", StepName(StepContactInfo))
	assert.Equal(t, "", StepName(TotalSteps))
}
