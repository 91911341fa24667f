package application

// Wizard stages in display order.
const (
	StepWelcome = iota
	StepUserInfo
	StepContactInfo
	StepPreferences

	TotalSteps = 4
)

var stepNames = [TotalSteps]string{"welcome", "user-info", "contact-info", "preferences"}

// StepName returns the stage label for step, or "" when out of range.
func StepName(step int) string {
	if step < 0 || step >= TotalSteps {
		return ""
	}
	return stepNames[step]
}

// StepState is a read-only snapshot of the controller for rendering.
type StepState struct {
	Current            int     `json:"current"`
	Name               string  `json:"name"`
	Total              int     `json:"total"`
	IsFirstStep        bool    `json:"isFirstStep"`
	IsLastStep         bool    `json:"isLastStep"`
	CanProceed         bool    `json:"canProceed"`
	ProgressPercentage float64 `json:"progressPercentage"`
}

// StepController owns the current step index. Forward moves are gated by
// gate(current); backward moves and jumps are not.
type StepController struct {
	current int
	total   int
	gate    func(step int) bool
}

func NewStepController(total int, gate func(step int) bool) *StepController {
	return &StepController{total: total, gate: gate}
}

func (s *StepController) Current() int { return s.current }
func (s *StepController) Total() int   { return s.total }

// CanProceed reports whether step's data allows moving past it.
func (s *StepController) CanProceed(step int) bool {
	if s.gate == nil {
		return true
	}
	return s.gate(step)
}

// Advance moves forward one step when not on the last step and the current
// step is valid. It reports whether the index changed.
func (s *StepController) Advance() bool {
	if s.current < s.total-1 && s.CanProceed(s.current) {
		s.current++
		return true
	}
	return false
}

// Retreat moves back one step unless already on the first.
func (s *StepController) Retreat() bool {
	if s.current > 0 {
		s.current--
		return true
	}
	return false
}

// JumpTo moves to any step in range without consulting the gate.
func (s *StepController) JumpTo(step int) bool {
	if step < 0 || step >= s.total {
		return false
	}
	s.current = step
	return true
}

func (s *StepController) IsFirstStep() bool { return s.current == 0 }
func (s *StepController) IsLastStep() bool  { return s.current == s.total-1 }

func (s *StepController) ProgressPercentage() float64 {
	return float64(s.current+1) / float64(s.total) * 100
}

func (s *StepController) State() StepState {
	return StepState{
		Current:            s.current,
		Name:               StepName(s.current),
		Total:              s.total,
		IsFirstStep:        s.IsFirstStep(),
		IsLastStep:         s.IsLastStep(),
		CanProceed:         s.CanProceed(s.current),
		ProgressPercentage: s.ProgressPercentage(),
	}
}
