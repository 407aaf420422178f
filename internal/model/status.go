package model

// ProgressStatus is the tri-state label derived from a task's progress.
type ProgressStatus string

const (
	ProgressTodo     ProgressStatus = "Todo"
	ProgressOngoing  ProgressStatus = "Ongoing"
	ProgressComplete ProgressStatus = "Complete"
)

// StatusForProgress maps a progress percentage to its display label.
// 0 is Todo, anything strictly between 0 and 100 is Ongoing, and 100 or
// above is Complete. Boundaries are inclusive as stated; there is no
// rounding or hysteresis.
func StatusForProgress(progress int) ProgressStatus {
	switch {
	case progress <= 0:
		return ProgressTodo
	case progress >= 100:
		return ProgressComplete
	default:
		return ProgressOngoing
	}
}
