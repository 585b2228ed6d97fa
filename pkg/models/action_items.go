package models

// ActionItems is the structured output of the action-item extraction step.
type ActionItems struct {
	Decisions []string `json:"decisions"`
	NextSteps []string `json:"next_steps"`
}

// IsEmpty reports whether nothing was extracted.
func (a *ActionItems) IsEmpty() bool {
	return a == nil || (len(a.Decisions) == 0 && len(a.NextSteps) == 0)
}
