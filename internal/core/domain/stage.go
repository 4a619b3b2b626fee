package domain

// Stage is a phase of one resolution attempt, reported to observers on every transition.
type Stage string

const (
	// StageDecidingNonSuggestions decides resolvents that something requires.
	StageDecidingNonSuggestions Stage = "deciding_non_suggestions"
	// StageDecidingNothings decides resolvents for which doing nothing may be fine.
	StageDecidingNothings Stage = "deciding_nothings"
	// StageDecidingSuggestions decides suggestions.
	StageDecidingSuggestions Stage = "deciding_suggestions"
	// StageVias creates binary destinations for packages that always want one.
	StageVias Stage = "vias"
	// StageDependents finds installed packages depending on something that goes away.
	StageDependents Stage = "dependents"
	// StagePurges finds installed packages that are no longer used.
	StagePurges Stage = "purges"
	// StageConfirmations attaches required confirmations.
	StageConfirmations Stage = "confirmations"
)

// IsDeciding reports whether s is one of the decision sweep states.
func (s Stage) IsDeciding() bool {
	switch s {
	case StageDecidingNonSuggestions, StageDecidingNothings, StageDecidingSuggestions:
		return true
	default:
		return false
	}
}
