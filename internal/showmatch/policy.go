package showmatch

// Policy centralizes matching thresholds and tolerances. The fuzzy values
// are empirically tuned and may need recalibration; keeping them here
// means the cascade never hard-codes a literal.
type Policy struct {
	// AutoAcceptScore is the minimum best fuzzy score required to resolve
	// without prompting.
	AutoAcceptScore float64
	// AutoAcceptMargin is the minimum lead the best fuzzy score must hold
	// over the runner-up.
	AutoAcceptMargin float64
	// YearTolerance is the permitted distance between a year token in the
	// extracted name and a candidate's first-aired year.
	YearTolerance int
	// PreselectScore is the minimum score for auto-selecting an episode
	// title from a filename-embedded hint.
	PreselectScore float64
	// PreselectMargin is the minimum lead required between the two title
	// options during pre-selection.
	PreselectMargin float64
}

// DefaultPolicy returns the tuned defaults.
func DefaultPolicy() Policy {
	return Policy{
		AutoAcceptScore:  0.80,
		AutoAcceptMargin: 0.10,
		YearTolerance:    1,
		PreselectScore:   0.60,
		PreselectMargin:  0.15,
	}
}

// Normalized replaces out-of-range values with defaults so a zero or
// partially filled Policy is always safe to use.
func (p Policy) Normalized() Policy {
	d := DefaultPolicy()

	if p.AutoAcceptScore <= 0 || p.AutoAcceptScore > 1 {
		p.AutoAcceptScore = d.AutoAcceptScore
	}
	if p.AutoAcceptMargin <= 0 || p.AutoAcceptMargin >= 1 {
		p.AutoAcceptMargin = d.AutoAcceptMargin
	}
	if p.YearTolerance < 0 {
		p.YearTolerance = d.YearTolerance
	}
	if p.PreselectScore <= 0 || p.PreselectScore > 1 {
		p.PreselectScore = d.PreselectScore
	}
	if p.PreselectMargin <= 0 || p.PreselectMargin >= 1 {
		p.PreselectMargin = d.PreselectMargin
	}

	return p
}
