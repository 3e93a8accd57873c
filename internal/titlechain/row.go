package titlechain

// Option is one plausible episode identity for a season/episode slot.
// Ref is an opaque key the host can use to materialize the full episode
// record after a choice is made.
type Option struct {
	Title string `json:"title"`
	Ref   string `json:"ref,omitempty"`
}

// Row is the propagation unit: one file's episode slot with its
// candidate titles. ShowKey groups rows belonging to the same show so
// identical title strings on unrelated shows never interfere. Only rows
// with exactly two options participate in propagation; ChosenIndex is
// the single field the propagator mutates.
type Row struct {
	ShowKey     string   `json:"show_key"`
	Options     []Option `json:"options"`
	ChosenIndex int      `json:"chosen_index"`
}

// Chosen returns the currently selected option, or a zero Option when
// ChosenIndex is out of range.
func (r *Row) Chosen() Option {
	if r == nil || r.ChosenIndex < 0 || r.ChosenIndex >= len(r.Options) {
		return Option{}
	}
	return r.Options[r.ChosenIndex]
}
