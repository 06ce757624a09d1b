package studio

// SourceMode selects which reference slots feed the next generation.
type SourceMode string

const (
	SourceSingle SourceMode = "single"
	SourceMulti  SourceMode = "multi"
)

// MaxMultiImages caps the multi-reference buffer.
const MaxMultiImages = 12

// ReferenceSet holds the three reference slots. Switching modes never
// clears the inactive slots; their contents survive a round trip.
type ReferenceSet struct {
	Single string   // primary reference, data URI
	Second string   // optional secondary reference
	Multi  []string // ordered multi buffer, oldest first
}

// SetSingle replaces the primary reference.
func (r *ReferenceSet) SetSingle(dataURI string) {
	r.Single = dataURI
}

// SetSecond replaces the secondary reference.
func (r *ReferenceSet) SetSecond(dataURI string) {
	r.Second = dataURI
}

// AddMulti appends images to the multi buffer in the order given. Images
// past the cap are silently dropped; the buffer keeps the oldest entries.
func (r *ReferenceSet) AddMulti(dataURIs ...string) {
	for _, d := range dataURIs {
		if len(r.Multi) >= MaxMultiImages {
			return
		}
		r.Multi = append(r.Multi, d)
	}
}

// RemoveMulti drops the image at index i. Out-of-range indexes are a no-op.
func (r *ReferenceSet) RemoveMulti(i int) {
	if i < 0 || i >= len(r.Multi) {
		return
	}
	r.Multi = append(r.Multi[:i], r.Multi[i+1:]...)
}

// ClearSingle drops the primary and secondary references.
func (r *ReferenceSet) ClearSingle() {
	r.Single = ""
	r.Second = ""
}

// ClearMulti empties the multi buffer.
func (r *ReferenceSet) ClearMulti() {
	r.Multi = nil
}

// Active returns the reference images the given mode feeds into a
// generation. Single mode yields only the primary slot; the secondary
// slot never joins a generation, it serves as the refine fallback. Multi
// mode yields the buffer as is.
func (r *ReferenceSet) Active(mode SourceMode) []string {
	if mode == SourceMulti {
		out := make([]string, len(r.Multi))
		copy(out, r.Multi)
		return out
	}
	if r.Single == "" {
		return nil
	}
	return []string{r.Single}
}

// HasActive reports whether the given mode would contribute any reference.
func (r *ReferenceSet) HasActive(mode SourceMode) bool {
	if mode == SourceMulti {
		return len(r.Multi) > 0
	}
	return r.Single != ""
}
