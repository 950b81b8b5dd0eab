package taxonomy

import "sync"

var (
	globalTaxonomy *Taxonomy
	globalOnce     sync.Once
)

// Global returns the process-wide taxonomy that samplers built without an
// explicit table draw from. It is the built-in table unless InitGlobal ran first.
func Global() *Taxonomy {
	globalOnce.Do(func() {
		globalTaxonomy = Default()
	})
	return globalTaxonomy
}

// InitGlobal installs t as the process-wide taxonomy. Only the first call
// before any Global() takes effect; a nil t keeps the built-in table.
func InitGlobal(t *Taxonomy) {
	globalOnce.Do(func() {
		if t == nil {
			t = Default()
		}
		globalTaxonomy = t
	})
}

// ResetGlobal clears the process-wide taxonomy. Tests only; not safe for
// concurrent use.
func ResetGlobal() {
	globalOnce = sync.Once{}
	globalTaxonomy = nil
}
