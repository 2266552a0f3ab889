package entities

// Snapshot is the full persisted state of the system: the three top-level
// collections, replaced wholesale on import. A payload missing any of the
// three collections is rejected before any state is touched.
type Snapshot struct {
	Materials []*Material
	Recipes   []*Recipe
	Logs      []*ProductionLog
}
