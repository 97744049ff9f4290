package repositories

// SnapshotRepositoryInterface persists named JSON snapshots of in-memory state.
// Each Save replaces the previous snapshot wholesale.
type SnapshotRepositoryInterface interface {
	Save(name string, value any) error
	Load(name string, dest any) error
	Delete(name string) error
	Exists(name string) (bool, error)
}
