package stock

// Snapshot backends.
const (
	BackendFile = "file"
	BackendS3   = "s3"
)

// Config holds configuration for the stock cache and its snapshot.
type Config struct {
	// Backend selects where snapshots are kept (file, s3).
	Backend string `mapstructure:"backend" default:"file"`
	// SnapshotPath is the snapshot file for the file backend.
	SnapshotPath string `mapstructure:"snapshot_path" default:"stockCache.json"`
	// SnapshotObject is the object key for the s3 backend.
	SnapshotObject string `mapstructure:"snapshot_object" default:"snapshots/stockCache.json"`
	// Shards is the number of lock stripes.
	Shards int `mapstructure:"shards" default:"64"`
}
