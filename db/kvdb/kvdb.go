package kvdb

const (
	SnapshotsBucket = "snapshots"
	MetadataBucket  = "metadata"
)

var buckets = []string{SnapshotsBucket, MetadataBucket}

type DB interface {
	Set(bucket string, key string, value string) error
	Get(bucket string, key string) (string, error)
	Delete(bucket string, key string) error
	Close() error
}
