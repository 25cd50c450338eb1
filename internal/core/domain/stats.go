package domain

// CacheStats is a point-in-time snapshot of result cache usage.
type CacheStats struct {
	Entries       int
	Bytes         int64
	CapacityBytes int64
	Hits          uint64
	Misses        uint64
	Evictions     uint64
}
