package ports

import "go.trai.ch/deco/internal/core/domain"

// ResultCache stores the last pipeline outcome per file, validated by content digest.
//
//go:generate go run go.uber.org/mock/mockgen -source=result_cache.go -destination=mocks/mock_result_cache.go -package=mocks
type ResultCache interface {
	// Configure discards every record and sets the byte budget.
	Configure(capacityBytes int64)

	// Lookup returns the record for id only when its digest equals digest.
	Lookup(id domain.FileID, digest domain.Digest) (domain.CacheRecord, bool)

	// Store inserts or overwrites the record for id, evicting least recently used
	// records until the cache fits its budget.
	Store(id domain.FileID, digest domain.Digest, outcome domain.Outcome)

	// Stats returns a snapshot of cache usage.
	Stats() domain.CacheStats
}
