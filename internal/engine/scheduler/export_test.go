package scheduler

import "go.trai.ch/deco/internal/core/domain"

// GetFileStatusMap returns a copy of the internal file status map.
// This is exported for testing purposes only.
func (s *Scheduler) GetFileStatusMap() map[string]domain.FileStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	statusMap := make(map[string]domain.FileStatus, len(s.fileStatus))
	for k, v := range s.fileStatus {
		statusMap[k.String()] = v
	}
	return statusMap
}
