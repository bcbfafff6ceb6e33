package store

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Autosave queues content for async persistence. Non-blocking. Must not be
// called after Close.
func (s *Store) Autosave(name, content string) {
	if s == nil {
		return
	}
	select {
	case s.saveCh <- saveReq{name: name, content: content}:
	default:
		log.Warn().Str("name", name).Msg("save channel full, dropping autosave")
	}
}

// saveLoop drains saveCh and writes documents to the DB.
func (s *Store) saveLoop() {
	defer close(s.done)
	for req := range s.saveCh {
		if req.flush != nil {
			close(req.flush)
			continue
		}
		s.mu.Lock()
		if err := s.write(req.name, req.content); err != nil {
			log.Warn().Err(err).Str("name", req.name).Msg("failed to autosave document")
		}
		s.mu.Unlock()
	}
}

// Flush blocks until all queued autosaves have been written to the DB.
// Times out after 5 seconds to avoid deadlocking the caller.
func (s *Store) Flush() {
	if s == nil {
		return
	}
	done := make(chan struct{})
	select {
	case s.saveCh <- saveReq{flush: done}:
		<-done
	case <-time.After(5 * time.Second):
		log.Warn().Msg("flush timed out waiting to enqueue")
	}
}
