// Package scheduler runs named background jobs on cron schedules.
package scheduler

import (
	"fmt"
	"sort"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler handles cron-based maintenance jobs
type Scheduler struct {
	cron    *cron.Cron
	jobs    map[string]cron.EntryID // job name -> entry id
	jobsMux sync.RWMutex
}

// NewScheduler creates a new scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithSeconds()), // Support seconds and @every descriptors
		jobs: make(map[string]cron.EntryID),
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Info().Int("jobs", len(s.Jobs())).Msg("scheduler started")
}

// Stop stops the scheduler and waits for running jobs
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("scheduler stopped")
}

// AddJob registers a job, replacing any job with the same name.
// schedule is a cron expression with seconds or a descriptor such as "@every 10m".
func (s *Scheduler) AddJob(name string, schedule string, job func()) error {
	s.jobsMux.Lock()
	defer s.jobsMux.Unlock()

	if entryID, exists := s.jobs[name]; exists {
		s.cron.Remove(entryID)
		delete(s.jobs, name)
	}

	entryID, err := s.cron.AddFunc(schedule, func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Str("job", name).Interface("panic", r).Msg("scheduled job panicked")
			}
		}()
		job()
	})
	if err != nil {
		return fmt.Errorf("failed to add cron job %s: %w", name, err)
	}

	s.jobs[name] = entryID
	log.Debug().Str("job", name).Str("schedule", schedule).Msg("job scheduled")
	return nil
}

// RemoveJob removes a job from the scheduler
func (s *Scheduler) RemoveJob(name string) {
	s.jobsMux.Lock()
	defer s.jobsMux.Unlock()

	if entryID, exists := s.jobs[name]; exists {
		s.cron.Remove(entryID)
		delete(s.jobs, name)
	}
}

// Jobs returns the scheduled job names, sorted
func (s *Scheduler) Jobs() []string {
	s.jobsMux.RLock()
	defer s.jobsMux.RUnlock()

	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
