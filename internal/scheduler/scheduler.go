package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// SessionPurger evicts idle sessions and reports how many were dropped.
type SessionPurger interface {
	PurgeExpired(ttl time.Duration) int
}

// Janitor periodically sweeps abandoned quiz sessions out of memory. A user
// who navigates away mid-quiz never tells the server; the sweep is the only
// thing reclaiming those sessions.
type Janitor struct {
	scheduler *gocron.Scheduler
	purger    SessionPurger
	ttl       time.Duration
}

func NewJanitor(purger SessionPurger, ttl time.Duration) *Janitor {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Janitor{
		scheduler: gocron.NewScheduler(time.UTC),
		purger:    purger,
		ttl:       ttl,
	}
}

// Start begins sweeping in the background at half the TTL so an idle session
// lives at most 1.5x the configured TTL.
func (j *Janitor) Start() {
	interval := j.ttl / 2
	if interval < time.Minute {
		interval = time.Minute
	}

	_, err := j.scheduler.Every(interval).Do(j.sweep)
	if err != nil {
		log.Printf("session janitor not scheduled: %v", err)
		return
	}
	j.scheduler.StartAsync()
}

func (j *Janitor) Stop() {
	j.scheduler.Stop()
}

func (j *Janitor) sweep() {
	if purged := j.purger.PurgeExpired(j.ttl); purged > 0 {
		log.Printf("purged %d expired quiz sessions", purged)
	}
}
