package scheduler

import (
	"log"
	"time"

	"github.com/MCKesav/PaletteLive-website/datastore"
)

// Scheduler runs the daily maintenance job: pruning expired device records
// and expired palette shares.
type Scheduler struct {
	UserRepo  datastore.UserRepository
	ShareRepo datastore.ShareRepository
	ticker    *time.Ticker
	done      chan bool
}

func NewScheduler(userRepo datastore.UserRepository, shareRepo datastore.ShareRepository) *Scheduler {
	return &Scheduler{
		UserRepo:  userRepo,
		ShareRepo: shareRepo,
		done:      make(chan bool),
	}
}

// Start begins the scheduler to run at midnight every day
func (s *Scheduler) Start() {
	// Calculate time until next midnight
	now := time.Now()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	durationUntilMidnight := nextMidnight.Sub(now)

	log.Printf("Scheduler started. Next maintenance run in %v", durationUntilMidnight)

	// Wait until midnight, then run the first maintenance pass
	time.AfterFunc(durationUntilMidnight, func() {
		s.RunMaintenance()

		// After first run, schedule to run every 24 hours
		s.ticker = time.NewTicker(24 * time.Hour)
		go func() {
			for {
				select {
				case <-s.ticker.C:
					s.RunMaintenance()
				case <-s.done:
					return
				}
			}
		}()
	})
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	s.done <- true
	log.Println("Scheduler stopped")
}

// RunMaintenance prunes expired device records and palette shares. Failures
// are logged and retried on the next daily run.
func (s *Scheduler) RunMaintenance() {
	log.Println("Running daily maintenance...")

	devices, deviceErr := s.UserRepo.DeleteExpiredDevices()
	if deviceErr != nil {
		log.Printf("Failed to prune expired devices: %v", deviceErr)
	} else {
		log.Printf("Pruned %d expired device records", devices)
	}

	shares, shareErr := s.ShareRepo.DeleteExpired()
	if shareErr != nil {
		log.Printf("Failed to prune expired palette shares: %v", shareErr)
	} else {
		log.Printf("Pruned %d expired palette shares", shares)
	}
}
