package main

import (
	"context"
	"log"
	"time"

	"townhubBack/internal/repositories"
)

const eventCleanerTimeout = 1 * time.Minute

// startEventCleaner archives events whose start time has passed, once on
// boot and then once a day.
func startEventCleaner(ctx context.Context, repo *repositories.EventRepository, infoLog, errorLog *log.Logger) {
	if repo == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		runOnce := func() {
			runCtx, cancel := context.WithTimeout(ctx, eventCleanerTimeout)
			archived, err := repo.ArchivePastEvents(runCtx, time.Now().UTC())
			cancel()
			if err != nil {
				if errorLog != nil {
					errorLog.Printf("event cleaner: failed to archive past events: %v", err)
				}
			} else if archived > 0 && infoLog != nil {
				infoLog.Printf("event cleaner: archived %d past events", archived)
			}
		}

		runOnce()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runOnce()
			}
		}
	}()
}
