// Package app wires the schedule core to its infrastructure: persistent
// state, the change journal, and logging. Commands talk to a Service, never
// to the stores directly.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kilianp07/tripsched/config"
	"github.com/kilianp07/tripsched/core/logger"
	"github.com/kilianp07/tripsched/core/model"
	"github.com/kilianp07/tripsched/core/schedule"
	"github.com/kilianp07/tripsched/infra/journal"
	infralog "github.com/kilianp07/tripsched/infra/logger"
	"github.com/kilianp07/tripsched/infra/state"
	"github.com/kilianp07/tripsched/internal/eventbus"
)

// Service owns a schedule store loaded from persistent state. Mutations are
// written back immediately and announced on the event bus, where the change
// journal listens.
type Service struct {
	store *schedule.Store
	state state.Store
	bus   *eventbus.Bus[journal.Record]
	jrnl  journal.Store
	log   logger.Logger

	drained sync.WaitGroup
}

// New builds a Service from the configuration, restoring any persisted
// schedule.
func New(cfg *config.Config) (*Service, error) {
	return NewWithLogger(cfg, infralog.New("service"))
}

// NewWithLogger is New with an explicit logger, used by tests.
func NewWithLogger(cfg *config.Config, log logger.Logger) (*Service, error) {
	st, err := state.Open(cfg.State.Backend, cfg.State.Path)
	if err != nil {
		return nil, fmt.Errorf("open state store: %w", err)
	}

	store := schedule.New(cfg.Schedule)
	snap, ok, err := st.Load()
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("load state: %w", err)
	}
	if ok {
		if err := store.Restore(snap); err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("restore state from %s: %w", cfg.State.Path, err)
		}
	}

	svc := &Service{
		store: store,
		state: st,
		bus:   eventbus.New[journal.Record](),
		log:   log,
	}

	if cfg.Journal.IsEnabled() {
		jrnl, err := journal.NewFileStore(cfg.Journal.Path, journal.Options{
			MaxSizeMB:  cfg.Journal.MaxSizeMB,
			MaxBackups: cfg.Journal.MaxBackups,
			MaxAgeDays: cfg.Journal.MaxAgeDays,
		})
		if err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("open journal: %w", err)
		}
		svc.jrnl = jrnl
		sub := svc.bus.Subscribe()
		svc.drained.Add(1)
		go func() {
			defer svc.drained.Done()
			for rec := range sub {
				if err := jrnl.Append(context.Background(), rec); err != nil {
					log.Warnf("journal append: %v", err)
				}
			}
		}()
	}
	return svc, nil
}

// AddDestination creates a destination, persists, and journals the change.
func (s *Service) AddDestination(name, region string) (model.Destination, error) {
	d, err := s.store.AddDestination(name, region)
	if err != nil {
		return model.Destination{}, err
	}
	if err := s.save(); err != nil {
		return model.Destination{}, err
	}
	s.bus.Publish(journal.Record{
		Timestamp:   time.Now().UTC(),
		Action:      journal.ActionDestinationAdded,
		Destination: &d,
	})
	return d, nil
}

// RemoveDestination removes a destination, persists, and journals the change.
func (s *Service) RemoveDestination(name string) error {
	// capture the full record for the journal before it disappears
	d, _ := s.store.Destination(name)
	if err := s.store.RemoveDestination(name); err != nil {
		return err
	}
	if err := s.save(); err != nil {
		return err
	}
	s.bus.Publish(journal.Record{
		Timestamp:   time.Now().UTC(),
		Action:      journal.ActionDestinationRemoved,
		Destination: &d,
	})
	return nil
}

// AddTrip plans a trip, persists, and journals the change.
func (s *Service) AddTrip(destination string, start, end time.Time, notes string) (model.Trip, error) {
	t, err := s.store.AddTrip(destination, start, end, notes)
	if err != nil {
		return model.Trip{}, err
	}
	if err := s.save(); err != nil {
		return model.Trip{}, err
	}
	s.bus.Publish(journal.Record{
		Timestamp: time.Now().UTC(),
		Action:    journal.ActionTripAdded,
		Trip:      &t,
	})
	return t, nil
}

// RemoveTrip removes a trip, persists, and journals the change.
func (s *Service) RemoveTrip(id int64) error {
	t, _ := s.store.Trip(id)
	if err := s.store.RemoveTrip(id); err != nil {
		return err
	}
	if err := s.save(); err != nil {
		return err
	}
	s.bus.Publish(journal.Record{
		Timestamp: time.Now().UTC(),
		Action:    journal.ActionTripRemoved,
		Trip:      &t,
	})
	return nil
}

// Destination looks up one destination.
func (s *Service) Destination(name string) (model.Destination, error) {
	return s.store.Destination(name)
}

// Destinations lists all destinations sorted by name.
func (s *Service) Destinations() []model.Destination { return s.store.Destinations() }

// ListTrips lists all trips in start-date order.
func (s *Service) ListTrips() []model.Trip { return s.store.ListTrips() }

// TripsInRange lists the trips intersecting [from, to].
func (s *Service) TripsInRange(from, to time.Time) []model.Trip {
	return s.store.TripsInRange(from, to)
}

func (s *Service) save() error {
	if err := s.state.Save(s.store.Snapshot()); err != nil {
		return fmt.Errorf("persist state: %w", err)
	}
	return nil
}

// Close flushes the journal and closes the stores.
func (s *Service) Close() error {
	s.bus.Close()
	s.drained.Wait()
	var firstErr error
	if s.jrnl != nil {
		if err := s.jrnl.Close(); err != nil {
			firstErr = err
		}
	}
	if err := s.state.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
