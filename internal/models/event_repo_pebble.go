package models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
)

// Pebble key space: "event/<eventId>". The upper bound is the prefix with
// its last byte bumped ('0' == '/'+1), covering exactly the event records.
var (
	eventKeyPrefix     = []byte("event/")
	eventKeyUpperBound = []byte("event0")
)

func eventKey(eventID string) []byte {
	return append(append([]byte(nil), eventKeyPrefix...), eventID...)
}

// PebbleRepo persists events in an embedded Pebble database. It backs local
// development and tests without a MongoDB instance; filtering happens
// in memory over a prefix scan.
type PebbleRepo struct {
	db *pebble.DB
}

func PebbleNewRepo(db *pebble.DB) *PebbleRepo {
	return &PebbleRepo{db: db}
}

func (pdb *PebbleRepo) get(eventID string) (*Event, error) {
	val, closer, err := pdb.db.Get(eventKey(eventID))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: read failed: %v", ErrStoreUnavailable, err)
	}
	defer closer.Close()

	var ev Event
	if err := json.Unmarshal(val, &ev); err != nil {
		return nil, fmt.Errorf("%w: corrupt record %q: %v", ErrStoreUnavailable, eventID, err)
	}
	return &ev, nil
}

func (pdb *PebbleRepo) put(ev *Event) error {
	buf, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("%w: encode failed: %v", ErrStoreUnavailable, err)
	}
	if err := pdb.db.Set(eventKey(ev.EventID), buf, pebble.Sync); err != nil {
		return fmt.Errorf("%w: write failed: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// CreateEvent is check-then-put rather than a conditional write: concurrent
// creates of the same id can race. Accepted, the same way concurrent updates
// are last-write-wins.
func (pdb *PebbleRepo) CreateEvent(_ context.Context, ev *Event) error {
	_, err := pdb.get(ev.EventID)
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}
	return pdb.put(ev)
}

func (pdb *PebbleRepo) GetEvent(_ context.Context, eventID string) (*Event, error) {
	return pdb.get(eventID)
}

func (pdb *PebbleRepo) UpdateEvent(_ context.Context, eventID string, upd *UpdateEventInput, now time.Time) (*Event, error) {
	ev, err := pdb.get(eventID)
	if err != nil {
		return nil, err
	}
	ev.Apply(upd, now)
	if err := pdb.put(ev); err != nil {
		return nil, err
	}
	return ev, nil
}

func (pdb *PebbleRepo) DeleteEvent(_ context.Context, eventID string) error {
	if _, err := pdb.get(eventID); err != nil {
		return err
	}
	if err := pdb.db.Delete(eventKey(eventID), pebble.Sync); err != nil {
		return fmt.Errorf("%w: delete failed: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (pdb *PebbleRepo) ListEvents(_ context.Context, filter ListFilter) ([]*Event, error) {
	iter, err := pdb.db.NewIter(&pebble.IterOptions{
		LowerBound: eventKeyPrefix,
		UpperBound: eventKeyUpperBound,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: scan failed: %v", ErrStoreUnavailable, err)
	}
	defer iter.Close()

	limit := filter.limit()
	var events []*Event
	for iter.First(); iter.Valid() && len(events) < limit; iter.Next() {
		var ev Event
		if err := json.Unmarshal(iter.Value(), &ev); err != nil {
			return nil, fmt.Errorf("%w: corrupt record %q: %v", ErrStoreUnavailable, iter.Key(), err)
		}
		if filter.Matches(&ev) {
			events = append(events, &ev)
		}
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("%w: scan failed: %v", ErrStoreUnavailable, err)
	}

	return events, nil
}
