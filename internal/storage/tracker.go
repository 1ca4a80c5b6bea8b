package storage

import (
	"context"
	"errors"
)

// Tracker records the blob writes made during a single create/update attempt
// so the caller can undo them if the attempt fails, or finish a file swap
// once the database commit is durable. It is scoped to one operation and
// holds no state afterwards.
//
// The ordering contract it supports: new blobs are written before the commit
// (a failed commit deletes them via Abort), old blobs are deleted only after
// the commit (Finalize). A rolled-back transaction therefore never loses a
// blob that the still-valid row references.
type Tracker struct {
	blobs      BlobStore
	dir        string
	pending    []string // written this attempt, deleted on Abort
	superseded []string // replaced old names, deleted on Finalize
}

// NewTracker creates a tracker for one operation on the given blob directory.
func NewTracker(blobs BlobStore, dir string) *Tracker {
	return &Tracker{blobs: blobs, dir: dir}
}

// Uploaded records a blob written during this attempt.
func (t *Tracker) Uploaded(name string) {
	t.pending = append(t.pending, name)
}

// Superseded records an old stored name that a new upload replaces. It is
// removed only by Finalize, never by Abort.
func (t *Tracker) Superseded(name string) {
	t.superseded = append(t.superseded, name)
}

// Pending returns how many uploads this attempt has written so far.
func (t *Tracker) Pending() int {
	return len(t.pending)
}

// Abort deletes every blob written during this attempt. Superseded old blobs
// are untouched — the row still references them after rollback. Deletion is
// attempted for every pending blob even if some fail.
func (t *Tracker) Abort(ctx context.Context) error {
	var errs []error
	for _, name := range t.pending {
		if err := t.blobs.Delete(ctx, t.dir, name); err != nil {
			errs = append(errs, &BlobError{Op: "delete", Path: t.dir + "/" + name, Err: err})
		}
	}
	t.pending = nil
	return errors.Join(errs...)
}

// Finalize deletes the superseded old blobs. Call it only after a successful
// commit. Blob deletes are idempotent, so a Finalize cut short by
// cancellation can be repeated by a sweep.
func (t *Tracker) Finalize(ctx context.Context) error {
	var errs []error
	for _, name := range t.superseded {
		if err := t.blobs.Delete(ctx, t.dir, name); err != nil {
			errs = append(errs, &BlobError{Op: "delete", Path: t.dir + "/" + name, Err: err})
		}
	}
	t.superseded = nil
	return errors.Join(errs...)
}
