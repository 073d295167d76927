// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package audit implements the bounded append-only event history of the
// vault. The log is an in-memory ring buffer sized for operational
// visibility, not forensic retention — once capacity is reached the oldest
// entries are evicted first.
package audit

import (
	"sync"

	"github.com/MKhiriev/go-key-vault/models"
)

// DefaultCapacity is the number of entries retained when no explicit
// capacity is configured.
const DefaultCapacity = 1000

// Log is a concurrency-safe FIFO-bounded audit log.
//
// Appends are O(1) amortized and never fail or block on capacity: when the
// log is full the oldest entry is evicted. The log has its own mutex so
// concurrent appends do not contend with the vault lock.
type Log struct {
	mu sync.Mutex

	// entries is a circular buffer of at most capacity entries.
	entries []models.AuditEntry
	// head is the index of the oldest entry once the buffer has wrapped.
	head int
	// full marks that the buffer has wrapped and head is meaningful.
	full bool

	capacity int
}

// NewLog constructs a Log with the given capacity. Non-positive capacities
// fall back to [DefaultCapacity].
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		entries:  make([]models.AuditEntry, 0, capacity),
		capacity: capacity,
	}
}

// Append adds entry to the log, evicting the oldest entry if the log is at
// capacity. Entries are immutable once appended.
func (l *Log) Append(entry models.AuditEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) < l.capacity {
		l.entries = append(l.entries, entry)
		return
	}

	// Buffer is full: overwrite the oldest slot and advance head.
	l.entries[l.head] = entry
	l.head = (l.head + 1) % l.capacity
	l.full = true
}

// Snapshot returns a copy of all entries in insertion order, oldest first.
// The returned slice is owned by the caller; later appends do not affect it.
func (l *Log) Snapshot() []models.AuditEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := make([]models.AuditEntry, 0, len(l.entries))
	if !l.full {
		return append(snapshot, l.entries...)
	}

	snapshot = append(snapshot, l.entries[l.head:]...)
	snapshot = append(snapshot, l.entries[:l.head]...)
	return snapshot
}

// Len returns the number of entries currently retained.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
