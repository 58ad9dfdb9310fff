// Package storage is the device-local key-value store behind the record
// stores. Each record lives in one slot addressed by a fixed string key;
// writes overwrite the whole slot.
//
// Two implementations satisfy Repository: SQLiteRepository, backed by a
// goose-migrated SQLite file, and MemoryRepository for tests and
// throwaway sessions.
//
// Contract: Get returns (nil, nil) for an absent key. Delete of an absent
// key is not an error.
package storage
