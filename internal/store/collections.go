package store

import (
	"context"
	"log"

	"github.com/avandyck/daypack/internal/dates"
	"github.com/avandyck/daypack/internal/models"
	"gorm.io/gorm"
)

// insertFn performs the remote insert for a record. The default is a plain
// Create; Daily Entries substitute a versioned-schema adapter.
type insertFn[PT any] func(ctx context.Context, db *gorm.DB, rec PT) error

// updateFn performs the remote full-record update.
type updateFn[PT any] func(ctx context.Context, db *gorm.DB, rec PT) error

func defaultInsert[T any, PT record[T]](ctx context.Context, db *gorm.DB, rec PT) error {
	return db.WithContext(ctx).Create(rec).Error
}

func defaultUpdate[T any, PT record[T]](ctx context.Context, db *gorm.DB, rec PT) error {
	return db.WithContext(ctx).Save(rec).Error
}

// fetchAll reads the full collection from the backend newest-first, remaps
// it into application shape, and overwrites the cache. On any backend error
// the previous snapshot is returned unchanged.
func fetchAll[T any, PT record[T]](ctx context.Context, s *Store, key string) ([]T, error) {
	fallback := cached[T](s, key)
	if s.db == nil {
		return fallback, nil
	}
	if !s.allowRemote("fetch", key) {
		return fallback, nil
	}

	var out []T
	err := s.db.WithContext(ctx).Order("trace_date DESC, created_at DESC").Find(&out).Error
	if err != nil {
		log.Printf("store: fetch %s: %v", key, err)
		return fallback, err
	}

	today := dates.LocalDate(s.now())
	for i := range out {
		PT(&out[i]).EnsureTrace(today)
	}
	writeCache(s, key, out)
	return out, nil
}

// saveRecord sanitizes the record, assigns identifier and trace date when
// missing, optimistically prepends it to the cached collection, then issues
// the remote insert, reverting the cache on failure. The returned collection
// is authoritative: views re-render from it rather than splicing their own.
func saveRecord[T any, PT record[T]](ctx context.Context, s *Store, key string, rec PT, insert insertFn[PT]) []T {
	rec.Clean()
	if rec.RecordID() == "" {
		rec.SetRecordID(models.NewID())
	}
	rec.EnsureTrace(dates.LocalDate(s.now()))

	prev := cached[T](s, key)
	if s.db != nil && !s.allowRemote("save", key) {
		return prev
	}

	next := append([]T{*rec}, prev...)
	writeCache(s, key, next)
	if s.db == nil {
		return next
	}

	if err := insert(ctx, s.db, rec); err != nil {
		log.Printf("store: save %s: %v", key, err)
		writeCache(s, key, prev)
		return prev
	}
	return next
}

// updateRecord sanitizes the record, optimistically replaces it in the
// cached collection by identifier, then issues the remote full-record
// update, reverting the cache on failure.
func updateRecord[T any, PT record[T]](ctx context.Context, s *Store, key string, rec PT, update updateFn[PT]) []T {
	rec.Clean()
	rec.EnsureTrace(dates.LocalDate(s.now()))

	prev := cached[T](s, key)
	if s.db != nil && !s.allowRemote("update", key) {
		return prev
	}

	next := make([]T, len(prev))
	copy(next, prev)
	found := false
	for i := range next {
		if PT(&next[i]).RecordID() == rec.RecordID() {
			next[i] = *rec
			found = true
			break
		}
	}
	if !found {
		next = append([]T{*rec}, next...)
	}
	writeCache(s, key, next)
	if s.db == nil {
		return next
	}

	if err := update(ctx, s.db, rec); err != nil {
		log.Printf("store: update %s: %v", key, err)
		writeCache(s, key, prev)
		return prev
	}
	return next
}

// deleteRecord optimistically removes the record from the cached collection
// by identifier, then issues the remote delete, reverting the cache on
// failure.
func deleteRecord[T any, PT record[T]](ctx context.Context, s *Store, key, id string) []T {
	prev := cached[T](s, key)
	if s.db != nil && !s.allowRemote("delete", key) {
		return prev
	}

	next := make([]T, 0, len(prev))
	for i := range prev {
		if PT(&prev[i]).RecordID() != id {
			next = append(next, prev[i])
		}
	}
	writeCache(s, key, next)
	if s.db == nil {
		return next
	}

	if err := s.db.WithContext(ctx).Delete(new(T), "id = ?", id).Error; err != nil {
		log.Printf("store: delete %s %s: %v", key, id, err)
		writeCache(s, key, prev)
		return prev
	}
	return next
}
