// Package store owns the persisted ledger table: a pipe-separated file
// whose header row must exactly equal the canonical record schema.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/dmcorreia/kasa/internal/ledger"
)

var _ ledger.Repository = (*Store)(nil)

type Store struct {
	path    string
	records []*ledger.Record
	index   map[int64]int
	maxID   int64
}

func New(path string) *Store {
	return &Store{path: path, index: map[int64]int{}}
}

// Load reads the persisted table. A missing file is normal and leaves the
// store empty. A header row that differs from the canonical schema means
// the file is corrupted: the store falls back to an empty table and the
// error is returned for the caller to decide whether to abort.
func (s *Store) Load() error {
	s.records = nil
	s.index = map[int64]int{}
	s.maxID = 0

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("opening ledger file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = delimiter
	reader.FieldsPerRecord = len(ledger.Header())

	rows, err := reader.ReadAll()
	if err != nil {
		return corrupt("%v", err)
	}

	if len(rows) == 0 {
		return nil
	}

	if !slices.Equal(rows[0], ledger.Header()) {
		return corrupt("expected header %v, found %v", ledger.Header(), rows[0])
	}

	records := make([]*ledger.Record, 0, len(rows)-1)
	seen := make(map[int64]struct{}, len(rows)-1)

	for i, row := range rows[1:] {
		rec, err := decodeRecord(row)
		if err != nil {
			return corrupt("row %d: %v", i+2, err)
		}

		if _, dup := seen[rec.ID]; dup {
			return corrupt("row %d: duplicate id %d", i+2, rec.ID)
		}

		seen[rec.ID] = struct{}{}
		records = append(records, rec)
	}

	s.records = records
	s.resort()
	s.backfillIDs()

	return nil
}

// Save writes the canonical table, overwriting the previous file. The
// write is whole-table and best-effort atomic only; a crash mid-write is
// detected at the next load through the header check.
func (s *Store) Save() error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("creating ledger file: %w", err)
	}
	defer f.Close()

	if err := s.write(f); err != nil {
		return fmt.Errorf("writing ledger file: %w", err)
	}

	return f.Close()
}

// Backup writes the full current table to a timestamped snapshot next to
// the canonical file and returns its path. Snapshots are never
// overwritten.
func (s *Store) Backup() (string, error) {
	path := s.backupPath(time.Now())

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("creating backup file: %w", err)
	}
	defer f.Close()

	if err := s.write(f); err != nil {
		return "", fmt.Errorf("writing backup file: %w", err)
	}

	return path, f.Close()
}

// Reset backs the table up, then replaces it with an empty schema-only
// one, both in memory and on disk.
func (s *Store) Reset() (string, error) {
	path, err := s.Backup()
	if err != nil {
		return "", err
	}

	s.records = nil
	s.index = map[int64]int{}
	s.maxID = 0

	return path, s.Save()
}

// All returns the records ordered by time. The engine mutates the records
// in place; the slice itself must not be modified by callers.
func (s *Store) All() []*ledger.Record {
	return s.records
}

func (s *Store) Get(id int64) (*ledger.Record, bool) {
	pos, ok := s.index[id]
	if !ok {
		return nil, false
	}

	return s.records[pos], true
}

// AddBulk appends the batches in the given order, re-sorts by time, and
// assigns a fresh id to every record whose id is zero. Import batches
// arrive without ids, so the backfill runs after the merge.
func (s *Store) AddBulk(batches ...[]*ledger.Record) {
	for _, batch := range batches {
		s.records = append(s.records, batch...)
	}

	s.resort()
	s.backfillIDs()
}

// Resort restores time ordering and the id index after a record's time
// changed in place.
func (s *Store) Resort() {
	s.resort()
}

// resort sorts by time, keeping append order for equal times, and rebuilds
// the id index. Row positions carry no meaning across calls; records are
// addressed by id.
func (s *Store) resort() {
	slices.SortStableFunc(s.records, func(a, b *ledger.Record) int {
		return a.Time.Compare(b.Time)
	})

	s.index = make(map[int64]int, len(s.records))

	for pos, r := range s.records {
		if r.ID != 0 {
			s.index[r.ID] = pos
		}

		if r.ID > s.maxID {
			s.maxID = r.ID
		}
	}
}

// backfillIDs assigns max id + 1 onwards, in table order, to records that
// arrived without an id.
func (s *Store) backfillIDs() {
	for pos, r := range s.records {
		if r.ID != 0 {
			continue
		}

		s.maxID++
		r.ID = s.maxID
		s.index[r.ID] = pos
	}
}

func (s *Store) write(f *os.File) error {
	w := csv.NewWriter(f)
	w.Comma = delimiter

	if err := w.Write(ledger.Header()); err != nil {
		return err
	}

	for _, r := range s.records {
		if err := w.Write(encodeRecord(r)); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

func corrupt(format string, args ...any) error {
	return &ledger.Error{
		Kind:    ledger.KindCorruptStore,
		Message: ledger.ErrCorruptStore.Message,
		Detail:  fmt.Sprintf(format, args...),
	}
}

// backupPath derives <stem>_<timestamp><ext> alongside the canonical file.
func (s *Store) backupPath(now time.Time) string {
	dir := filepath.Dir(s.path)
	base := filepath.Base(s.path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	return filepath.Join(dir, fmt.Sprintf("%s_%s%s", stem, now.Format("2006-01-02_15-04-05"), ext))
}
