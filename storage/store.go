package storage

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/oomph-ac/pathrec/oerror"
	"github.com/oomph-ac/pathrec/timeline"
	"github.com/oomph-ac/pathrec/worker"
	"github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"
)

// Extension is the file extension of stored records.
const Extension = ".json"

// Store persists records as one JSON file per record in a directory, named after the record.
type Store struct {
	log *logrus.Logger
	dir string
	w   *worker.Worker
	// pending counts asynchronous saves waiting for room in the worker queue.
	pending sync.WaitGroup

	mu sync.Mutex
	// written holds the hash of the last bytes written for each record, so that saving an
	// unchanged record does not touch the disk again.
	written map[string]uint64
}

// New creates a store in dir, creating the directory if needed. queueSize is the amount of
// asynchronous writes that may be queued before further saves wait on their own goroutine.
func New(log *logrus.Logger, dir string, queueSize int) (*Store, error) {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, oerror.Wrap(err, "unable to create records directory %s", dir)
	}

	return &Store{
		log:     log,
		dir:     dir,
		w:       worker.New(log, queueSize),
		written: make(map[string]uint64),
	}, nil
}

// Dir returns the directory records are stored in.
func (s *Store) Dir() string {
	return s.dir
}

// Save stores the record, overwriting any record with the same name.
func (s *Store) Save(r timeline.Record) error {
	if err := timeline.ValidateName(r.Name); err != nil {
		return err
	}

	dat, err := timeline.Encode(r)
	if err != nil {
		return err
	}
	sum := xxh3.Hash(dat)

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(r.Name)
	if prev, ok := s.written[r.Name]; ok && prev == sum {
		if _, err := os.Stat(path); err == nil {
			s.log.Debugf("record %s is unchanged, skipping write", r.Name)
			return nil
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, dat, 0644); err != nil {
		return oerror.Wrap(err, "unable to write record %s", r.Name)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return oerror.Wrap(err, "unable to write record %s", r.Name)
	}
	s.written[r.Name] = sum

	s.log.Infof("saved record %s (%d points)", r.Name, len(r.Points))
	return nil
}

// SaveAsync saves the record in the background and never blocks the caller. If the write
// queue is full, the save waits for room on its own goroutine. Failures are logged.
func (s *Store) SaveAsync(r timeline.Record) {
	job := func() {
		if err := s.Save(r); err != nil {
			s.log.Errorf("unable to save record %s: %v", r.Name, err)
		}
	}
	if s.w.TrySubmit(job) {
		return
	}

	s.log.Debugf("write queue full, deferring save of record %s", r.Name)
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if !s.w.Submit(job) {
			s.log.Errorf("unable to save record %s: store is closed", r.Name)
		}
	}()
}

// Load loads the record with the name passed. A file that holds a record under another name is
// rejected, the same way LoadAll skips it.
func (s *Store) Load(name string) (timeline.Record, error) {
	if err := timeline.ValidateName(name); err != nil {
		return timeline.Record{}, err
	}
	s.flush()

	dat, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return timeline.Record{}, oerror.Wrap(oerror.ErrNotFound, "record %s", name)
	} else if err != nil {
		return timeline.Record{}, oerror.Wrap(err, "unable to read record %s", name)
	}
	r, err := timeline.Decode(dat)
	if err != nil {
		return timeline.Record{}, err
	}
	if r.Name != name {
		return timeline.Record{}, oerror.New("record file %s contains record %s", name+Extension, r.Name)
	}
	return r, nil
}

// LoadAll loads every record in the store, newest first. Files that cannot be read or decoded
// are skipped.
func (s *Store) LoadAll() []timeline.Record {
	s.flush()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.log.Errorf("unable to list records in %s: %v", s.dir, err)
		return nil
	}

	records := make([]timeline.Record, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != Extension {
			continue
		}

		dat, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			s.log.Warnf("skipping record file %s: %v", entry.Name(), err)
			continue
		}
		r, err := timeline.Decode(dat)
		if err != nil {
			s.log.Warnf("skipping record file %s: %v", entry.Name(), err)
			continue
		}
		if want := strings.TrimSuffix(entry.Name(), Extension); r.Name != want {
			s.log.Warnf("skipping record file %s: contains record %s", entry.Name(), r.Name)
			continue
		}
		records = append(records, r)
	}

	slices.SortStableFunc(records, func(a, b timeline.Record) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return records
}

// Exists returns true if a record with the name passed is stored.
func (s *Store) Exists(name string) bool {
	if timeline.ValidateName(name) != nil {
		return false
	}
	s.flush()

	_, err := os.Stat(s.path(name))
	return err == nil
}

// Delete deletes the record with the name passed. It returns false if the record did not exist
// or could not be deleted.
func (s *Store) Delete(name string) bool {
	if timeline.ValidateName(name) != nil {
		return false
	}
	s.flush()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(name)); err != nil {
		if !os.IsNotExist(err) {
			s.log.Errorf("unable to delete record %s: %v", name, err)
		}
		return false
	}
	delete(s.written, name)

	s.log.Infof("deleted record %s", name)
	return true
}

// Close waits for pending writes to finish. The store must not be used afterwards.
func (s *Store) Close() {
	s.pending.Wait()
	s.w.Close()
}

// flush waits for every save started before the call, including deferred ones.
func (s *Store) flush() {
	s.pending.Wait()
	s.w.Flush()
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+Extension)
}
