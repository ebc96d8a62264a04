package storage

import (
	"bytes"
	"encoding/gob"
	"errors"
	"github.com/fernandosanchezjr/bitinverter/backend/data"
	"github.com/fernandosanchezjr/bitinverter/utils"
	log "github.com/sirupsen/logrus"
	"go.etcd.io/bbolt"
)

var (
	ErrBucketNotFound = errors.New("bucket not found")
	ErrNoRuns         = errors.New("no runs stored")
)

var runsBucketName = []byte("runs")

func getRunsBucket(tx *bbolt.Tx) (runsBucket *bbolt.Bucket, err error) {
	if tx.Writable() {
		runsBucket, err = tx.CreateBucketIfNotExists(runsBucketName)
	} else {
		runsBucket = tx.Bucket(runsBucketName)
		if runsBucket == nil {
			err = ErrBucketNotFound
		}
	}
	return
}

func encodeRun(run *data.Run) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(run); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeRun(value []byte) (*data.Run, error) {
	var run data.Run
	if err := gob.NewDecoder(bytes.NewReader(value)).Decode(&run); err != nil {
		return nil, err
	}
	return &run, nil
}

// WriteRun stores run under its time. A run with the same time replaces the old one.
func (s *Store) WriteRun(run *data.Run) error {
	value, err := encodeRun(run)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		runsBucket, err := getRunsBucket(tx)
		if err != nil {
			return err
		}
		return runsBucket.Put(utils.TimeToBytes(run.Time), value)
	})
}

// Runs returns up to limit runs, newest first. A limit of zero or less returns all.
func (s *Store) Runs(limit int) (runs []*data.Run, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		runsBucket, err := getRunsBucket(tx)
		if err == ErrBucketNotFound {
			return nil
		} else if err != nil {
			return err
		}
		cursor := runsBucket.Cursor()
		for key, value := cursor.Last(); key != nil; key, value = cursor.Prev() {
			if limit > 0 && len(runs) >= limit {
				break
			}
			run, err := decodeRun(value)
			if err != nil {
				log.WithFields(log.Fields{
					"error": err,
					"time":  utils.BytesToTime(key),
				}).Error("Error decoding run")
				continue
			}
			runs = append(runs, run)
		}
		return nil
	})
	return
}

func (s *Store) LatestRun() (*data.Run, error) {
	runs, err := s.Runs(1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, ErrNoRuns
	}
	return runs[0], nil
}

// Prune deletes all but the newest keep runs and returns how many were removed.
func (s *Store) Prune(keep int) (removed int, err error) {
	err = s.db.Update(func(tx *bbolt.Tx) error {
		runsBucket, err := getRunsBucket(tx)
		if err != nil {
			return err
		}
		var stale [][]byte
		var seen int
		cursor := runsBucket.Cursor()
		for key, _ := cursor.Last(); key != nil; key, _ = cursor.Prev() {
			seen += 1
			if seen > keep {
				stale = append(stale, append([]byte{}, key...))
			}
		}
		for _, key := range stale {
			if err = runsBucket.Delete(key); err != nil {
				return err
			}
		}
		removed = len(stale)
		return nil
	})
	return
}
