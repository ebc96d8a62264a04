package storage

import (
	"github.com/fernandosanchezjr/bitinverter/utils"
	"go.etcd.io/bbolt"
	"path"
	"time"
)

const DBPath = "db"

func GetDBPath() string {
	return path.Join(utils.GetSubFolder(DBPath), "runs.db")
}

// Store keeps benchmark runs in a bbolt file.
type Store struct {
	db *bbolt.DB
}

func Open(filePath string) (*Store, error) {
	db, err := bbolt.Open(filePath, 0600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func OpenDefault() (*Store, error) {
	return Open(GetDBPath())
}

func (s *Store) Close() error {
	return s.db.Close()
}
