package design

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/OpenRCT2/OpenRCT2-sub002/notify"
	"github.com/google/uuid"
	"github.com/tidwall/buntdb"
	"go.uber.org/zap"
)

const (
	keyPrefix = "design:"
	keySuffix = ":data"
	nameIndex = "name"
)

func key(id uuid.UUID) string {
	return fmt.Sprintf("design:%s:data", id)
}

func parseKey(key string) (uuid.UUID, bool) {
	if !strings.HasPrefix(key, keyPrefix) || !strings.HasSuffix(key, keySuffix) {
		return uuid.UUID{}, false
	}
	id, err := uuid.Parse(key[len(keyPrefix) : len(key)-len(keySuffix)])
	if err != nil {
		return uuid.UUID{}, false
	}
	return id, true
}

type ChangeType int

const (
	ChangePut ChangeType = iota
	ChangeDelete
)

func (c ChangeType) String() string {
	switch c {
	case ChangePut:
		return "put"
	case ChangeDelete:
		return "delete"
	default:
		return fmt.Sprintf("ChangeType(%d)", int(c))
	}
}

// Change is sent to subscribers after a design is stored or deleted. Design
// is nil for deletions.
type Change struct {
	Type   ChangeType
	ID     uuid.UUID
	Design *Design
}

// Store keeps designs as JSON under design:<id>:data keys.
type Store struct {
	db *buntdb.DB
	// dbLock orders writes so subscribers see changes in commit order.
	dbLock  sync.Mutex
	changes *notify.Multiplexer[Change]
}

// OpenStore opens (or creates) the database at path. Use ":memory:" for a
// store that is not persisted.
func OpenStore(path string) (*Store, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	err = db.SetConfig(buntdb.Config{
		SyncPolicy:           buntdb.Always,
		AutoShrinkPercentage: 100,
		AutoShrinkMinSize:    32 * 1024 * 1024,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("configure %s: %w", path, err)
	}
	err = db.CreateIndex(nameIndex, keyPrefix+"*"+keySuffix, buntdb.IndexJSON("name"))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("index %s: %w", path, err)
	}
	s := &Store{
		db:      db,
		changes: notify.NewMultiplexer[Change]("design store " + path),
	}
	n, err := s.count()
	if err != nil {
		db.Close()
		return nil, err
	}
	zap.S().Infow("opened design store", "path", path, "designs", n)
	return s, nil
}

func (s *Store) count() (int, error) {
	n := 0
	err := s.db.View(func(tx *buntdb.Tx) error {
		return tx.Ascend(nameIndex, func(key, value string) bool {
			n++
			return true
		})
	})
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

func (s *Store) Close() error {
	s.dbLock.Lock()
	defer s.dbLock.Unlock()
	return s.db.Close()
}

// Put validates d and stores it, replacing any design with the same ID.
func (s *Store) Put(d *Design) error {
	if d.ID == (uuid.UUID{}) {
		return errors.New("design has no ID")
	}
	err := d.Validate()
	if err != nil {
		return fmt.Errorf("put %s: %w", d.ID, err)
	}
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("put %s: %w", d.ID, err)
	}
	s.dbLock.Lock()
	defer s.dbLock.Unlock()
	err = s.db.Update(func(tx *buntdb.Tx) error {
		_, replaced, err := tx.Set(key(d.ID), string(data), nil)
		if err != nil {
			return err
		}
		zap.S().Debugw("stored design", "id", d.ID, "name", d.Name, "replaced", replaced)
		return nil
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", d.ID, err)
	}
	s.changes.Send(Change{Type: ChangePut, ID: d.ID, Design: d.Clone()})
	return nil
}

func (s *Store) Get(id uuid.UUID) (*Design, error) {
	var d Design
	err := s.db.View(func(tx *buntdb.Tx) error {
		value, err := tx.Get(key(id))
		if err != nil {
			return err
		}
		return json.Unmarshal([]byte(value), &d)
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return nil, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", id, err)
	}
	return &d, nil
}

// List returns every design ordered by name.
func (s *Store) List() ([]*Design, error) {
	var res []*Design
	err := s.db.View(func(tx *buntdb.Tx) error {
		var err error
		aerr := tx.Ascend(nameIndex, func(key, value string) bool {
			id, ok := parseKey(key)
			if !ok {
				zap.S().Errorw("parsing key failed", "key", key)
				return true
			}
			var d Design
			err = json.Unmarshal([]byte(value), &d)
			if err != nil {
				err = fmt.Errorf("%s: %w", id, err)
				return false
			}
			res = append(res, &d)
			return true
		})
		if aerr != nil {
			return aerr
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return res, nil
}

func (s *Store) Delete(id uuid.UUID) error {
	s.dbLock.Lock()
	defer s.dbLock.Unlock()
	err := s.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(key(id))
		return err
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	s.changes.Send(Change{Type: ChangeDelete, ID: id})
	return nil
}

// Subscribe registers c to receive a Change after every Put and Delete.
func (s *Store) Subscribe(comment string, c chan Change) {
	s.changes.Subscribe(comment, c)
}

func (s *Store) Unsubscribe(c chan Change) {
	s.changes.Unsubscribe(c)
}
