package delegation

import (
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v2"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
)

var (
	delegatorPrefix = []byte("d/")
	stakerPrefix    = []byte("s/")
)

type storedRecord struct {
	Delegator        []byte `msgpack:"d"`
	Staker           []byte `msgpack:"s"`
	Fee              uint8  `msgpack:"f"`
	ActivationHeight uint64 `msgpack:"h"`
	PoD              []byte `msgpack:"p"`
}

// Registry persists delegation records. A record is replaced only by one from the same
// delegator with a higher activation height.
type Registry struct {
	db     *badger.DB
	logger *zap.Logger
}

// RegistryConfig selects where records are stored.
type RegistryConfig struct {
	// Dir is the badger directory; empty keeps records in memory.
	Dir string
}

// OpenRegistry opens or creates a registry.
func OpenRegistry(logger *zap.Logger, cfg RegistryConfig) (*Registry, error) {
	opts := badger.DefaultOptions(cfg.Dir).
		WithLogger(newBadgerLogger(logger))
	if cfg.Dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open delegation registry: %w", err)
	}
	return &Registry{db: db, logger: logger.Named("delegation_registry")}, nil
}

// Close releases the underlying store.
func (r *Registry) Close() error {
	return r.db.Close()
}

// Put stores rec unless an equal or newer record from the same delegator exists. It reports
// whether rec was stored.
func (r *Registry) Put(rec model.DelegationRecord) (bool, error) {
	stored := false
	err := r.db.Update(func(txn *badger.Txn) error {
		prev, err := getRecord(txn, rec.Delegator)
		switch {
		case errors.Is(err, ErrDelegationNotFound):
		case err != nil:
			return err
		case !rec.Supersedes(prev):
			return nil
		default:
			if err := txn.Delete(stakerKey(prev.Staker, prev.Delegator)); err != nil {
				return fmt.Errorf("delete staker index: %w", err)
			}
		}

		val, err := msgpack.Marshal(toStored(rec))
		if err != nil {
			return fmt.Errorf("encode delegation: %w", err)
		}
		if err := txn.Set(delegatorKey(rec.Delegator), val); err != nil {
			return fmt.Errorf("set delegation: %w", err)
		}
		if err := txn.Set(stakerKey(rec.Staker, rec.Delegator), nil); err != nil {
			return fmt.Errorf("set staker index: %w", err)
		}
		stored = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if stored {
		r.logger.Debug("delegation stored",
			zap.Stringer("delegator", rec.Delegator),
			zap.Stringer("staker", rec.Staker),
			zap.Uint64("activation_height", rec.ActivationHeight),
		)
	}
	return stored, nil
}

// Get returns the current record of delegator.
func (r *Registry) Get(delegator model.KeyID) (model.DelegationRecord, error) {
	var rec model.DelegationRecord
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		rec, err = getRecord(txn, delegator)
		return err
	})
	return rec, err
}

// ByStaker returns every current record naming staker, ordered by delegator.
func (r *Registry) ByStaker(staker model.KeyID) ([]model.DelegationRecord, error) {
	var out []model.DelegationRecord
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := append(append([]byte{}, stakerPrefix...), staker[:]...)
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().Key()
			delegator, err := model.KeyIDFromBytes(key[len(prefix):])
			if err != nil {
				return fmt.Errorf("corrupt staker index: %w", err)
			}
			rec, err := getRecord(txn, delegator)
			if err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})
	return out, err
}

// Remove deletes the record of delegator.
func (r *Registry) Remove(delegator model.KeyID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		prev, err := getRecord(txn, delegator)
		if err != nil {
			return err
		}
		if err := txn.Delete(stakerKey(prev.Staker, delegator)); err != nil {
			return err
		}
		return txn.Delete(delegatorKey(delegator))
	})
}

func getRecord(txn *badger.Txn, delegator model.KeyID) (model.DelegationRecord, error) {
	item, err := txn.Get(delegatorKey(delegator))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return model.DelegationRecord{}, fmt.Errorf("%w: %s", ErrDelegationNotFound, delegator)
	}
	if err != nil {
		return model.DelegationRecord{}, fmt.Errorf("get delegation: %w", err)
	}

	val, err := item.ValueCopy(nil)
	if err != nil {
		return model.DelegationRecord{}, fmt.Errorf("read delegation: %w", err)
	}
	var s storedRecord
	if err := msgpack.Unmarshal(val, &s); err != nil {
		return model.DelegationRecord{}, fmt.Errorf("decode delegation: %w", err)
	}
	return fromStored(s)
}

func delegatorKey(delegator model.KeyID) []byte {
	return append(append([]byte{}, delegatorPrefix...), delegator[:]...)
}

func stakerKey(staker, delegator model.KeyID) []byte {
	key := append(append([]byte{}, stakerPrefix...), staker[:]...)
	return append(key, delegator[:]...)
}

func toStored(rec model.DelegationRecord) storedRecord {
	return storedRecord{
		Delegator:        rec.Delegator[:],
		Staker:           rec.Staker[:],
		Fee:              rec.Fee,
		ActivationHeight: rec.ActivationHeight,
		PoD:              rec.PoD,
	}
}

func fromStored(s storedRecord) (model.DelegationRecord, error) {
	delegator, err := model.KeyIDFromBytes(s.Delegator)
	if err != nil {
		return model.DelegationRecord{}, fmt.Errorf("decode delegator: %w", err)
	}
	staker, err := model.KeyIDFromBytes(s.Staker)
	if err != nil {
		return model.DelegationRecord{}, fmt.Errorf("decode staker: %w", err)
	}
	return model.DelegationRecord{
		Delegator:        delegator,
		Staker:           staker,
		Fee:              s.Fee,
		ActivationHeight: s.ActivationHeight,
		PoD:              s.PoD,
	}, nil
}
