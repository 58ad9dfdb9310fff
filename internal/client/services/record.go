package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/rockside/internal/client/storage"
	"github.com/dmitrijs2005/rockside/internal/common"
	"github.com/dmitrijs2005/rockside/internal/cryptox"
	"github.com/dmitrijs2005/rockside/internal/metrics"
)

// Storage keys of the persisted slots.
const (
	KeyAuth   = "auth_data"
	KeyForm   = "form_data"
	KeyDevice = "device_key"
)

// sealedMarker prefixes sealed values. JSON text never starts with a NUL.
const sealedMarker byte = 0x00

// recordStore persists one JSON value of type T under a fixed key.
type recordStore[T any] struct {
	key  string
	repo storage.Repository
	opts options
}

func (s *recordStore[T]) save(ctx context.Context, v *T) error {
	b, err := json.Marshal(v)
	if err != nil {
		s.opts.observer.ObserveSave(s.key, metrics.OutcomeError)
		return fmt.Errorf("%w: encode %s: %w", common.ErrStorage, s.key, err)
	}

	if s.opts.seal {
		b, err = s.seal(ctx, b)
		if err != nil {
			s.opts.observer.ObserveSave(s.key, metrics.OutcomeError)
			return fmt.Errorf("%w: seal %s: %w", common.ErrStorage, s.key, err)
		}
	}

	if err := s.repo.Set(ctx, s.key, b); err != nil {
		s.opts.observer.ObserveSave(s.key, metrics.OutcomeError)
		return fmt.Errorf("%w: write %s: %w", common.ErrStorage, s.key, err)
	}

	s.opts.observer.ObserveSave(s.key, metrics.OutcomeOK)
	s.opts.logger.Debug(ctx, "record saved", "key", s.key, "sealed", s.opts.seal)
	return nil
}

// load returns nil, nil when the slot is empty or its payload cannot be
// decoded.
func (s *recordStore[T]) load(ctx context.Context) (*T, error) {
	b, err := s.repo.Get(ctx, s.key)
	if err != nil {
		s.opts.observer.ObserveLoad(s.key, metrics.OutcomeError)
		return nil, fmt.Errorf("%w: read %s: %w", common.ErrStorage, s.key, err)
	}
	if b == nil {
		s.opts.observer.ObserveLoad(s.key, metrics.OutcomeAbsent)
		return nil, nil
	}

	if len(b) > 0 && b[0] == sealedMarker {
		b, err = s.open(ctx, b[1:])
		if err != nil {
			return s.corrupt(ctx, err)
		}
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return s.corrupt(ctx, err)
	}

	s.opts.observer.ObserveLoad(s.key, metrics.OutcomeOK)
	return &v, nil
}

func (s *recordStore[T]) corrupt(ctx context.Context, err error) (*T, error) {
	s.opts.observer.ObserveLoad(s.key, metrics.OutcomeCorrupt)
	s.opts.logger.Warn(ctx, "discarding unreadable record", "key", s.key, "error", err)
	return nil, nil
}

func (s *recordStore[T]) seal(ctx context.Context, plain []byte) ([]byte, error) {
	key, err := s.repo.GetOrCreate(ctx, KeyDevice, cryptox.NewKey)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	sealed, err := cryptox.Seal(key, plain, []byte(s.key))
	if err != nil {
		return nil, err
	}
	return append([]byte{sealedMarker}, sealed...), nil
}

func (s *recordStore[T]) open(ctx context.Context, sealed []byte) ([]byte, error) {
	key, err := s.repo.Get(ctx, KeyDevice)
	if err != nil {
		return nil, err
	}
	if key == nil {
		return nil, fmt.Errorf("%w: device key missing", cryptox.ErrMalformed)
	}
	defer common.WipeByteArray(key)

	return cryptox.Open(key, sealed, []byte(s.key))
}
