package services

import (
	"context"
	"sync"
)

type fakeObserver struct {
	mu       sync.Mutex
	saves    map[string]int
	loads    map[string]int
	location map[string]int
}

func (f *fakeObserver) ObserveSave(record, outcome string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saves == nil {
		f.saves = map[string]int{}
	}
	f.saves[record+"/"+outcome]++
}

func (f *fakeObserver) ObserveLoad(record, outcome string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loads == nil {
		f.loads = map[string]int{}
	}
	f.loads[record+"/"+outcome]++
}

func (f *fakeObserver) ObserveLocation(outcome string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.location == nil {
		f.location = map[string]int{}
	}
	f.location[outcome]++
}

// failingRepo fails every operation with err.
type failingRepo struct {
	err error
}

func (r failingRepo) Get(context.Context, string) ([]byte, error) { return nil, r.err }
func (r failingRepo) Set(context.Context, string, []byte) error   { return r.err }
func (r failingRepo) Delete(context.Context, string) error        { return r.err }
func (r failingRepo) Clear(context.Context) error                 { return r.err }
func (r failingRepo) GetOrCreate(context.Context, string, func() ([]byte, error)) ([]byte, error) {
	return nil, r.err
}
