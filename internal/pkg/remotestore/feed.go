package remotestore

import (
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/piresc/fairpay/internal/pkg/constants"
	"github.com/piresc/fairpay/internal/pkg/models"
	natspkg "github.com/piresc/fairpay/internal/pkg/nats"
)

// SubjectPrefix is the NATS subject prefix of collection change notices
const SubjectPrefix = constants.SubjectChangesPrefix

// Subject returns the change subject of a collection
func Subject(coll models.Collection) string {
	return SubjectPrefix + string(coll)
}

// ChangeNotice is published after a committed write to a collection
type ChangeNotice struct {
	Collection models.Collection `json:"collection"`
	At         time.Time         `json:"at"`
}

// Feed carries change notifications between writers and live queries
type Feed interface {
	Notify(coll models.Collection) error
	Watch(coll models.Collection, onChange func()) (stop func() error, err error)
}

// NATSFeed fans change notices out to every service instance over NATS
type NATSFeed struct {
	client *natspkg.Client
}

// NewNATSFeed creates a feed on an open NATS client
func NewNATSFeed(client *natspkg.Client) *NATSFeed {
	return &NATSFeed{client: client}
}

// Notify publishes a change notice for coll
func (f *NATSFeed) Notify(coll models.Collection) error {
	return f.client.PublishJSON(Subject(coll), ChangeNotice{Collection: coll, At: models.Now()})
}

// Watch calls onChange for every notice on coll
func (f *NATSFeed) Watch(coll models.Collection, onChange func()) (func() error, error) {
	sub, err := f.client.Subscribe(Subject(coll), func(*nats.Msg) {
		onChange()
	})
	if err != nil {
		return nil, err
	}
	return sub.Unsubscribe, nil
}

// LocalFeed is an in-process feed. Notify runs watchers synchronously.
type LocalFeed struct {
	mu       sync.Mutex
	nextID   int
	watchers map[models.Collection]map[int]func()
}

// NewLocalFeed creates an empty in-process feed
func NewLocalFeed() *LocalFeed {
	return &LocalFeed{watchers: make(map[models.Collection]map[int]func())}
}

// Notify runs every watcher of coll
func (f *LocalFeed) Notify(coll models.Collection) error {
	f.mu.Lock()
	fns := make([]func(), 0, len(f.watchers[coll]))
	for _, fn := range f.watchers[coll] {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return nil
}

// Watch registers onChange for coll
func (f *LocalFeed) Watch(coll models.Collection, onChange func()) (func() error, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.watchers[coll] == nil {
		f.watchers[coll] = make(map[int]func())
	}
	id := f.nextID
	f.nextID++
	f.watchers[coll][id] = onChange

	return func() error {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.watchers[coll], id)
		return nil
	}, nil
}

// Watchers returns the number of live watchers on coll
func (f *LocalFeed) Watchers(coll models.Collection) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.watchers[coll])
}
