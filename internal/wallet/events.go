package wallet

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// EventInjected announces that a wallet became available.
const EventInjected = "WALLET_INJECTED"

// Event is a message from the wallet's environment
type Event struct {
	Type string
}

// EventSource delivers wallet events until the returned unsubscribe func is called.
type EventSource interface {
	Subscribe() (<-chan Event, func(), error)
}

// ChannelSource is an in-process EventSource fed by Emit.
type ChannelSource struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
}

// NewChannelSource creates an empty ChannelSource
func NewChannelSource() *ChannelSource {
	return &ChannelSource{subs: make(map[int]chan Event)}
}

// Subscribe registers a new listener
func (s *ChannelSource) Subscribe() (<-chan Event, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan Event, 8)
	s.subs[id] = ch

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
	return ch, unsubscribe, nil
}

// Emit delivers ev to every listener. Listeners with a full buffer miss it.
func (s *ChannelSource) Emit(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// FileEventSource announces EventInjected whenever the keystore file appears or changes.
type FileEventSource struct {
	path string
	log  logrus.FieldLogger
}

// NewFileEventSource watches the keystore at path
func NewFileEventSource(path string, log logrus.FieldLogger) *FileEventSource {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &FileEventSource{path: filepath.Clean(path), log: log}
}

// Subscribe starts watching the keystore directory. If the keystore already
// exists an EventInjected is delivered right away.
func (s *FileEventSource) Subscribe() (<-chan Event, func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return nil, nil, err
	}

	out := make(chan Event, 4)
	if info, err := os.Stat(s.path); err == nil && info.Size() > 0 {
		out <- Event{Type: EventInjected}
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(out)
		defer watcher.Close()

		for {
			select {
			case <-done:
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != s.path || ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
					continue
				}
				select {
				case out <- Event{Type: EventInjected}:
				case <-done:
					return
				default:
					// a pending event already announces the keystore
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log.WithError(err).Warn("keystore watcher error")
			}
		}
	}()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			close(done)
			wg.Wait()
		})
	}
	return out, unsubscribe, nil
}
