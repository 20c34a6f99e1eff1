package session

import (
	"sync"
	"time"

	"github.com/jasonlvhit/gocron"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/globe-server/circle"
)

// Selection is the last circle a client picked on the map. The geodesy code
// stays stateless : this store only lets a page reload come back to the same
// center and radius.
type Selection struct {
	Circle   circle.Circle `json:"circle"`
	LastSeen time.Time     `json:"lastSeen"`
}

type Sessions struct {
	ttl        time.Duration
	selections map[string]Selection
	lock       sync.RWMutex
}

func InitSessions(ttl time.Duration) *Sessions {
	s := &Sessions{
		ttl:        ttl,
		selections: map[string]Selection{},
	}

	g := gocron.NewScheduler()
	job := g.Every(1).Minute()
	job.Do(s.Sweep)

	go g.Start()

	return s
}

func (s *Sessions) Set(id string, c circle.Circle) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.selections[id] = Selection{Circle: c, LastSeen: time.Now()}
}

func (s *Sessions) Get(id string) (circle.Circle, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	sel, ok := s.selections[id]
	if !ok {
		return circle.Circle{}, false
	}
	return sel.Circle, true
}

// Sweep drops selections idle for longer than the ttl.
func (s *Sessions) Sweep() {
	s.lock.Lock()
	defer s.lock.Unlock()

	limit := time.Now().Add(-s.ttl)
	for id, sel := range s.selections {
		if sel.LastSeen.Before(limit) {
			log.Debugf("Expire session %s", id)
			delete(s.selections, id)
		}
	}
}

func (s *Sessions) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return len(s.selections)
}
