package telemetry

import "sync"

// Record kinds reported to an Observer.
const (
	KindFault   = "fault"
	KindRuntime = "runtime"
	KindArea    = "area"
	KindPlan    = "plan"
)

// Observer receives cache hit/miss notifications.
type Observer interface {
	CacheHit(kind string)
	CacheMiss(kind string)
}

// Session memoises generated records for the lifetime of one open view.
// The first record computed for an entity is returned unchanged afterwards,
// even if the enumeration it was computed under changes.
type Session struct {
	mu       sync.Mutex
	faults   map[string]FaultRecord
	runtimes map[string]RuntimeRecord
	areas    map[string]float64
	plans    map[string]OptimisationPlan
	states   map[string]bool
	obs      Observer
}

// NewSession creates an empty session. obs may be nil.
func NewSession(obs Observer) *Session {
	return &Session{
		faults:   make(map[string]FaultRecord),
		runtimes: make(map[string]RuntimeRecord),
		areas:    make(map[string]float64),
		plans:    make(map[string]OptimisationPlan),
		states:   make(map[string]bool),
		obs:      obs,
	}
}

// Faults returns fault records for an ordered enumeration, generating the
// missing ones. Ordinal 0 is resolved before ordinal 1 so the pairing rule
// sees its predecessor.
func (s *Session) Faults(ids []string) ([]FaultRecord, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyEnumeration
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]FaultRecord, len(ids))
	for i, id := range ids {
		if rec, ok := s.faults[id]; ok {
			s.hit(KindFault)
			out[i] = rec
			continue
		}
		s.miss(KindFault)
		pred := UnknownPredecessor
		if i == 1 {
			pred = KnownPredecessor(out[0].Category)
		}
		rec, err := AssignFault(id, i, len(ids), pred)
		if err != nil {
			return nil, err
		}
		s.faults[id] = rec
		out[i] = rec
	}
	return out, nil
}

// Runtime returns the runtime record for id in the given state. The
// switched-on record is generated once; off is derived from it.
func (s *Session) Runtime(id string, on bool) RuntimeRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.runtimes[id]
	if ok {
		s.hit(KindRuntime)
	} else {
		s.miss(KindRuntime)
		rec = AssignRuntime(id, true)
		s.runtimes[id] = rec
	}
	if !on {
		return rec.Off()
	}
	return rec
}

// Area returns the memoised floor area of room.
func (s *Session) Area(room string, deviceCount int) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a, ok := s.areas[room]; ok {
		s.hit(KindArea)
		return a
	}
	s.miss(KindArea)
	a := RoomArea(room, deviceCount)
	s.areas[room] = a
	return a
}

// Plan returns the memoised optimisation plan for an active runtime.
// Inactive runtimes are answered without caching.
func (s *Session) Plan(rt RuntimeRecord) OptimisationPlan {
	if !rt.Active {
		return Optimise(rt)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.plans[rt.EntityID]; ok {
		s.hit(KindPlan)
		return p
	}
	s.miss(KindPlan)
	p := Optimise(rt)
	s.plans[rt.EntityID] = p
	return p
}

// SetState overrides the on/off state of a device for this session.
func (s *Session) SetState(id string, on bool) {
	s.mu.Lock()
	s.states[id] = on
	s.mu.Unlock()
}

// State returns the overridden state of id, or fallback.
func (s *Session) State(id string, fallback bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if on, ok := s.states[id]; ok {
		return on
	}
	return fallback
}

func (s *Session) hit(kind string) {
	if s.obs != nil {
		s.obs.CacheHit(kind)
	}
}

func (s *Session) miss(kind string) {
	if s.obs != nil {
		s.obs.CacheMiss(kind)
	}
}
