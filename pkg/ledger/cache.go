package ledger

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"
)

var (
	CacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ledger_cache_hits_total",
		Help: "How many derived timelines were served from the memoization cache.",
	})

	CacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ledger_cache_misses_total",
		Help: "How many derived timelines had to be computed.",
	})
)

// Fingerprint returns the hex encoded SHA-256 of the JSON encoding of v.
func Fingerprint(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

type entry[T any] struct {
	key   string
	value T
}

// Memo is a size bounded least recently used cache. Concurrent calls for
// the same missing key compute the value once.
type Memo[T any] struct {
	size  int
	mu    sync.Mutex
	order *list.List
	items map[string]*list.Element
	group singleflight.Group
}

// NewMemo returns a Memo holding at most size values. A size below 1 is
// treated as 1.
func NewMemo[T any](size int) *Memo[T] {
	return &Memo[T]{
		size:  max(size, 1),
		order: list.New(),
		items: make(map[string]*list.Element),
	}
}

// Get returns the value cached for key, computing and storing it with
// compute on a miss.
func (m *Memo[T]) Get(key string, compute func() T) T {
	if value, ok := m.lookup(key); ok {
		CacheHits.Inc()
		return value
	}

	v, _, _ := m.group.Do(key, func() (any, error) {
		if value, ok := m.lookup(key); ok {
			return value, nil
		}

		CacheMisses.Inc()
		value := compute()
		m.store(key, value)
		return value, nil
	})

	return v.(T)
}

// Len returns the number of cached values.
func (m *Memo[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}

func (m *Memo[T]) lookup(key string) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if el, ok := m.items[key]; ok {
		m.order.MoveToFront(el)
		return el.Value.(*entry[T]).value, true
	}

	var zero T
	return zero, false
}

func (m *Memo[T]) store(key string, value T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if el, ok := m.items[key]; ok {
		el.Value.(*entry[T]).value = value
		m.order.MoveToFront(el)
		return
	}

	m.items[key] = m.order.PushFront(&entry[T]{key: key, value: value})

	for m.order.Len() > m.size {
		oldest := m.order.Back()
		m.order.Remove(oldest)
		delete(m.items, oldest.Value.(*entry[T]).key)
	}
}
