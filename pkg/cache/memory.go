package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DefaultTTL     = 24 * time.Hour
	DefaultMaxSize = 1000
)

type Config struct {
	TTL     time.Duration
	MaxSize int
	Now     func() time.Time
}

type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
}

// Memory is a bounded in-process store with per-entry expiry. The oldest insert is evicted first.
type Memory[V any] struct {
	cfg Config

	mu    sync.Mutex
	items map[string]*list.Element
	order *list.List
}

func NewMemory[V any](cfg Config) *Memory[V] {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultMaxSize
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Memory[V]{
		cfg:   cfg,
		items: map[string]*list.Element{},
		order: list.New(),
	}
}

func (m *Memory[V]) Set(key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = m.cfg.TTL
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if el, ok := m.items[key]; ok {
		m.order.Remove(el)
		delete(m.items, key)
	}

	if len(m.items) >= m.cfg.MaxSize {
		m.purgeExpired()
	}

	for len(m.items) >= m.cfg.MaxSize {
		oldest := m.order.Front()
		if oldest == nil {
			break
		}

		m.remove(oldest)
		log.Debug().Str("key", oldest.Value.(*entry[V]).key).Msg("fallback cache full, evicted oldest entry")
	}

	m.items[key] = m.order.PushBack(&entry[V]{
		key:       key,
		value:     value,
		expiresAt: m.cfg.Now().Add(ttl),
	})
}

func (m *Memory[V]) Get(key string) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero V

	el, ok := m.items[key]
	if !ok {
		return zero, false
	}

	item := el.Value.(*entry[V])
	if !m.cfg.Now().Before(item.expiresAt) {
		m.remove(el)
		return zero, false
	}

	return item.value, true
}

func (m *Memory[V]) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if el, ok := m.items[key]; ok {
		m.remove(el)
	}
}

func (m *Memory[V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = map[string]*list.Element{}
	m.order.Init()
}

func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.items)
}

func (m *Memory[V]) purgeExpired() {
	now := m.cfg.Now()

	for el := m.order.Front(); el != nil; {
		next := el.Next()
		if !now.Before(el.Value.(*entry[V]).expiresAt) {
			m.remove(el)
		}
		el = next
	}
}

func (m *Memory[V]) remove(el *list.Element) {
	m.order.Remove(el)
	delete(m.items, el.Value.(*entry[V]).key)
}
