package cache

import (
	"sync"
	"time"
)

// Item guarda um valor com o instante de expiração em nanossegundos
type Item[V any] struct {
	Value      V
	Expiration int64
}

// Cache é um cache em memória com expiração por item
type Cache[V any] struct {
	items map[string]Item[V]
	mu    sync.RWMutex
	now   func() time.Time
	stop  chan struct{}
	once  sync.Once
}

// New cria um cache e inicia a limpeza periódica dos itens expirados.
// Chame Close para encerrar a goroutine de limpeza.
func New[V any](cleanupInterval time.Duration) *Cache[V] {
	c := newCache[V](time.Now)

	if cleanupInterval > 0 {
		go func() {
			ticker := time.NewTicker(cleanupInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					c.DeleteExpired()
				case <-c.stop:
					return
				}
			}
		}()
	}

	return c
}

// NewWithClock cria um cache sem limpeza em segundo plano, usando o relógio informado
func NewWithClock[V any](now func() time.Time) *Cache[V] {
	return newCache[V](now)
}

func newCache[V any](now func() time.Time) *Cache[V] {
	return &Cache[V]{
		items: make(map[string]Item[V]),
		now:   now,
		stop:  make(chan struct{}),
	}
}

// Set adiciona um item com a duração informada
func (c *Cache[V]) Set(key string, value V, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = Item[V]{
		Value:      value,
		Expiration: c.now().Add(duration).UnixNano(),
	}
}

// Get retorna o item e se ele foi encontrado e ainda não expirou
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero V
	item, found := c.items[key]
	if !found {
		return zero, false
	}

	if c.now().UnixNano() > item.Expiration {
		return zero, false
	}

	return item.Value, true
}

func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// DeleteExpired remove todos os itens expirados
func (c *Cache[V]) DeleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now().UnixNano()
	for k, v := range c.items {
		if now > v.Expiration {
			delete(c.items, k)
		}
	}
}

func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]Item[V])
}

// Close encerra a limpeza periódica
func (c *Cache[V]) Close() {
	c.once.Do(func() { close(c.stop) })
}
