package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const janitorInterval = time.Minute

type item struct {
	key       string
	value     []byte
	expiresAt time.Time
}

func (i *item) expired(now time.Time) bool {
	return now.After(i.expiresAt)
}

// LRUCache is a fixed-capacity byte-value cache with per-entry TTL.
// Values are opaque, callers encode/decode them.
type LRUCache struct {
	capacity int
	ttl      time.Duration

	mu    sync.Mutex
	ll    *list.List
	items map[string]*list.Element
}

func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		items:    make(map[string]*list.Element),
	}
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, ok := c.items[key]
	if !ok {
		return nil, false
	}

	it := ele.Value.(*item)
	if it.expired(time.Now()) {
		c.removeElement(ele)
		return nil, false
	}

	c.ll.MoveToFront(ele)
	return it.value, true
}

func (c *LRUCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.items[key]; ok {
		c.ll.MoveToFront(ele)
		it := ele.Value.(*item)
		it.value = value
		it.expiresAt = time.Now().Add(c.ttl)
		return
	}

	ele := c.ll.PushFront(&item{key: key, value: value, expiresAt: time.Now().Add(c.ttl)})
	c.items[key] = ele

	if c.ll.Len() > c.capacity {
		if oldest := c.ll.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}
}

func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.items[key]; ok {
		c.removeElement(ele)
	}
}

func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func (c *LRUCache) removeElement(ele *list.Element) {
	c.ll.Remove(ele)
	delete(c.items, ele.Value.(*item).key)
}

// Start launches the janitor, it satisfies the application starter interface.
func (c *LRUCache) Start(ctx context.Context) error {
	go c.janitor(ctx)
	return nil
}

func (c *LRUCache) janitor(ctx context.Context) {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-ctx.Done():
			return
		}
	}
}

func (c *LRUCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for ele := c.ll.Back(); ele != nil; {
		prev := ele.Prev()
		if ele.Value.(*item).expired(now) {
			c.removeElement(ele)
		}
		ele = prev
	}
}
