// Package cache is a size-bounded store for rendered note previews. Glamour
// rendering is the expensive step in the TUI, so previews are kept per note
// id and evicted oldest-first once the byte budget is exceeded.
package cache

import (
	"container/list"
	"fmt"
)

type Entry struct {
	Key   string
	Value string
}

type Cache struct {
	maxSize   int64
	size      int64
	evictList *list.List
	items     map[string]*list.Element
}

func New(maxSizeMB int64) (*Cache, error) {
	if maxSizeMB <= 0 {
		return nil, fmt.Errorf("cache size must be positive, got %d", maxSizeMB)
	}

	return &Cache{
		maxSize:   maxSizeMB * 1024 * 1024,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}, nil
}

func (c *Cache) Get(key string) (string, bool, error) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		return ele.Value.(*Entry).Value, true, nil
	}
	return "", false, nil
}

func (c *Cache) Put(key, value string) error {
	if ele, hit := c.items[key]; hit {
		old := ele.Value.(*Entry)
		c.size += sizeof(&Entry{Key: key, Value: value}) - sizeof(old)
		old.Value = value
		c.evictList.MoveToFront(ele)
	} else {
		entry := &Entry{Key: key, Value: value}
		ele := c.evictList.PushFront(entry)
		c.items[key] = ele
		c.size += sizeof(entry)
	}

	for c.size > c.maxSize && c.evictList.Len() > 1 {
		c.removeOldest()
	}

	return nil
}

// Drop removes a single entry, used when a note is mutated and its cached
// preview is stale.
func (c *Cache) Drop(key string) {
	if ele, hit := c.items[key]; hit {
		c.removeElement(ele)
	}
}

func (c *Cache) SizeOf() int64 {
	return c.size
}

func (c *Cache) Len() int {
	return c.evictList.Len()
}

func (c *Cache) removeOldest() {
	if ele := c.evictList.Back(); ele != nil {
		c.removeElement(ele)
	}
}

func (c *Cache) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	entry := e.Value.(*Entry)
	delete(c.items, entry.Key)
	c.size -= sizeof(entry)
}

func sizeof(e *Entry) int64 {
	return int64(len(e.Key) + len(e.Value))
}

func ReadableSize(size int64) string {
	switch {
	case size >= 1024*1024:
		return fmt.Sprintf("%.1fMB", float64(size)/(1024*1024))
	case size >= 1024:
		return fmt.Sprintf("%.1fKB", float64(size)/1024)
	default:
		return fmt.Sprintf("%dB", size)
	}
}
