package jmespath

import (
	"container/list"
	"sync"

	"github.com/rs/zerolog/log"
)

const defaultParseCacheSize = 64

type parseCacheEntry struct {
	expression string
	ast        ASTNode
}

// parseCache is a bounded LRU mapping expression strings to their parsed
// AST, guarded by a RWMutex so a Runtime can be shared across goroutines.
// Eviction drops the least recently used entry once capacity is exceeded.
type parseCache struct {
	mu       sync.RWMutex
	capacity int
	ll       *list.List
	items    map[string]*list.Element
}

func newParseCache(capacity int) *parseCache {
	if capacity < 1 {
		capacity = defaultParseCacheSize
	}
	return &parseCache{
		capacity: capacity,
		ll:       list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

func (c *parseCache) get(expression string) (ASTNode, bool) {
	c.mu.RLock()
	elem, ok := c.items[expression]
	c.mu.RUnlock()
	if !ok {
		return ASTNode{}, false
	}
	c.mu.Lock()
	c.ll.MoveToFront(elem)
	ast := elem.Value.(*parseCacheEntry).ast
	c.mu.Unlock()
	return ast, true
}

func (c *parseCache) put(expression string, ast ASTNode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[expression]; ok {
		c.ll.MoveToFront(elem)
		elem.Value.(*parseCacheEntry).ast = ast
		return
	}
	elem := c.ll.PushFront(&parseCacheEntry{expression: expression, ast: ast})
	c.items[expression] = elem
	if c.ll.Len() <= c.capacity {
		return
	}
	oldest := c.ll.Back()
	if oldest == nil {
		return
	}
	c.ll.Remove(oldest)
	entry := oldest.Value.(*parseCacheEntry)
	delete(c.items, entry.expression)
	log.Debug().Str("expression", entry.expression).Msg("parse cache evicted entry")
}
