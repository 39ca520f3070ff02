package jmespath

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCacheDefaultsCapacityWhenGivenLessThanOne(t *testing.T) {
	assert := assert.New(t)
	c := newParseCache(0)
	assert.Equal(defaultParseCacheSize, c.capacity)
}

func TestParseCacheGetMissReturnsFalse(t *testing.T) {
	assert := assert.New(t)
	c := newParseCache(4)
	_, ok := c.get("foo")
	assert.False(ok)
}

func TestParseCachePutThenGetHits(t *testing.T) {
	assert := assert.New(t)
	c := newParseCache(4)
	ast := ASTNode{NodeType: ASTField, Value: "foo"}
	c.put("foo", ast)
	got, ok := c.get("foo")
	assert.True(ok)
	assert.Equal(ast, got)
}

func TestParseCacheEvictsLeastRecentlyUsed(t *testing.T) {
	assert := assert.New(t)
	c := newParseCache(2)
	c.put("a", ASTNode{NodeType: ASTField, Value: "a"})
	c.put("b", ASTNode{NodeType: ASTField, Value: "b"})
	// Touch "a" so "b" becomes the least recently used entry.
	_, _ = c.get("a")
	c.put("c", ASTNode{NodeType: ASTField, Value: "c"})

	_, ok := c.get("b")
	assert.False(ok, "b should have been evicted")
	_, ok = c.get("a")
	assert.True(ok)
	_, ok = c.get("c")
	assert.True(ok)
}

func TestParseCacheRepeatPutOverwritesWithoutGrowing(t *testing.T) {
	assert := assert.New(t)
	c := newParseCache(2)
	c.put("a", ASTNode{NodeType: ASTField, Value: "a"})
	c.put("a", ASTNode{NodeType: ASTField, Value: "a2"})
	assert.Equal(1, c.ll.Len())
	got, ok := c.get("a")
	assert.True(ok)
	assert.Equal("a2", got.Value)
}

func TestParseCacheConcurrentAccessIsSafe(t *testing.T) {
	c := newParseCache(16)
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			expr := string(rune('a' + i%26))
			c.put(expr, ASTNode{NodeType: ASTField, Value: expr})
			c.get(expr)
		}(i)
	}
	wg.Wait()
}
