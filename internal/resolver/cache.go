package resolver

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache memoizes alias tables per grammar source. Interface descriptions
// are fetched-and-reused text blobs, so callers that resolve many method
// signatures against the same source avoid re-extracting every time.
type Cache struct {
	tables *lru.Cache[string, Table]
}

func NewCache(size int) (*Cache, error) {
	c, err := lru.New[string, Table](size)
	if err != nil {
		return nil, err
	}
	return &Cache{tables: c}, nil
}

// Table returns the alias table for source, extracting it on first use.
func (c *Cache) Table(source string) Table {
	if t, ok := c.tables.Get(source); ok {
		return t
	}
	t := ExtractAliases(source)
	c.tables.Add(source, t)
	return t
}
