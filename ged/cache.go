package ged

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/gedembed/editcost"
)

// pairKey is an unordered pair of entry fingerprints, lower first.
type pairKey struct {
	lo, hi uint64
}

func newPairKey(a, b uint64) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// pairCache memoizes cost results of recurring pairs. A nil *pairCache is a
// valid no-op cache.
type pairCache struct {
	c *lru.Cache[pairKey, editcost.Result]
}

// newPairCache returns nil when size is 0.
func newPairCache(size int) (*pairCache, error) {
	if size == 0 {
		return nil, nil
	}
	c, err := lru.New[pairKey, editcost.Result](size)
	if err != nil {
		return nil, err
	}

	return &pairCache{c: c}, nil
}

func (p *pairCache) get(k pairKey) (editcost.Result, bool) {
	if p == nil {
		return editcost.Result{}, false
	}

	return p.c.Get(k)
}

func (p *pairCache) add(k pairKey, r editcost.Result) {
	if p == nil {
		return
	}
	p.c.Add(k, r)
}
