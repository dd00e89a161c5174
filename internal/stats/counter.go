package stats

import "slices"

// counter counts keys and remembers the order they were first seen in.
type counter[K comparable] struct {
	order  []K
	counts map[K]int
}

func newCounter[K comparable]() counter[K] {
	return counter[K]{
		order:  make([]K, 0),
		counts: make(map[K]int),
	}
}

func (c *counter[K]) add(key K, n int) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}

	c.counts[key] += n
}

func (c *counter[K]) merge(other *counter[K]) {
	for _, key := range other.order {
		c.add(key, other.counts[key])
	}
}

// top returns keys by count descending. Equal counts keep first-seen order.
func (c *counter[K]) top(limit int) []K {
	keys := slices.Clone(c.order)
	slices.SortStableFunc(keys, func(a, b K) int {
		return c.counts[b] - c.counts[a]
	})

	if limit >= 0 && limit < len(keys) {
		keys = keys[:limit]
	}

	return keys
}

func (c *counter[K]) snapshot() map[K]int {
	res := make(map[K]int, len(c.counts))
	for key, n := range c.counts {
		res[key] = n
	}

	return res
}
