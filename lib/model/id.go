package model

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/teris-io/shortid"
	"golang.org/x/exp/rand"
)

type IDStrategy string

const (
	CounterIDs IDStrategy = "counter"
	ShortIDs   IDStrategy = "shortid"
)

type IDGenerator interface {
	Next() string
}

// IDs holds one generator per entity kind. The two never share state.
type IDs struct {
	Cities IDGenerator
	Areas  IDGenerator
}

func NewIDs(strategy IDStrategy) (*IDs, error) {
	switch strategy {
	case "", CounterIDs:
		return &IDs{
			Cities: NewCounter("city"),
			Areas:  NewCounter("area"),
		}, nil

	case ShortIDs:
		return &IDs{
			Cities: NewShortIDGenerator("city"),
			Areas:  NewShortIDGenerator("area"),
		}, nil

	default:
		return nil, errors.Errorf("unknown id strategy: %v", strategy)
	}
}

// Counter starts at 0 on every process start; it does not know about ids that
// were loaded from storage.
type Counter struct {
	prefix string
	next   int
}

func NewCounter(prefix string) *Counter {
	return &Counter{prefix: prefix}
}

func (c *Counter) Next() string {
	result := fmt.Sprintf("%v%v", c.prefix, c.next)
	c.next++
	return result
}

type ShortIDGenerator struct {
	prefix string
}

func NewShortIDGenerator(prefix string) *ShortIDGenerator {
	return &ShortIDGenerator{prefix: prefix}
}

func (g *ShortIDGenerator) Next() string {
	return g.prefix + shortid.MustGenerate()
}

func init() {
	sid := shortid.MustNew(0, "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_-", rand.Uint64())
	shortid.SetDefault(sid)
}
