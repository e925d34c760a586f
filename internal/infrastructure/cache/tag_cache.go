// Package cache mantém em memória a visão de detalhe das etiquetas.
package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
	"github.com/rafabene/threaddate-backend/internal/domain/ports"
)

// TagDetailCache implementa ports.TagDetailCache com ristretto.
// Cada entrada custa 1, então MaxCost equivale ao número máximo de entradas.
//
// Cada etiqueta tem uma versão incrementada por Invalidate. Set só grava se a
// versão lida antes da consulta ao banco ainda for a atual.
type TagDetailCache struct {
	cache *ristretto.Cache[string, *entities.TagDetail]
	ttl   time.Duration

	mu       sync.Mutex
	versions map[string]uint64
}

// NewTagDetailCache cria o cache com capacidade e TTL informados
func NewTagDetailCache(maxEntries int64, ttl time.Duration) (*TagDetailCache, error) {
	if maxEntries < 1 {
		maxEntries = 1000
	}

	c, err := ristretto.NewCache(&ristretto.Config[string, *entities.TagDetail]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tag cache: %w", err)
	}

	return &TagDetailCache{
		cache:    c,
		ttl:      ttl,
		versions: make(map[string]uint64),
	}, nil
}

func (c *TagDetailCache) Get(tagID string) (*entities.TagDetail, bool) {
	return c.cache.Get(tagID)
}

func (c *TagDetailCache) Version(tagID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.versions[tagID]
}

// Set grava a entrada e espera os buffers internos serem aplicados,
// para que um Get logo em seguida a encontre. Retorna false sem gravar
// quando a etiqueta foi invalidada depois de version ser lida.
func (c *TagDetailCache) Set(tagID string, version uint64, detail *entities.TagDetail) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.versions[tagID] != version {
		return false
	}
	c.cache.SetWithTTL(tagID, detail, 1, c.ttl)
	c.cache.Wait()
	return true
}

func (c *TagDetailCache) Invalidate(tagID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.versions[tagID]++
	c.cache.Del(tagID)
}

// Close libera os goroutines do ristretto
func (c *TagDetailCache) Close() {
	c.cache.Close()
}

var _ ports.TagDetailCache = (*TagDetailCache)(nil)
