// Package cache — Generic in-memory TTL cache.
//
// Ana kullanım alanı session cache'tir: her authenticated request'te
// token'ın hala geçerli olup olmadığını DB'den okumak yerine, token_id →
// user_id eşlemesi belirli bir süre bellekte tutulur. Logout anında ilgili
// entry Evict ile senkron silinir, TTL dolunca da otomatik düşer — yani
// cache hiçbir zaman revocation için tek doğruluk kaynağı değildir.
//
// Cache process-scoped bir component'tir: main'de bir kez oluşturulur ve
// ihtiyacı olan service'lere handle olarak geçilir. Global değişken YOK —
// multi-process deployment'ta harici bir key-value store ile değiştirilebilir
// olması için erişim hep referans üzerinden.
//
// Thread safety: sync.RWMutex — birden fazla goroutine aynı anda okuyabilir,
// yazma sırasında tüm erişim bloklanır.
package cache

import (
	"sync"
	"time"
)

// entry, cache'teki tek bir kayıttır.
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLCache, generic in-memory TTL cache.
//
// K ve V tip parametreleridir — oluştururken concrete tipler belirtilir:
//
//	sessions := cache.New[string, string](time.Hour, time.Minute)
//	sessions.Set(tokenID, userID)
//	uid, ok := sessions.Get(tokenID)
//	sessions.Evict(tokenID)
type TTLCache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]entry[V]
	ttl     time.Duration

	// stopSweep: periyodik temizleme goroutine'ini durdurmak için.
	// Close() çağrıldığında bu channel kapatılır.
	stopSweep chan struct{}
}

// New, yeni bir TTLCache oluşturur ve periyodik sweep goroutine'ini başlatır.
//
// ttl: her entry'nin yaşam süresi.
// sweepInterval: süresi dolan entry'lerin map'ten fiziksel silinme sıklığı.
//
// Sweep neden ayrı? Get zaten süresi dolmuş entry döndürmez, ama map'ten
// fiziksel silme periyodik yapılır — bellek sızıntısını önler.
// sweepInterval < ttl olmalıdır (aksi halde map gereksiz büyür).
func New[K comparable, V any](ttl, sweepInterval time.Duration) *TTLCache[K, V] {
	c := &TTLCache[K, V]{
		entries:   make(map[K]entry[V]),
		ttl:       ttl,
		stopSweep: make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.evictExpired()
			case <-c.stopSweep:
				return
			}
		}
	}()

	return c
}

// Get, cache'ten bir değer okur.
//
// (value, true): key var ve süresi dolmamış.
// (zero value, false): key yok veya süresi dolmuş.
//
// Süresi dolan entry bu noktada map'ten silinmez — sweep yapar.
// Bu, Get'i hızlı tutar: RLock yeterli, Lock gerekmez.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set, cache'e bir değer yazar (TTL ile).
func (c *TTLCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Evict, belirli bir key'i cache'ten anında siler.
// Logout akışında token invalidation'dan hemen SONRA çağrılır —
// sıralama kuralı: önce DB'ye persist, sonra evict.
func (c *TTLCache[K, V]) Evict(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Len, cache'teki toplam entry sayısını döner (süresi dolmuşlar dahil).
func (c *TTLCache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Close, sweep goroutine'ini durdurur.
// Cache artık kullanılmayacaksa çağrılmalıdır (goroutine leak önleme).
func (c *TTLCache[K, V]) Close() {
	close(c.stopSweep)
}

// evictExpired, süresi dolan entry'leri map'ten fiziksel olarak siler.
func (c *TTLCache[K, V]) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}
