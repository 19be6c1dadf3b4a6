package cache

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// Memory — in-memory кеш с TTL и тем же контрактом, что у redis-варианта.
// Staleness проверяется лениво на каждом чтении по wall-clock, без таймеров.
// Экземпляр инжектируется владельцу, глобального состояния нет.
type Memory struct {
	mu    sync.Mutex
	items map[string]memoryEntry
	now   func() time.Time
}

// NewMemory создает пустой in-memory кеш.
func NewMemory() *Memory {
	return &Memory{
		items: make(map[string]memoryEntry),
		now:   time.Now,
	}
}

// Get пытается получить значение по ключу. Просроченная запись
// удаляется и считается отсутствующей.
func (m *Memory) Get(key string, result any) (bool, error) {
	const op = "cache.Memory.Get"
	m.mu.Lock()
	entry, ok := m.items[key]
	if ok && m.now().After(entry.expiresAt) {
		delete(m.items, key)
		ok = false
	}
	m.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(entry.data, result); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// Set сохраняет значение с временем жизни.
func (m *Memory) Set(key string, value any, expiration time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.items[key] = memoryEntry{
		data:      jsonData,
		expiresAt: m.now().Add(expiration),
	}
	m.mu.Unlock()
	return nil
}

// Invalidate удаляет значение по ключу.
func (m *Memory) Invalidate(key string) error {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
	return nil
}
