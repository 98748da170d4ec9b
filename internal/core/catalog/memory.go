package catalog

import (
	"context"
	"fmt"
	"sync"

	"recipe-nutrition/internal/core/nutrition"
	"recipe-nutrition/internal/pkg/common"

	"go.uber.org/zap"
)

// MemoryStore 記憶體目錄，適用單機部署與測試
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]nutrition.Ingredient
	aliases map[string]string // 別名 -> 名稱
}

// NewMemoryStore 創建新的記憶體目錄
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]nutrition.Ingredient),
		aliases: make(map[string]string),
	}
}

// FindByNameOrAlias 以名稱或別名查詢
func (m *MemoryStore) FindByNameOrAlias(_ context.Context, name string) (*nutrition.Ingredient, error) {
	key := Key(name)

	m.mu.RLock()
	defer m.mu.RUnlock()

	owner, ok := m.aliases[key]
	if !ok {
		return nil, ErrNotFound
	}
	rec, ok := m.records[owner]
	if !ok {
		return nil, ErrNotFound
	}
	out := clone(rec)
	return &out, nil
}

// List 依名稱排序回傳所有記錄
func (m *MemoryStore) List(_ context.Context) ([]nutrition.Ingredient, error) {
	m.mu.RLock()
	out := make([]nutrition.Ingredient, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, clone(rec))
	}
	m.mu.RUnlock()

	sortByName(out)
	return out, nil
}

// Upsert 新增或更新記錄
func (m *MemoryStore) Upsert(_ context.Context, ing nutrition.Ingredient) (bool, error) {
	rec, err := Prepare(ing)
	if err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, alias := range rec.Aliases {
		if owner, ok := m.aliases[alias]; ok && owner != rec.Name {
			logConflict(rec.Name, alias, owner)
			return false, fmt.Errorf("%w: %q is an alias of %q", ErrAliasConflict, alias, owner)
		}
	}

	old, exists := m.records[rec.Name]
	if exists {
		for _, alias := range old.Aliases {
			delete(m.aliases, alias)
		}
	}
	for _, alias := range rec.Aliases {
		m.aliases[alias] = rec.Name
	}
	m.records[rec.Name] = rec

	common.LogDebug("Ingredient stored",
		zap.String("ingredient", rec.Name),
		zap.Bool("created", !exists),
	)
	return !exists, nil
}

// Delete 刪除記錄與其別名
func (m *MemoryStore) Delete(_ context.Context, name string) error {
	key := Key(name)

	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[key]
	if !ok {
		return ErrNotFound
	}
	for _, alias := range rec.Aliases {
		if m.aliases[alias] == key {
			delete(m.aliases, alias)
		}
	}
	delete(m.records, key)
	return nil
}

// Len 記錄數量
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Ping 記憶體目錄永遠可用
func (m *MemoryStore) Ping(context.Context) error {
	return nil
}

// Close 清空目錄
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = make(map[string]nutrition.Ingredient)
	m.aliases = make(map[string]string)
	return nil
}
