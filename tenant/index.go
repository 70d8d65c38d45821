package tenant

import "sync"

// codeIndex maps a normalized tenant code to the logical database name last
// proven to contain its property record. Pure cache semantics, no I/O. An
// entry exists only after a successful resolution and is removed when a
// binding turns out stale, forcing rediscovery.
type codeIndex struct {
	mu     sync.RWMutex
	byCode map[string]string
}

func newCodeIndex() *codeIndex {
	return &codeIndex{byCode: make(map[string]string)}
}

func (i *codeIndex) Get(code string) (string, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	name, ok := i.byCode[code]
	return name, ok
}

func (i *codeIndex) Put(code, databaseName string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.byCode[code] = databaseName
}

func (i *codeIndex) Invalidate(code string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.byCode, code)
}

func (i *codeIndex) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.byCode)
}
