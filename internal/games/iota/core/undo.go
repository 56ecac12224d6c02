package core

// UndoLog records writes to a map so they can be reverted in reverse order.
type UndoLog[K comparable, V any] struct {
	records []undoRecord[K, V]
}

type undoRecord[K comparable, V any] struct {
	key     K
	prev    V
	hadPrev bool
}

// Set writes m[key] = value and records the previous state of key.
func (u *UndoLog[K, V]) Set(m map[K]V, key K, value V) {
	prev, ok := m[key]
	u.records = append(u.records, undoRecord[K, V]{key: key, prev: prev, hadPrev: ok})
	m[key] = value
}

// Len returns the number of recorded writes.
func (u *UndoLog[K, V]) Len() int {
	return len(u.records)
}

// Rollback reverts every recorded write, newest first, and clears the log.
func (u *UndoLog[K, V]) Rollback(m map[K]V) {
	for i := len(u.records) - 1; i >= 0; i-- {
		r := u.records[i]
		if r.hadPrev {
			m[r.key] = r.prev
		} else {
			delete(m, r.key)
		}
	}
	u.records = u.records[:0]
}

// Commit forgets every recorded write.
func (u *UndoLog[K, V]) Commit() {
	u.records = u.records[:0]
}
