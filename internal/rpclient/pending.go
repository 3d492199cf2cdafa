package rpclient

import (
	"sync"
	"time"

	"github.com/alexemanuelol/rustplus-go/internal/protocol"
)

// Callback вызывается по приходу ответа с тем же seq. Возвращаемое true
// «съедает» сообщение: событие OnMessage для него не сработает.
type Callback func(*protocol.AppMessage) bool

type pendingEntry struct {
	cb    Callback
	timer *time.Timer
}

// pendingTable — таблица ожидающих запросов. Номер удаляется из таблицы
// ровно один раз: ответом, таймаутом или сбросом при обрыве — что
// наступит раньше; двойное разрешение исключено взятием под мьютексом.
type pendingTable struct {
	mu      sync.Mutex
	last    uint32
	entries map[uint32]*pendingEntry
}

func newPendingTable() *pendingTable {
	return &pendingTable{entries: make(map[uint32]*pendingEntry)}
}

// alloc выделяет sequence-номер линейным пробегом от последнего
// использованного: занятые живыми записями номера пропускаются, так что
// переполнение uint32 не столкнёт нас с долгоживущим запросом.
// При cb == nil ответа никто не ждёт и запись не создаётся.
func (t *pendingTable) alloc(cb Callback) uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()

	seq := t.last
	for {
		seq++
		if seq == 0 {
			continue
		}
		if _, busy := t.entries[seq]; !busy {
			break
		}
	}
	t.last = seq
	if cb != nil {
		t.entries[seq] = &pendingEntry{cb: cb}
	}
	return seq
}

// take снимает запись. Вернувшийся не-nil гарантирует, что никакой другой
// путь (ответ/таймаут/сброс) эту запись уже не получит.
func (t *pendingTable) take(seq uint32) *pendingEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	e := t.entries[seq]
	if e == nil {
		return nil
	}
	delete(t.entries, seq)
	if e.timer != nil {
		e.timer.Stop()
	}
	return e
}

// armTimer вешает таймер на живую запись; если ответ успел прийти до
// вызова — no-op.
func (t *pendingTable) armTimer(seq uint32, d time.Duration, fire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e := t.entries[seq]; e != nil {
		e.timer = time.AfterFunc(d, fire)
	}
}

// drain забирает все записи разом (обрыв соединения).
func (t *pendingTable) drain() map[uint32]Callback {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.entries) == 0 {
		return nil
	}
	out := make(map[uint32]Callback, len(t.entries))
	for seq, e := range t.entries {
		if e.timer != nil {
			e.timer.Stop()
		}
		out[seq] = e.cb
		delete(t.entries, seq)
	}
	return out
}

func (t *pendingTable) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
