// Package tokens — клиентская тень квот companion-сервера.
//
// Сервер ведёт token-bucket на соединение и на каждого игрока и банит за
// перебор; клиент повторяет ту же политику локально, чтобы не тратить
// round-trip'ы на заведомо срезанные запросы. Балансы лежат в
// rate.Limiter (непрерывное пополнение, потолок = burst), дробные
// стоимости (0.01 токена за ввод камеры) масштабируются в целые юниты.
package tokens

import (
	"context"
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Result — исход попытки списания.
type Result int

const (
	Granted Result = iota
	InsufficientConnection
	InsufficientIdentity
	TimedOut
)

func (r Result) String() string {
	switch r {
	case Granted:
		return "granted"
	case InsufficientConnection:
		return "insufficient connection tokens"
	case InsufficientIdentity:
		return "insufficient identity tokens"
	case TimedOut:
		return "timed out waiting for tokens"
	}
	return "unknown"
}

// unitsPerToken — масштаб: 1 токен = 100 юнитов лимитера, чтобы
// стоимость 0.01 оставалась целой.
const unitsPerToken = 100

// Config — потолки и скорости пополнения, токены/сек.
type Config struct {
	ConnectionMax    float64
	ConnectionPerSec float64
	IdentityMax      float64
	IdentityPerSec   float64
	PairingMax       float64
	PairingPerSec    float64

	// PollInterval — шаг опроса в блокирующем режиме.
	PollInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		ConnectionMax:    50,
		ConnectionPerSec: 3,
		IdentityMax:      25,
		IdentityPerSec:   1,
		PairingMax:       5,
		PairingPerSec:    0.1,
		PollInterval:     100 * time.Millisecond,
	}
}

// Ledger — балансы одного соединения. Живёт от Connect до Disconnect;
// записи по identity создаются лениво с полным потолком и не удаляются
// (игроков на сервере десятки, не миллионы).
type Ledger struct {
	mu      sync.Mutex
	cfg     Config
	conn    *rate.Limiter
	ids     map[uint64]*rate.Limiter
	pairing *rate.Limiter
}

func NewLedger(cfg Config) *Ledger {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 100 * time.Millisecond
	}
	return &Ledger{
		cfg:     cfg,
		conn:    newLimiter(cfg.ConnectionPerSec, cfg.ConnectionMax),
		ids:     make(map[uint64]*rate.Limiter),
		pairing: newLimiter(cfg.PairingPerSec, cfg.PairingMax),
	}
}

// newLimiter — полный бакет на старте, потолок = burst.
func newLimiter(perSec, max float64) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(perSec*unitsPerToken), units(max))
}

func units(amount float64) int {
	return int(math.Round(amount * unitsPerToken))
}

// Consume пытается списать amount токенов сразу из обоих бакетов —
// соединения и identity. В неблокирующем режиме первый дефицитный бакет
// определяет результат (соединение проверяется раньше). В блокирующем —
// опрос каждые PollInterval, пока оба баланса не станут достаточными
// одновременно либо не истечёт timeout.
func (l *Ledger) Consume(ctx context.Context, identity uint64, amount float64, block bool, timeout time.Duration) Result {
	n := units(amount)
	if !block {
		return l.tryOnce(identity, n)
	}

	deadline := time.Now().Add(timeout)
	for {
		if res := l.tryOnce(identity, n); res == Granted {
			return Granted
		}
		remain := time.Until(deadline)
		if remain <= 0 {
			return TimedOut
		}
		wait := l.cfg.PollInterval
		if wait > remain {
			wait = remain
		}
		select {
		case <-ctx.Done():
			return TimedOut
		case <-time.After(wait):
		}
	}
}

func (l *Ledger) tryOnce(identity uint64, n int) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	id := l.identityLocked(identity)
	if l.conn.TokensAt(now) < float64(n) {
		return InsufficientConnection
	}
	if id.TokensAt(now) < float64(n) {
		return InsufficientIdentity
	}
	// оба баланса достаточны — списываем атомарно под одним мьютексом
	if !l.conn.AllowN(now, n) || !id.AllowN(now, n) {
		return InsufficientConnection
	}
	return Granted
}

func (l *Ledger) identityLocked(identity uint64) *rate.Limiter {
	id, ok := l.ids[identity]
	if !ok {
		id = newLimiter(l.cfg.IdentityPerSec, l.cfg.IdentityMax)
		l.ids[identity] = id
	}
	return id
}

// ConsumePairing списывает из медленного бакета регистрации пар.
func (l *Ledger) ConsumePairing(amount float64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := units(amount)
	now := time.Now()
	if l.pairing.TokensAt(now) < float64(n) {
		return false
	}
	return l.pairing.AllowN(now, n)
}

// ConnectionTokens — текущий баланс соединения в токенах.
func (l *Ledger) ConnectionTokens() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.conn.TokensAt(time.Now()) / unitsPerToken
}

// IdentityTokens — баланс identity; для невиданного — потолок
// (ровно то значение, с которым запись будет создана).
func (l *Ledger) IdentityTokens(identity uint64) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	id, ok := l.ids[identity]
	if !ok {
		return l.cfg.IdentityMax
	}
	return id.TokensAt(time.Now()) / unitsPerToken
}

// PairingTokens — баланс бакета регистрации пар.
func (l *Ledger) PairingTokens() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pairing.TokensAt(time.Now()) / unitsPerToken
}
