package tokens

import (
	"context"
	"math"
	"testing"
	"time"
)

// допуск на пополнение, успевшее накапать между вызовами
const eps = 0.5

func near(got, want float64) bool {
	return math.Abs(got-want) < eps
}

func TestConsumeDebitsBothScopes(t *testing.T) {
	t.Parallel()

	l := NewLedger(DefaultConfig())
	if res := l.Consume(context.Background(), 100, 1, false, 0); res != Granted {
		t.Fatalf("Consume = %v", res)
	}
	if got := l.ConnectionTokens(); !near(got, 49) {
		t.Errorf("connection = %v, want ~49", got)
	}
	if got := l.IdentityTokens(100); !near(got, 24) {
		t.Errorf("identity = %v, want ~24", got)
	}
	// чужой баланс не трогаем
	if got := l.IdentityTokens(200); got != 25 {
		t.Errorf("untouched identity = %v, want 25", got)
	}
}

func TestIdentityStartsAtCeiling(t *testing.T) {
	t.Parallel()

	l := NewLedger(DefaultConfig())
	if got := l.IdentityTokens(42); got != 25 {
		t.Errorf("fresh identity = %v, want 25", got)
	}
	// и после первого списания запись живёт отдельно от остальных
	l.Consume(context.Background(), 42, 5, false, 0)
	if got := l.IdentityTokens(42); !near(got, 20) {
		t.Errorf("after debit = %v, want ~20", got)
	}
}

func TestInsufficientConnectionReportedFirst(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.ConnectionMax = 1
	cfg.ConnectionPerSec = 0
	cfg.IdentityMax = 1
	cfg.IdentityPerSec = 0
	l := NewLedger(cfg)

	// оба бакета пусты для стоимости 2, но виноватым считается
	// бакет соединения
	if res := l.Consume(context.Background(), 1, 2, false, 0); res != InsufficientConnection {
		t.Errorf("Consume = %v, want InsufficientConnection", res)
	}
}

func TestInsufficientIdentity(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.IdentityMax = 1
	cfg.IdentityPerSec = 0
	l := NewLedger(cfg)

	if res := l.Consume(context.Background(), 1, 2, false, 0); res != InsufficientIdentity {
		t.Errorf("Consume = %v, want InsufficientIdentity", res)
	}
	// бакет соединения при отказе остаётся нетронутым
	if got := l.ConnectionTokens(); !near(got, 50) {
		t.Errorf("connection after refusal = %v, want ~50", got)
	}
}

func TestFractionalCost(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.ConnectionPerSec = 0
	cfg.IdentityPerSec = 0
	l := NewLedger(cfg)

	// сто вводов камеры по 0.01 токена = ровно один токен
	for i := 0; i < 100; i++ {
		if res := l.Consume(context.Background(), 7, 0.01, false, 0); res != Granted {
			t.Fatalf("iteration %d: %v", i, res)
		}
	}
	if got := l.ConnectionTokens(); !near(got, 49) {
		t.Errorf("connection = %v, want ~49", got)
	}
}

func TestCeilingNeverExceeded(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.ConnectionMax = 2
	cfg.ConnectionPerSec = 100
	l := NewLedger(cfg)

	time.Sleep(50 * time.Millisecond)
	if got := l.ConnectionTokens(); got > 2 {
		t.Errorf("connection = %v, exceeds ceiling 2", got)
	}
}

func TestBlockingWaitRefill(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.ConnectionMax = 1
	cfg.ConnectionPerSec = 10 // бакет наполняется за ~100мс
	cfg.IdentityMax = 50
	cfg.IdentityPerSec = 0
	cfg.PollInterval = 10 * time.Millisecond
	l := NewLedger(cfg)

	// осушаем соединение
	if res := l.Consume(context.Background(), 1, 1, false, 0); res != Granted {
		t.Fatalf("drain: %v", res)
	}
	// блокирующий вызов должен дождаться пополнения
	if res := l.Consume(context.Background(), 1, 1, true, 2*time.Second); res != Granted {
		t.Errorf("blocking Consume = %v, want Granted", res)
	}
}

func TestBlockingWaitTimesOut(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.ConnectionMax = 1
	cfg.ConnectionPerSec = 0 // никогда не пополнится
	cfg.PollInterval = 10 * time.Millisecond
	l := NewLedger(cfg)

	l.Consume(context.Background(), 1, 1, false, 0)
	start := time.Now()
	if res := l.Consume(context.Background(), 1, 1, true, 100*time.Millisecond); res != TimedOut {
		t.Errorf("blocking Consume = %v, want TimedOut", res)
	}
	if time.Since(start) > time.Second {
		t.Error("blocking wait overshot its timeout")
	}
}

func TestBlockingWaitHonorsContext(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.ConnectionMax = 1
	cfg.ConnectionPerSec = 0
	cfg.PollInterval = 10 * time.Millisecond
	l := NewLedger(cfg)
	l.Consume(context.Background(), 1, 1, false, 0)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()
	if res := l.Consume(ctx, 1, 1, true, 10*time.Second); res != TimedOut {
		t.Errorf("cancelled Consume = %v, want TimedOut", res)
	}
}

func TestPairingBucket(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.PairingPerSec = 0
	l := NewLedger(cfg)

	for i := 0; i < 5; i++ {
		if !l.ConsumePairing(1) {
			t.Fatalf("pairing debit %d refused", i)
		}
	}
	if l.ConsumePairing(1) {
		t.Error("sixth pairing debit must be refused")
	}
	if got := l.PairingTokens(); !near(got, 0) {
		t.Errorf("pairing balance = %v, want ~0", got)
	}
}

func TestResultString(t *testing.T) {
	t.Parallel()

	cases := map[Result]string{
		Granted:                "granted",
		InsufficientConnection: "insufficient connection tokens",
		InsufficientIdentity:   "insufficient identity tokens",
		TimedOut:               "timed out waiting for tokens",
	}
	for r, want := range cases {
		if r.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(r), r.String(), want)
		}
	}
}
