package bot

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/alexemanuelol/rustplus-go/internal/protocol"
	"github.com/alexemanuelol/rustplus-go/internal/rpclient"
)

// botPrefix — метка собственных сообщений; по ней же бот отсекает себя.
const botPrefix = "[bot] "

// cmdCooldown — минимальный интервал между обработанными командами.
const cmdCooldown = 3 * time.Second

type Bot struct {
	rp  *rpclient.Client
	me  rpclient.Identity
	log *zap.Logger

	mu      sync.Mutex
	lastCmd time.Time
	stop    chan struct{}
	done    chan struct{}
}

func New(rp *rpclient.Client, me rpclient.Identity, log *zap.Logger) *Bot {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bot{rp: rp, me: me, log: log}
}

// Start запускает горутину, читающую «ничейные» сообщения клиента.
// Бот не трогает колбэки клиента, так что запускать и останавливать его
// можно в любой момент, в том числе при живом соединении.
func (b *Bot) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stop != nil {
		return
	}
	b.stop = make(chan struct{})
	b.done = make(chan struct{})
	go b.loop(b.stop, b.done)
}

// Stop останавливает бота и дожидается выхода его горутины.
func (b *Bot) Stop() {
	b.mu.Lock()
	stop, done := b.stop, b.done
	b.stop, b.done = nil, nil
	b.mu.Unlock()
	if stop != nil {
		close(stop)
		<-done
	}
}

func (b *Bot) loop(stop, done chan struct{}) {
	defer close(done)
	inbox := b.rp.Observe().Unhandled
	for {
		select {
		case <-stop:
			return
		case msg := <-inbox:
			b.onMessage(msg)
		}
	}
}

func (b *Bot) onMessage(msg *protocol.AppMessage) {
	if !protocol.ValidTeamMessage(msg) {
		return
	}
	chat := msg.GetBroadcast().GetTeamMessage().GetMessage()
	text := strings.TrimSpace(chat.GetMessage())
	if strings.HasPrefix(text, strings.TrimSpace(botPrefix)) {
		return
	}
	b.log.Debug("team chat", zap.String("from", chat.GetName()), zap.String("text", text))
	if !strings.HasPrefix(text, "!") {
		return
	}

	b.mu.Lock()
	if time.Since(b.lastCmd) < cmdCooldown {
		b.mu.Unlock()
		return
	}
	b.lastCmd = time.Now()
	b.mu.Unlock()

	go func() {
		if err := b.handleCommand(text); err != nil {
			b.say(fmt.Sprintf("err: %v", err))
		}
	}()
}

// say пишет в тим-чат от имени бота; ошибки только логируются.
func (b *Bot) say(s string) {
	if err := b.rp.SendTeamMessage(b.me, botPrefix+s, nil); err != nil {
		b.log.Warn("bot say failed", zap.Error(err))
	}
}
