package bot

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// cmdTimeout — общий дедлайн на исполнение одной команды.
const cmdTimeout = 15 * time.Second

func (b *Bot) handleCommand(text string) error {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	cmd := strings.ToLower(fields[0])

	ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
	defer cancel()

	switch cmd {

	case "!help":
		b.say("!help | !time | !pop | !info")
		return nil

	case "!time":
		resp, err := b.rp.GetTimeAsync(ctx, b.me)
		if err != nil {
			return err
		}
		t := resp.GetTime()
		b.say(fmt.Sprintf("время %s (закат %s, рассвет %s)",
			clock(t.GetTime()), clock(t.GetSunset()), clock(t.GetSunrise())))
		return nil

	case "!pop":
		resp, err := b.rp.GetInfoAsync(ctx, b.me)
		if err != nil {
			return err
		}
		info := resp.GetInfo()
		b.say(fmt.Sprintf("онлайн %d/%d (очередь %d)",
			info.GetPlayers(), info.GetMaxPlayers(), info.GetQueuedPlayers()))
		return nil

	case "!info":
		resp, err := b.rp.GetInfoAsync(ctx, b.me)
		if err != nil {
			return err
		}
		info := resp.GetInfo()
		b.say(fmt.Sprintf("%s — карта %s (%d)",
			info.GetName(), info.GetMap(), info.GetMapSize()))
		return nil
	}

	return fmt.Errorf("неизвестная команда %q, см. !help", cmd)
}

// clock переводит игровые часы (float, 0..24) в ЧЧ:ММ.
func clock(t float32) string {
	h := int(t)
	m := int((t - float32(h)) * 60)
	return fmt.Sprintf("%02d:%02d", h, m)
}
