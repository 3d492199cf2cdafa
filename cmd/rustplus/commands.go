package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alexemanuelol/rustplus-go/internal/bot"
	"github.com/alexemanuelol/rustplus-go/internal/config"
	"github.com/alexemanuelol/rustplus-go/internal/rpclient"
)

// buildLogger собирает zap-логгер по уровню из конфига; --debug перебивает.
func buildLogger(level string, debug bool) *zap.Logger {
	lvl := zapcore.InfoLevel
	if err := lvl.Set(level); err != nil {
		lvl = zapcore.InfoLevel
	}
	if debug {
		lvl = zapcore.DebugLevel
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	log, err := zc.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// setup читает конфиг и создаёт подключённый клиент. Если файла нет —
// работаем на дефолтах, как и остальные наши сервисы.
func setup(c *cli.Context) (*rpclient.Client, rpclient.Identity, *zap.Logger, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		cfg = config.GetDefaultConfig()
	}
	log := buildLogger(cfg.Logging.Level, c.Bool("debug"))
	if err != nil {
		log.Warn("конфиг не прочитан, использую значения по умолчанию",
			zap.String("path", c.String("config")), zap.Error(err))
	}

	rp := rpclient.New(rpclient.Config{
		Server:    cfg.Server,
		Port:      cfg.Port,
		UseProxy:  cfg.UseProxy,
		TokenWait: cfg.TokenWait,
	}, rpclient.WithLogger(log))

	id := rpclient.Identity{PlayerID: cfg.PlayerID, PlayerToken: cfg.PlayerToken}

	if err := rp.Connect(c.Context); err != nil {
		log.Sync()
		return nil, rpclient.Identity{}, nil, fmt.Errorf("connect: %w", err)
	}
	return rp, id, log, nil
}

// run — общая обвязка разовых команд: подключиться, выполнить, отключиться.
func run(c *cli.Context, fn func(ctx context.Context, rp *rpclient.Client, id rpclient.Identity) error) error {
	rp, id, log, err := setup(c)
	if err != nil {
		return err
	}
	defer log.Sync()
	defer rp.Disconnect()

	ctx, cancel := context.WithTimeout(c.Context, time.Minute)
	defer cancel()
	return fn(ctx, rp, id)
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "сводка по серверу",
		Action: func(c *cli.Context) error {
			return run(c, func(ctx context.Context, rp *rpclient.Client, id rpclient.Identity) error {
				resp, err := rp.GetInfoAsync(ctx, id)
				if err != nil {
					return err
				}
				info := resp.GetInfo()
				fmt.Printf("%s\n", info.GetName())
				fmt.Printf("карта: %s (%d)\n", info.GetMap(), info.GetMapSize())
				fmt.Printf("онлайн: %d/%d (+%d в очереди)\n",
					info.GetPlayers(), info.GetMaxPlayers(), info.GetQueuedPlayers())
				return nil
			})
		},
	}
}

func timeCommand() *cli.Command {
	return &cli.Command{
		Name:  "time",
		Usage: "игровое время",
		Action: func(c *cli.Context) error {
			return run(c, func(ctx context.Context, rp *rpclient.Client, id rpclient.Identity) error {
				resp, err := rp.GetTimeAsync(ctx, id)
				if err != nil {
					return err
				}
				t := resp.GetTime()
				fmt.Printf("время: %s, рассвет %s, закат %s\n",
					clock(t.GetTime()), clock(t.GetSunrise()), clock(t.GetSunset()))
				return nil
			})
		},
	}
}

func mapCommand() *cli.Command {
	return &cli.Command{
		Name:      "map",
		Usage:     "сохранить карту сервера в JPEG-файл",
		ArgsUsage: "<out.jpg>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("ожидается один аргумент: путь к файлу")
			}
			out := c.Args().First()
			return run(c, func(ctx context.Context, rp *rpclient.Client, id rpclient.Identity) error {
				resp, err := rp.GetMapAsync(ctx, id)
				if err != nil {
					return err
				}
				img := resp.GetMap().GetJpgImage()
				if len(img) == 0 {
					return fmt.Errorf("сервер вернул пустую карту")
				}
				if err := os.WriteFile(out, img, 0o644); err != nil {
					return err
				}
				fmt.Printf("карта записана в %s (%d байт)\n", out, len(img))
				return nil
			})
		},
	}
}

func messageCommand() *cli.Command {
	return &cli.Command{
		Name:      "message",
		Usage:     "отправить сообщение в командный чат",
		ArgsUsage: "<text>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return fmt.Errorf("ожидается текст сообщения")
			}
			text := c.Args().First()
			return run(c, func(ctx context.Context, rp *rpclient.Client, id rpclient.Identity) error {
				if _, err := rp.SendTeamMessageAsync(ctx, id, text); err != nil {
					return err
				}
				fmt.Println("отправлено")
				return nil
			})
		},
	}
}

func entityCommand() *cli.Command {
	return &cli.Command{
		Name:  "entity",
		Usage: "работа с умными устройствами",
		Subcommands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "состояние устройства",
				ArgsUsage: "<id>",
				Action:    entityAction("get"),
			},
			{
				Name:      "on",
				Usage:     "включить умный переключатель",
				ArgsUsage: "<id>",
				Action:    entityAction("on"),
			},
			{
				Name:      "off",
				Usage:     "выключить умный переключатель",
				ArgsUsage: "<id>",
				Action:    entityAction("off"),
			},
		},
	}
}

func entityAction(mode string) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("ожидается id устройства")
		}
		eid, err := strconv.ParseUint(c.Args().First(), 10, 32)
		if err != nil {
			return fmt.Errorf("некорректный id: %w", err)
		}
		return run(c, func(ctx context.Context, rp *rpclient.Client, id rpclient.Identity) error {
			switch mode {
			case "on", "off":
				if _, err := rp.SetEntityValueAsync(ctx, id, uint32(eid), mode == "on"); err != nil {
					return err
				}
				fmt.Printf("устройство %d: %s\n", eid, mode)
			default:
				resp, err := rp.GetEntityInfoAsync(ctx, id, uint32(eid))
				if err != nil {
					return err
				}
				ent := resp.GetEntityInfo()
				fmt.Printf("тип: %d, value: %v, capacity: %d\n",
					ent.GetType(), ent.GetPayload().GetValue(), ent.GetPayload().GetCapacity())
			}
			return nil
		})
	}
}

func cameraCommand() *cli.Command {
	return &cli.Command{
		Name:      "camera",
		Usage:     "подписаться на камеру и сохранить первый собранный кадр",
		ArgsUsage: "<camera-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Value: "snapshot.png", Usage: "путь к PNG-файлу"},
			&cli.DurationFlag{Name: "wait", Value: 30 * time.Second, Usage: "сколько ждать кадр"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("ожидается идентификатор камеры")
			}
			camID := c.Args().First()
			return run(c, func(ctx context.Context, rp *rpclient.Client, id rpclient.Identity) error {
				cam := rp.GetCamera(camID)
				if err := cam.Subscribe(ctx, id); err != nil {
					return err
				}
				defer cam.Unsubscribe()
				fmt.Printf("камера %s (%s), жду кадр...\n", camID, cam.Kind())

				// Кадр становится доступен после накопления окна лучей.
				wait, cancel := context.WithTimeout(ctx, c.Duration("wait"))
				defer cancel()
				select {
				case img := <-rp.Observe().Renders:
					f, err := os.Create(c.String("out"))
					if err != nil {
						return err
					}
					defer f.Close()
					if err := png.Encode(f, img); err != nil {
						return err
					}
					fmt.Printf("кадр %dx%d записан в %s\n",
						img.Bounds().Dx(), img.Bounds().Dy(), c.String("out"))
					return nil
				case <-wait.Done():
					return fmt.Errorf("кадр не пришёл за %s", c.Duration("wait"))
				}
			})
		},
	}
}

func botCommand() *cli.Command {
	return &cli.Command{
		Name:  "bot",
		Usage: "запустить чат-бота и работать до Ctrl+C",
		Action: func(c *cli.Context) error {
			rp, id, log, err := setup(c)
			if err != nil {
				return err
			}
			defer log.Sync()
			defer rp.Disconnect()

			b := bot.New(rp, id, log)
			b.Start()
			defer b.Stop()

			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			log.Info("бот запущен, остановка по SIGINT/SIGTERM")
			<-ctx.Done()
			return nil
		},
	}
}

// clock переводит игровые часы (например 17.5) в «ЧЧ:ММ».
func clock(t float32) string {
	h := int(t)
	m := int((t - float32(h)) * 60)
	return fmt.Sprintf("%02d:%02d", h, m)
}
