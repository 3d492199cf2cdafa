// Package rpclient реализует WebSocket-клиент Rust+ (Facepunch Companion).
// Клиент держит одно постоянное соединение (напрямую ws://ip:port либо
// через прокси Facepunch wss://companion-rust.facepunch.com/game/...),
// мультиплексирует запросы по sequence-номерам, повторяет клиентской
// стороной серверные token-bucket лимиты и собирает картинку камеры из
// потока лучей.
//
// Высокоуровневые методы — в двух формах: колбэчной (GetInfo, GetMap,
// SendTeamMessage, ...) и ожидающей (GetInfoAsync, ...). Каждая операция
// имеет фиксированную стоимость в токенах и таймаут; identity вызывающего
// передаётся в каждый вызов.
//
// События: колбэки поля структуры (OnConnecting, OnConnected, OnMessage,
// OnDisconnected, OnError, OnRequest, OnCameraRender) плюс типизированные
// каналы-наблюдатели (Observe) для тех, кому удобнее select.
//
// Безопасность и устойчивость:
//   - Запись в сокет сериализована (мьютекс + write-deadline).
//   - Ожидающие колбэки снимаются ровно один раз: ответ, таймаут или
//     обрыв соединения — что случится раньше.
//   - При проблемах — экспоненциальный реконнект; балансы токенов при
//     реконнекте создаются заново.
//
// Пример:
//
//	rp := rpclient.New(rpclient.Config{Server: "1.2.3.4", Port: 28012})
//	rp.OnConnected = func() { fmt.Println("connected") }
//	ctx := context.Background()
//	if err := rp.Connect(ctx); err != nil { log.Fatal(err) }
//	defer rp.Disconnect()
//
//	me := rpclient.Identity{PlayerID: steamID, PlayerToken: token}
//	_ = rp.SendTeamMessage(me, "Hello team!", nil)
//
//	info, err := rp.GetEntityInfoAsync(ctx, me, 559662)
//	if err == nil {
//	    fmt.Println(info.GetEntityInfo().GetPayload().GetValue())
//	}
package rpclient
