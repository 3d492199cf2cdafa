// Package bot — прикладной чат-бот поверх rpclient. Бот читает канал
// «ничейных» сообщений клиента (Observe().Unhandled), выбирает из них
// broadcast-сообщения тим-чата и отвечает на команды:
//
//	!help — список команд;
//	!time — игровое время и ближайший закат/рассвет;
//	!pop  — онлайн сервера и очередь;
//	!info — имя сервера и карта.
//
// На каждую команду есть общий cooldown, чтобы болтливая команда не
// выжигала токены identity бота. Ответы бота помечаются префиксом
// "[bot]" и самим ботом игнорируются.
//
// Пример:
//
//	b := bot.New(rp, me, logger)
//	b.Start()
//	defer b.Stop()
package bot
