// Package protocol описывает схему сообщений Rust+ (Facepunch Companion)
// и их бинарный кодек.
//
// Сообщения повторяют protobuf-схему companion-сервера: AppRequest уходит
// на сервер, AppMessage (AppResponse либо AppBroadcast) приходит обратно.
// Кодек написан поверх encoding/protowire; опциональные поля — указатели
// с геттерами в стиле сгенерированного кода, так что вызывающий код
// выглядит как обычный protobuf:
//
//	msg, err := protocol.DecodeMessage(data)
//	if err == nil && protocol.ValidResponse(msg) {
//	    seq := msg.GetResponse().GetSeq()
//	    ...
//	}
//
// Помимо схемы здесь живут неизменяемые константы протокола: маски кнопок
// камеры, контрольные флаги и таблица кодов ошибок сервера.
package protocol
