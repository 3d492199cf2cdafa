// Package camera восстанавливает картинку из потока лучей Rust+.
//
// Сервер не шлёт готовый кадр: каждый AppCameraRays несёт компактную
// дельта-кодировку части сэмплов (дистанция/выравнивание/материал) и
// смещение курсора. Позиция каждого сэмпла в растре определяется
// детерминированной перестановкой координат — у клиента и сервера она
// совпадает, потому что генератор засеян одной и той же константой.
// Компоновщик держит окно из последних десяти частичных кадров и после
// заполнения окна собирает из них цветной растр.
package camera
