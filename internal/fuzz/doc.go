// Package fuzztests houses Go fuzz harnesses for the input-facing parts of
// intlc: the JS/TSX lexer and parser that feed the message scanner, and the
// ICU message parser. Their goal is to guard against panics, hangs and broken
// spans on arbitrary inputs.
//
// Назначение: прогонять произвольные байты через FileSet, лексер, парсер и
// разбор ICU-сообщений.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser, internal/icu,
// internal/diag, internal/testkit.
package fuzztests
