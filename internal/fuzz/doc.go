// Package fuzztests houses Go fuzz harnesses that exercise the front end
// (scanner -> conditional filter -> parser). Its goal is to smoke test
// robustness and guard against panics or hangs on arbitrary inputs.
//
// Назначение: прогонять произвольные байты через лексер, фильтр директив и
// парсер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/lexer, internal/preproc, internal/parser,
// internal/loader.
package fuzztests
