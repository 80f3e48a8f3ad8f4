// Package fuzztests houses Go fuzz harnesses for the front end
// (source -> lexer -> parser -> sema). They guard against panics, hangs and
// broken span invariants on arbitrary input.
//
// Назначение: прогонять произвольные байты через весь конвейер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
