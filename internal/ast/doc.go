// Package ast holds the syntax tree of one program as a set of arenas.
//
// Every node lives in an arena owned by Builder and is addressed by a typed
// 1-based ID; zero IDs mean "absent". A node is referenced by exactly one
// parent, so the structure is a strict tree. Per-kind data lives in payload
// arenas next to the generic Item/Stmt/Expr records.
package ast
