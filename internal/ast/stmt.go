package ast

import (
	"lang/internal/source"
)

type StmtKind uint8

const (
	StmtBlock StmtKind = iota
	StmtLet
	StmtAssign
	StmtIf
	StmtWhile
	StmtReturn
	StmtPrint
	StmtExpr
)

func (k StmtKind) String() string {
	switch k {
	case StmtBlock:
		return "Block"
	case StmtLet:
		return "Let"
	case StmtAssign:
		return "Assign"
	case StmtIf:
		return "If"
	case StmtWhile:
		return "While"
	case StmtReturn:
		return "Return"
	case StmtPrint:
		return "Print"
	case StmtExpr:
		return "ExprStmt"
	default:
		return "Stmt(?)"
	}
}

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

type BlockStmt struct {
	Stmts []StmtID
	// Unterminated is set when input ended before the closing ']'.
	Unterminated bool
}

type LetStmt struct {
	Name     source.StringID
	NameSpan source.Span
	Type     TypeRef
	Value    ExprID
}

type AssignStmt struct {
	Name     source.StringID
	NameSpan source.Span
	Value    ExprID
}

type IfStmt struct {
	Cond ExprID
	Then StmtID // StmtBlock
	Else StmtID // StmtBlock or NoStmtID
}

type WhileStmt struct {
	Cond ExprID
	Body StmtID
}

type ReturnStmt struct {
	Value ExprID // NoExprID for bare return
}

// ExprStmt carries the operand of print and of expression statements.
type ExprStmt struct {
	Value ExprID
}

type Stmts struct {
	Arena   *Arena[Stmt]
	Blocks  *Arena[BlockStmt]
	Lets    *Arena[LetStmt]
	Assigns *Arena[AssignStmt]
	Ifs     *Arena[IfStmt]
	Whiles  *Arena[WhileStmt]
	Returns *Arena[ReturnStmt]
	Exprs   *Arena[ExprStmt]
}

func NewStmts(capHint uint) *Stmts {
	return &Stmts{
		Arena:   NewArena[Stmt](capHint),
		Blocks:  NewArena[BlockStmt](capHint / 4),
		Lets:    NewArena[LetStmt](capHint / 4),
		Assigns: NewArena[AssignStmt](capHint / 8),
		Ifs:     NewArena[IfStmt](capHint / 8),
		Whiles:  NewArena[WhileStmt](capHint / 8),
		Returns: NewArena[ReturnStmt](capHint / 8),
		Exprs:   NewArena[ExprStmt](capHint / 4),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{Kind: kind, Span: span, Payload: payload}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) NewBlock(span source.Span, stmts []StmtID, unterminated bool) StmtID {
	payload := s.Blocks.Allocate(BlockStmt{Stmts: stmts, Unterminated: unterminated})
	return s.new(StmtBlock, span, PayloadID(payload))
}

func (s *Stmts) NewLet(span source.Span, let LetStmt) StmtID {
	return s.new(StmtLet, span, PayloadID(s.Lets.Allocate(let)))
}

func (s *Stmts) NewAssign(span source.Span, assign AssignStmt) StmtID {
	return s.new(StmtAssign, span, PayloadID(s.Assigns.Allocate(assign)))
}

func (s *Stmts) NewIf(span source.Span, cond ExprID, then, els StmtID) StmtID {
	payload := s.Ifs.Allocate(IfStmt{Cond: cond, Then: then, Else: els})
	return s.new(StmtIf, span, PayloadID(payload))
}

func (s *Stmts) NewWhile(span source.Span, cond ExprID, body StmtID) StmtID {
	payload := s.Whiles.Allocate(WhileStmt{Cond: cond, Body: body})
	return s.new(StmtWhile, span, PayloadID(payload))
}

func (s *Stmts) NewReturn(span source.Span, value ExprID) StmtID {
	return s.new(StmtReturn, span, PayloadID(s.Returns.Allocate(ReturnStmt{Value: value})))
}

func (s *Stmts) NewPrint(span source.Span, value ExprID) StmtID {
	return s.new(StmtPrint, span, PayloadID(s.Exprs.Allocate(ExprStmt{Value: value})))
}

func (s *Stmts) NewExprStmt(span source.Span, value ExprID) StmtID {
	return s.new(StmtExpr, span, PayloadID(s.Exprs.Allocate(ExprStmt{Value: value})))
}

func (s *Stmts) Block(id StmtID) *BlockStmt {
	if st := s.Get(id); st != nil && st.Kind == StmtBlock {
		return s.Blocks.Get(uint32(st.Payload))
	}
	return nil
}

func (s *Stmts) Let(id StmtID) *LetStmt {
	if st := s.Get(id); st != nil && st.Kind == StmtLet {
		return s.Lets.Get(uint32(st.Payload))
	}
	return nil
}

func (s *Stmts) Assign(id StmtID) *AssignStmt {
	if st := s.Get(id); st != nil && st.Kind == StmtAssign {
		return s.Assigns.Get(uint32(st.Payload))
	}
	return nil
}

func (s *Stmts) If(id StmtID) *IfStmt {
	if st := s.Get(id); st != nil && st.Kind == StmtIf {
		return s.Ifs.Get(uint32(st.Payload))
	}
	return nil
}

func (s *Stmts) While(id StmtID) *WhileStmt {
	if st := s.Get(id); st != nil && st.Kind == StmtWhile {
		return s.Whiles.Get(uint32(st.Payload))
	}
	return nil
}

func (s *Stmts) Return(id StmtID) *ReturnStmt {
	if st := s.Get(id); st != nil && st.Kind == StmtReturn {
		return s.Returns.Get(uint32(st.Payload))
	}
	return nil
}

// ExprOf returns the operand of a print or expression statement.
func (s *Stmts) ExprOf(id StmtID) *ExprStmt {
	if st := s.Get(id); st != nil && (st.Kind == StmtPrint || st.Kind == StmtExpr) {
		return s.Exprs.Get(uint32(st.Payload))
	}
	return nil
}
