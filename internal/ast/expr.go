package ast

import (
	"lang/internal/source"
)

type ExprKind uint8

const (
	ExprIntLit ExprKind = iota
	ExprBoolLit
	ExprIdent
	ExprUnary
	ExprBinary
	ExprCall
)

func (k ExprKind) String() string {
	switch k {
	case ExprIntLit:
		return "IntLit"
	case ExprBoolLit:
		return "BoolLit"
	case ExprIdent:
		return "Ident"
	case ExprUnary:
		return "Unary"
	case ExprBinary:
		return "Binary"
	case ExprCall:
		return "Call"
	default:
		return "Expr(?)"
	}
}

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

type ExprIntLitData struct {
	Value int32
	// Malformed marks a placeholder for a literal the lexer rejected.
	Malformed bool
}

type ExprBoolLitData struct {
	Value bool
}

type ExprIdentData struct {
	Name source.StringID
}

type ExprUnaryData struct {
	Op      UnaryOp
	Operand ExprID
}

type ExprBinaryData struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

type ExprCallData struct {
	Name     source.StringID
	NameSpan source.Span
	Args     []ExprID
}

type Exprs struct {
	Arena    *Arena[Expr]
	Ints     *Arena[ExprIntLitData]
	Bools    *Arena[ExprBoolLitData]
	Idents   *Arena[ExprIdentData]
	Unaries  *Arena[ExprUnaryData]
	Binaries *Arena[ExprBinaryData]
	Calls    *Arena[ExprCallData]
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Ints:     NewArena[ExprIntLitData](capHint / 4),
		Bools:    NewArena[ExprBoolLitData](capHint / 8),
		Idents:   NewArena[ExprIdentData](capHint / 4),
		Unaries:  NewArena[ExprUnaryData](capHint / 8),
		Binaries: NewArena[ExprBinaryData](capHint / 4),
		Calls:    NewArena[ExprCallData](capHint / 8),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: kind, Span: span, Payload: payload}))
}

func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) NewIntLit(span source.Span, value int32) ExprID {
	return e.new(ExprIntLit, span, PayloadID(e.Ints.Allocate(ExprIntLitData{Value: value})))
}

// NewMalformedIntLit stands in for a rejected numeric literal.
func (e *Exprs) NewMalformedIntLit(span source.Span) ExprID {
	return e.new(ExprIntLit, span, PayloadID(e.Ints.Allocate(ExprIntLitData{Malformed: true})))
}

func (e *Exprs) NewBoolLit(span source.Span, value bool) ExprID {
	return e.new(ExprBoolLit, span, PayloadID(e.Bools.Allocate(ExprBoolLitData{Value: value})))
}

func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	return e.new(ExprIdent, span, PayloadID(e.Idents.Allocate(ExprIdentData{Name: name})))
}

func (e *Exprs) NewUnary(span source.Span, op UnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

func (e *Exprs) NewBinary(span source.Span, op BinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

func (e *Exprs) NewCall(span source.Span, call ExprCallData) ExprID {
	return e.new(ExprCall, span, PayloadID(e.Calls.Allocate(call)))
}

func (e *Exprs) IntLit(id ExprID) (*ExprIntLitData, bool) {
	if ex := e.Get(id); ex != nil && ex.Kind == ExprIntLit {
		return e.Ints.Get(uint32(ex.Payload)), true
	}
	return nil, false
}

func (e *Exprs) BoolLit(id ExprID) (*ExprBoolLitData, bool) {
	if ex := e.Get(id); ex != nil && ex.Kind == ExprBoolLit {
		return e.Bools.Get(uint32(ex.Payload)), true
	}
	return nil, false
}

func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	if ex := e.Get(id); ex != nil && ex.Kind == ExprIdent {
		return e.Idents.Get(uint32(ex.Payload)), true
	}
	return nil, false
}

func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	if ex := e.Get(id); ex != nil && ex.Kind == ExprUnary {
		return e.Unaries.Get(uint32(ex.Payload)), true
	}
	return nil, false
}

func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	if ex := e.Get(id); ex != nil && ex.Kind == ExprBinary {
		return e.Binaries.Get(uint32(ex.Payload)), true
	}
	return nil, false
}

func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	if ex := e.Get(id); ex != nil && ex.Kind == ExprCall {
		return e.Calls.Get(uint32(ex.Payload)), true
	}
	return nil, false
}
