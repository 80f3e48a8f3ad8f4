package ast

import (
	"lang/internal/source"
)

type ItemKind uint8

const (
	ItemFn ItemKind = iota
)

type Item struct {
	Kind    ItemKind
	Span    source.Span
	Payload PayloadID
}

// FnItem is a function declaration.
type FnItem struct {
	Name       source.StringID
	NameSpan   source.Span
	Params     []FnParamID
	ReturnType TypeRef
	Body       StmtID // StmtBlock
	Span       source.Span
	// Recovered is set when the body needed syntax error recovery or was
	// left unterminated, so statements may be missing from it.
	Recovered bool
}

type FnParam struct {
	Name source.StringID
	Type TypeRef
	Span source.Span
}

type Items struct {
	Arena    *Arena[Item]
	Fns      *Arena[FnItem]
	FnParams *Arena[FnParam]
}

func NewItems(capHint uint) *Items {
	return &Items{
		Arena:    NewArena[Item](capHint),
		Fns:      NewArena[FnItem](capHint),
		FnParams: NewArena[FnParam](capHint * 2),
	}
}

func (i *Items) Get(id ItemID) *Item {
	return i.Arena.Get(uint32(id))
}

// NewFnParam allocates a parameter record.
func (i *Items) NewFnParam(name source.StringID, typ TypeRef, span source.Span) FnParamID {
	return FnParamID(i.FnParams.Allocate(FnParam{Name: name, Type: typ, Span: span}))
}

func (i *Items) FnParam(id FnParamID) *FnParam {
	return i.FnParams.Get(uint32(id))
}

// NewFn allocates a function item together with its payload.
func (i *Items) NewFn(fn FnItem) ItemID {
	payload := PayloadID(i.Fns.Allocate(fn))
	return ItemID(i.Arena.Allocate(Item{Kind: ItemFn, Span: fn.Span, Payload: payload}))
}

func (i *Items) Fn(id ItemID) (*FnItem, bool) {
	item := i.Arena.Get(uint32(id))
	if item == nil || item.Kind != ItemFn {
		return nil, false
	}
	return i.Fns.Get(uint32(item.Payload)), true
}
