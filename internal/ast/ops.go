package ast

type BinaryOp uint8

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinEq
	BinNe
	BinLt
	BinGt
	BinLe
	BinGe
	BinAnd
	BinOr
)

var binaryOpText = [...]string{
	BinAdd: "+",
	BinSub: "-",
	BinMul: "*",
	BinDiv: "/",
	BinEq:  "==",
	BinNe:  "!=",
	BinLt:  "<",
	BinGt:  ">",
	BinLe:  "<=",
	BinGe:  ">=",
	BinAnd: "&&",
	BinOr:  "||",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpText) {
		return binaryOpText[op]
	}
	return "?"
}

// IsArithmetic: + - * /
func (op BinaryOp) IsArithmetic() bool { return op <= BinDiv }

// IsEquality: == !=
func (op BinaryOp) IsEquality() bool { return op == BinEq || op == BinNe }

// IsRelational: < > <= >=
func (op BinaryOp) IsRelational() bool { return op >= BinLt && op <= BinGe }

// IsLogical: && ||
func (op BinaryOp) IsLogical() bool { return op == BinAnd || op == BinOr }

type UnaryOp uint8

const (
	UnNeg UnaryOp = iota // -x
	UnNot                // !x
)

func (op UnaryOp) String() string {
	if op == UnNot {
		return "!"
	}
	return "-"
}
