package types

import "lang/internal/ast"

// FamilyMask describes broad categories of types an operator accepts.
type FamilyMask uint8

const (
	FamilyNone FamilyMask = 0
	FamilyInt  FamilyMask = 1 << iota
	FamilyBool
	FamilyUnit
)

// FamilyValue covers everything an equality operator can compare.
const FamilyValue = FamilyInt | FamilyBool

// BinaryFlags annotate special handling for binary operators.
type BinaryFlags uint8

const (
	BinaryFlagNone         BinaryFlags = 0
	BinaryFlagShortCircuit BinaryFlags = 1 << iota
	BinaryFlagSameType     // both operands must have one type
)

// BinarySpec lists operand families and the result for an operation.
type BinarySpec struct {
	Left   FamilyMask
	Right  FamilyMask
	Result Type
	Flags  BinaryFlags
}

// UnarySpec describes operand expectations for unary operators.
type UnarySpec struct {
	Operand FamilyMask
	Result  Type
}

var binarySpecTable = [...]BinarySpec{
	ast.BinAdd: {Left: FamilyInt, Right: FamilyInt, Result: Int},
	ast.BinSub: {Left: FamilyInt, Right: FamilyInt, Result: Int},
	ast.BinMul: {Left: FamilyInt, Right: FamilyInt, Result: Int},
	ast.BinDiv: {Left: FamilyInt, Right: FamilyInt, Result: Int},
	ast.BinEq:  {Left: FamilyValue, Right: FamilyValue, Result: Bool, Flags: BinaryFlagSameType},
	ast.BinNe:  {Left: FamilyValue, Right: FamilyValue, Result: Bool, Flags: BinaryFlagSameType},
	ast.BinLt:  {Left: FamilyInt, Right: FamilyInt, Result: Bool},
	ast.BinGt:  {Left: FamilyInt, Right: FamilyInt, Result: Bool},
	ast.BinLe:  {Left: FamilyInt, Right: FamilyInt, Result: Bool},
	ast.BinGe:  {Left: FamilyInt, Right: FamilyInt, Result: Bool},
	ast.BinAnd: {Left: FamilyBool, Right: FamilyBool, Result: Bool, Flags: BinaryFlagShortCircuit},
	ast.BinOr:  {Left: FamilyBool, Right: FamilyBool, Result: Bool, Flags: BinaryFlagShortCircuit},
}

var unarySpecTable = [...]UnarySpec{
	ast.UnNeg: {Operand: FamilyInt, Result: Int},
	ast.UnNot: {Operand: FamilyBool, Result: Bool},
}

// BinarySpecFor returns the rule for op.
func BinarySpecFor(op ast.BinaryOp) (BinarySpec, bool) {
	if int(op) >= len(binarySpecTable) {
		return BinarySpec{}, false
	}
	return binarySpecTable[op], true
}

// UnarySpecFor returns the rule for op.
func UnarySpecFor(op ast.UnaryOp) (UnarySpec, bool) {
	if int(op) >= len(unarySpecTable) {
		return UnarySpec{}, false
	}
	return unarySpecTable[op], true
}

// Accepts reports whether both operands fit the signature.
func (s BinarySpec) Accepts(left, right Type) bool {
	if left.Family()&s.Left == 0 || right.Family()&s.Right == 0 {
		return false
	}
	if s.Flags&BinaryFlagSameType != 0 && left != right {
		return false
	}
	return true
}

// Accepts reports whether operand fits the signature.
func (s UnarySpec) Accepts(operand Type) bool {
	return operand.Family()&s.Operand != 0
}
