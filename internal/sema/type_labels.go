package sema

import "lang/internal/types"

func familyLabel(m types.FamilyMask) string {
	switch m {
	case types.FamilyInt:
		return "i32"
	case types.FamilyBool:
		return "bool"
	case types.FamilyValue:
		return "i32 or bool"
	default:
		return "a value"
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
