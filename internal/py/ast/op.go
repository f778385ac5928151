// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package ast

// BinOpKind is a binary arithmetic or bitwise operator.
type BinOpKind int

// Binary operators.
const (
	Add BinOpKind = iota
	Sub
	Mult
	Div
	Mod
	Pow
	LShift
	RShift
	BitOr
	BitXor
	BitAnd
	FloorDiv
)

var binOpNames = [...]string{
	Add:      "Add",
	Sub:      "Sub",
	Mult:     "Mult",
	Div:      "Div",
	Mod:      "Mod",
	Pow:      "Pow",
	LShift:   "LShift",
	RShift:   "RShift",
	BitOr:    "BitOr",
	BitXor:   "BitXor",
	BitAnd:   "BitAnd",
	FloorDiv: "FloorDiv",
}

func (k BinOpKind) String() string {
	if k < 0 || int(k) >= len(binOpNames) {
		return "BinOpKind(?)"
	}
	return binOpNames[k]
}

// UnaryOpKind is a unary operator.
type UnaryOpKind int

// Unary operators.
const (
	Invert UnaryOpKind = iota
	Not
	UAdd
	USub
)

func (k UnaryOpKind) String() string {
	switch k {
	case Invert:
		return "Invert"
	case Not:
		return "Not"
	case UAdd:
		return "UAdd"
	case USub:
		return "USub"
	}
	return "UnaryOpKind(?)"
}

// CmpOpKind is a comparison operator.
type CmpOpKind int

// Comparison operators.
const (
	Eq CmpOpKind = iota
	NotEq
	Lt
	LtE
	Gt
	GtE
	Is
	IsNot
	In
	NotIn
)

var cmpOpNames = [...]string{
	Eq:    "Eq",
	NotEq: "NotEq",
	Lt:    "Lt",
	LtE:   "LtE",
	Gt:    "Gt",
	GtE:   "GtE",
	Is:    "Is",
	IsNot: "IsNot",
	In:    "In",
	NotIn: "NotIn",
}

func (k CmpOpKind) String() string {
	if k < 0 || int(k) >= len(cmpOpNames) {
		return "CmpOpKind(?)"
	}
	return cmpOpNames[k]
}

// BoolOpKind is a short-circuit boolean operator.
type BoolOpKind int

// Boolean operators.
const (
	And BoolOpKind = iota
	Or
)

func (k BoolOpKind) String() string {
	switch k {
	case And:
		return "And"
	case Or:
		return "Or"
	}
	return "BoolOpKind(?)"
}
