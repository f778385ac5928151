// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package render

import "go.astrophena.name/pym/internal/py/ast"

// Precedence levels, loosest first. An expression is parenthesized when its
// level is below the one its context requires.
const (
	precTuple  = iota // a, b
	precYield         // yield x
	precLambda        // lambda: x
	precIfExp         // x if c else y
	precOr            // or
	precAnd           // and
	precNot           // not x
	precCmp           // in, not in, is, is not, <, <=, >, >=, !=, ==
	precBitOr         // |
	precBitXor        // ^
	precBitAnd        // &
	precShift         // << >>
	precArith         // + -
	precTerm          // * / // %
	precFactor        // +x -x ~x
	precPower         // **
	precAtom          // names, literals, calls, attributes, subscripts

	// precTest is what most expression slots accept: anything but a bare
	// tuple or yield.
	precTest = precLambda
)

var binOps = map[ast.BinOpKind]string{
	ast.Add:      "+",
	ast.Sub:      "-",
	ast.Mult:     "*",
	ast.Div:      "/",
	ast.Mod:      "%",
	ast.Pow:      "**",
	ast.LShift:   "<<",
	ast.RShift:   ">>",
	ast.BitOr:    "|",
	ast.BitXor:   "^",
	ast.BitAnd:   "&",
	ast.FloorDiv: "//",
}

var binOpPrec = map[ast.BinOpKind]int{
	ast.Add:      precArith,
	ast.Sub:      precArith,
	ast.Mult:     precTerm,
	ast.Div:      precTerm,
	ast.Mod:      precTerm,
	ast.FloorDiv: precTerm,
	ast.Pow:      precPower,
	ast.LShift:   precShift,
	ast.RShift:   precShift,
	ast.BitOr:    precBitOr,
	ast.BitXor:   precBitXor,
	ast.BitAnd:   precBitAnd,
}

var unaryOps = map[ast.UnaryOpKind]string{
	ast.Invert: "~",
	ast.Not:    "not",
	ast.UAdd:   "+",
	ast.USub:   "-",
}

var cmpOps = map[ast.CmpOpKind]string{
	ast.Eq:    "==",
	ast.NotEq: "!=",
	ast.Lt:    "<",
	ast.LtE:   "<=",
	ast.Gt:    ">",
	ast.GtE:   ">=",
	ast.Is:    "is",
	ast.IsNot: "is not",
	ast.In:    "in",
	ast.NotIn: "not in",
}

var boolOps = map[ast.BoolOpKind]string{
	ast.And: "and",
	ast.Or:  "or",
}

// precedence returns the precedence level of e.
func precedence(e ast.Expr) int {
	switch e := e.(type) {
	case *ast.Tuple:
		if e.Ctx == ast.Load || len(e.Elts) <= 1 {
			return precAtom
		}
		return precTuple
	case *ast.Yield:
		return precYield
	case *ast.Lambda:
		return precLambda
	case *ast.IfExp:
		return precIfExp
	case *ast.BoolOp:
		if e.Op == ast.Or {
			return precOr
		}
		return precAnd
	case *ast.UnaryOp:
		if e.Op == ast.Not {
			return precNot
		}
		return precFactor
	case *ast.Compare:
		return precCmp
	case *ast.BinOp:
		if p, ok := binOpPrec[e.Op]; ok {
			return p
		}
	case *ast.Num:
		if isNegative(e.Value) {
			return precFactor
		}
	}
	return precAtom
}
