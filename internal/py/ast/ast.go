// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package ast declares the types used to represent syntax trees of Python
// programs.
//
// The set of node types is closed: every node kind implements an unexported
// marker method, so only this package can add new kinds.
package ast

// Node represents a syntax tree node.
type Node interface {
	node()
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// SliceNode is the subscript of a [Subscript] expression.
type SliceNode interface {
	Node
	sliceNode()
}

// Ctx is the context an expression is evaluated in.
type Ctx int

// Expression contexts.
const (
	Load Ctx = iota
	Store
	Del
	Param
)

func (c Ctx) String() string {
	switch c {
	case Load:
		return "Load"
	case Store:
		return "Store"
	case Del:
		return "Del"
	case Param:
		return "Param"
	}
	return "Ctx(?)"
}

// Module is the root of a parsed file.
type Module struct {
	Body []Stmt
}

// Statements.
type (
	// FunctionDef is a def statement.
	FunctionDef struct {
		Name       string
		Args       *Arguments
		Body       []Stmt
		Decorators []Expr
	}

	// ClassDef is a class statement.
	ClassDef struct {
		Name       string
		Bases      []Expr
		Body       []Stmt
		Decorators []Expr
	}

	Return struct {
		Value Expr // may be nil
	}

	Delete struct {
		Targets []Expr
	}

	// Assign assigns Value to every target in order: a = b = Value.
	Assign struct {
		Targets []Expr
		Value   Expr
	}

	AugAssign struct {
		Target Expr
		Op     BinOpKind
		Value  Expr
	}

	// Print is the legacy print statement. NL is false when the statement
	// ends with a comma and suppresses the trailing newline.
	Print struct {
		Dest   Expr // may be nil
		Values []Expr
		NL     bool
	}

	For struct {
		Target Expr
		Iter   Expr
		Body   []Stmt
		Orelse []Stmt
	}

	While struct {
		Test   Expr
		Body   []Stmt
		Orelse []Stmt
	}

	// If is a conditional. An elif chain is an If whose Orelse holds
	// exactly one If.
	If struct {
		Test   Expr
		Body   []Stmt
		Orelse []Stmt
	}

	With struct {
		ContextExpr  Expr
		OptionalVars Expr // may be nil
		Body         []Stmt
	}

	// Raise is the legacy three-argument raise statement.
	Raise struct {
		Type  Expr // all optional
		Inst  Expr
		Tback Expr
	}

	TryExcept struct {
		Body     []Stmt
		Handlers []*ExceptHandler
		Orelse   []Stmt
	}

	TryFinally struct {
		Body      []Stmt
		Finalbody []Stmt
	}

	Assert struct {
		Test Expr
		Msg  Expr // may be nil
	}

	Import struct {
		Names []*Alias
	}

	// ImportFrom is a from-import. Level counts the leading dots of a
	// relative import.
	ImportFrom struct {
		Module string
		Names  []*Alias
		Level  int
	}

	// LoadStmt is the Starlark load statement. Alias.Name is the symbol in
	// Module, Alias.AsName the local binding if it differs.
	LoadStmt struct {
		Module string
		Names  []*Alias
	}

	Global struct {
		Names []string
	}

	// ExprStmt is an expression evaluated for its side effects.
	ExprStmt struct {
		Value Expr
	}

	Pass     struct{}
	Break    struct{}
	Continue struct{}

	// Noop stands for a statement removed by a tree transformation. It
	// renders nothing.
	Noop struct{}
)

// Expressions.
type (
	// BoolOp is a chain of and/or operations: Values[0] op Values[1] ...
	BoolOp struct {
		Op     BoolOpKind
		Values []Expr
	}

	BinOp struct {
		Left  Expr
		Op    BinOpKind
		Right Expr
	}

	UnaryOp struct {
		Op      UnaryOpKind
		Operand Expr
	}

	Lambda struct {
		Args *Arguments
		Body Expr
	}

	// IfExp is the conditional expression: Body if Test else Orelse.
	IfExp struct {
		Test   Expr
		Body   Expr
		Orelse Expr
	}

	Dict struct {
		Keys   []Expr
		Values []Expr
	}

	Set struct {
		Elts []Expr
	}

	ListComp struct {
		Elt        Expr
		Generators []*Comprehension
	}

	SetComp struct {
		Elt        Expr
		Generators []*Comprehension
	}

	DictComp struct {
		Key        Expr
		Value      Expr
		Generators []*Comprehension
	}

	GeneratorExp struct {
		Elt        Expr
		Generators []*Comprehension
	}

	Yield struct {
		Value Expr // may be nil
	}

	// Compare is a comparison chain: Left Ops[0] Comparators[0] ...
	Compare struct {
		Left        Expr
		Ops         []CmpOpKind
		Comparators []Expr
	}

	Call struct {
		Func     Expr
		Args     []Expr
		Keywords []*Keyword
		Starargs Expr // may be nil
		Kwargs   Expr // may be nil
	}

	// Num is a numeric literal. Value is an int64, a *big.Int or a float64.
	Num struct {
		Value any
	}

	Str struct {
		S string
	}

	Bytes struct {
		S string
	}

	Attribute struct {
		Value Expr
		Attr  string
		Ctx   Ctx
	}

	Subscript struct {
		Value Expr
		Slice SliceNode
		Ctx   Ctx
	}

	Name struct {
		ID  string
		Ctx Ctx
	}

	List struct {
		Elts []Expr
		Ctx  Ctx
	}

	Tuple struct {
		Elts []Expr
		Ctx  Ctx
	}
)

// Subscripts.
type (
	Index struct {
		Value Expr
	}

	Slice struct {
		Lower Expr // all optional
		Upper Expr
		Step  Expr
	}
)

// Other nodes.
type (
	// Alias is a name in an import list: Name as AsName.
	Alias struct {
		Name   string
		AsName string
	}

	// Keyword is a keyword argument of a call: Arg=Value.
	Keyword struct {
		Arg   string
		Value Expr
	}

	// Arguments is the parameter list of a function or lambda.
	//
	// The last len(Defaults) entries of Args have default values.
	// KwDefaults is either empty or parallel to KwOnly, with nil entries
	// for parameters without a default.
	Arguments struct {
		Args       []Expr
		Defaults   []Expr
		Vararg     string
		KwOnly     []Expr
		KwDefaults []Expr
		Kwarg      string
	}

	ExceptHandler struct {
		Type Expr // may be nil
		Name Expr // may be nil
		Body []Stmt
	}

	// Comprehension is one "for Target in Iter if Ifs..." clause.
	Comprehension struct {
		Target Expr
		Iter   Expr
		Ifs    []Expr
	}
)

func (*Module) node() {}

func (*FunctionDef) node() {}
func (*ClassDef) node()    {}
func (*Return) node()      {}
func (*Delete) node()      {}
func (*Assign) node()      {}
func (*AugAssign) node()   {}
func (*Print) node()       {}
func (*For) node()         {}
func (*While) node()       {}
func (*If) node()          {}
func (*With) node()        {}
func (*Raise) node()       {}
func (*TryExcept) node()   {}
func (*TryFinally) node()  {}
func (*Assert) node()      {}
func (*Import) node()      {}
func (*ImportFrom) node()  {}
func (*LoadStmt) node()    {}
func (*Global) node()      {}
func (*ExprStmt) node()    {}
func (*Pass) node()        {}
func (*Break) node()       {}
func (*Continue) node()    {}
func (*Noop) node()        {}

func (*FunctionDef) stmtNode() {}
func (*ClassDef) stmtNode()    {}
func (*Return) stmtNode()      {}
func (*Delete) stmtNode()      {}
func (*Assign) stmtNode()      {}
func (*AugAssign) stmtNode()   {}
func (*Print) stmtNode()       {}
func (*For) stmtNode()         {}
func (*While) stmtNode()       {}
func (*If) stmtNode()          {}
func (*With) stmtNode()        {}
func (*Raise) stmtNode()       {}
func (*TryExcept) stmtNode()   {}
func (*TryFinally) stmtNode()  {}
func (*Assert) stmtNode()      {}
func (*Import) stmtNode()      {}
func (*ImportFrom) stmtNode()  {}
func (*LoadStmt) stmtNode()    {}
func (*Global) stmtNode()      {}
func (*ExprStmt) stmtNode()    {}
func (*Pass) stmtNode()        {}
func (*Break) stmtNode()       {}
func (*Continue) stmtNode()    {}
func (*Noop) stmtNode()        {}

func (*BoolOp) node()       {}
func (*BinOp) node()        {}
func (*UnaryOp) node()      {}
func (*Lambda) node()       {}
func (*IfExp) node()        {}
func (*Dict) node()         {}
func (*Set) node()          {}
func (*ListComp) node()     {}
func (*SetComp) node()      {}
func (*DictComp) node()     {}
func (*GeneratorExp) node() {}
func (*Yield) node()        {}
func (*Compare) node()      {}
func (*Call) node()         {}
func (*Num) node()          {}
func (*Str) node()          {}
func (*Bytes) node()        {}
func (*Attribute) node()    {}
func (*Subscript) node()    {}
func (*Name) node()         {}
func (*List) node()         {}
func (*Tuple) node()        {}

func (*BoolOp) exprNode()       {}
func (*BinOp) exprNode()        {}
func (*UnaryOp) exprNode()      {}
func (*Lambda) exprNode()       {}
func (*IfExp) exprNode()        {}
func (*Dict) exprNode()         {}
func (*Set) exprNode()          {}
func (*ListComp) exprNode()     {}
func (*SetComp) exprNode()      {}
func (*DictComp) exprNode()     {}
func (*GeneratorExp) exprNode() {}
func (*Yield) exprNode()        {}
func (*Compare) exprNode()      {}
func (*Call) exprNode()         {}
func (*Num) exprNode()          {}
func (*Str) exprNode()          {}
func (*Bytes) exprNode()        {}
func (*Attribute) exprNode()    {}
func (*Subscript) exprNode()    {}
func (*Name) exprNode()         {}
func (*List) exprNode()         {}
func (*Tuple) exprNode()        {}

func (*Index) node()      {}
func (*Slice) node()      {}
func (*Index) sliceNode() {}
func (*Slice) sliceNode() {}

func (*Alias) node()         {}
func (*Keyword) node()       {}
func (*Arguments) node()     {}
func (*ExceptHandler) node() {}
func (*Comprehension) node() {}
