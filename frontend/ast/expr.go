package ast

import "github.com/flume-lang/flume/common"

type ExprKind uint8

const (
	_ ExprKind = iota
	ExprKindPath
	ExprKindMember
	ExprKindCall
	ExprKindConstructorCall
	ExprKindBool
	ExprKindNumber
)

func (k ExprKind) String() string {
	switch k {
	case ExprKindPath:
		return "path"
	case ExprKindMember:
		return "member"
	case ExprKindCall:
		return "call"
	case ExprKindConstructorCall:
		return "constructor call"
	case ExprKindBool:
		return "bool"
	case ExprKindNumber:
		return "number"
	default:
		panic("unreachable")
	}
}

// Expr is implemented by all expression nodes. Nodes are immutable after
// construction except for the resolved-type slot, which the inference
// stage fills in once.
type Expr interface {
	Node
	Kind() ExprKind
	Type() Type
	SetType(Type)
}

type exprNode struct {
	span common.Span
	typ  Type
}

func (n *exprNode) Span() common.Span { return n.span }
func (n *exprNode) Type() Type        { return n.typ }
func (n *exprNode) SetType(t Type)    { n.typ = t }

/* PathExpr */

// PathExpr references a named declaration.
type PathExpr struct {
	exprNode
	Name Ident
}

func NewPathExpr(name Ident) *PathExpr {
	return &PathExpr{exprNode: exprNode{span: name.Span()}, Name: name}
}

func (*PathExpr) Kind() ExprKind { return ExprKindPath }

/* MemberExpr */

// MemberExpr selects a member of a receiver expression, e.g. a method or
// the apply entry point.
type MemberExpr struct {
	exprNode
	Recv   Expr
	Member Ident
}

func NewMemberExpr(recv Expr, member Ident) *MemberExpr {
	return &MemberExpr{
		exprNode: exprNode{span: common.SpanFrom(recv.Span(), member.Span())},
		Recv:     recv,
		Member:   member,
	}
}

func (*MemberExpr) Kind() ExprKind { return ExprKindMember }

/* Argument */

// Argument is an actual argument, optionally named.
type Argument struct {
	Name  *Ident // nil for positional arguments
	Value Expr
}

func NewArgument(value Expr) *Argument {
	return &Argument{Value: value}
}

func NewNamedArgument(name Ident, value Expr) *Argument {
	return &Argument{Name: &name, Value: value}
}

func (a *Argument) Span() common.Span {
	if a.Name != nil {
		return common.SpanFrom(a.Name.Span(), a.Value.Span())
	}
	return a.Value.Span()
}

/* CallExpr */

// CallExpr invokes a method, function or action, with an argument list
// and optional explicit type arguments.
type CallExpr struct {
	exprNode
	Callee   Expr
	TypeArgs []Type
	Args     []*Argument
}

func NewCallExpr(callee Expr, typeArgs []Type, args []*Argument, span common.Span) *CallExpr {
	return &CallExpr{
		exprNode: exprNode{span: span},
		Callee:   callee,
		TypeArgs: typeArgs,
		Args:     args,
	}
}

func (*CallExpr) Kind() ExprKind { return ExprKindCall }

/* ConstructorCallExpr */

// ConstructorCallExpr allocates an extern object or a container with call
// syntax. Constructed carries the written type; the canonical constructed
// type is the one the inference stage records for the expression.
type ConstructorCallExpr struct {
	exprNode
	Constructed Type
	TypeArgs    []Type
	Args        []*Argument
}

func NewConstructorCallExpr(constructed Type, typeArgs []Type, args []*Argument, span common.Span) *ConstructorCallExpr {
	return &ConstructorCallExpr{
		exprNode:    exprNode{span: span},
		Constructed: constructed,
		TypeArgs:    typeArgs,
		Args:        args,
	}
}

func (*ConstructorCallExpr) Kind() ExprKind { return ExprKindConstructorCall }

/* Literals */

type BoolLit struct {
	exprNode
	Value bool
}

func NewBoolLit(value bool, span common.Span) *BoolLit {
	return &BoolLit{exprNode: exprNode{span: span}, Value: value}
}

func (*BoolLit) Kind() ExprKind { return ExprKindBool }

type NumberLit struct {
	exprNode
	Value int64
}

func NewNumberLit(value int64, span common.Span) *NumberLit {
	return &NumberLit{exprNode: exprNode{span: span}, Value: value}
}

func (*NumberLit) Kind() ExprKind { return ExprKindNumber }
