package ast

import "github.com/flume-lang/flume/common"

// Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// ExprStmt evaluates an expression for its effect, usually a call.
type ExprStmt struct {
	E Expr
}

func NewExprStmt(e Expr) *ExprStmt { return &ExprStmt{E: e} }

func (s *ExprStmt) Span() common.Span { return s.E.Span() }
func (*ExprStmt) stmtNode()           {}

// AssignStmt assigns RHS to LHS.
type AssignStmt struct {
	LHS Expr
	RHS Expr
}

func NewAssignStmt(lhs, rhs Expr) *AssignStmt { return &AssignStmt{LHS: lhs, RHS: rhs} }

func (s *AssignStmt) Span() common.Span { return common.SpanFrom(s.LHS.Span(), s.RHS.Span()) }
func (*AssignStmt) stmtNode()           {}
