package sema

import "github.com/flume-lang/flume/frontend/ast"

type CallKind uint8

const (
	_ CallKind = iota
	CallApply
	CallBuiltIn
	CallExternMethod
	CallExternFunction
	CallAction
	CallFunction
)

func (k CallKind) String() string {
	switch k {
	case CallApply:
		return "apply"
	case CallBuiltIn:
		return "built-in"
	case CallExternMethod:
		return "extern method"
	case CallExternFunction:
		return "extern function"
	case CallAction:
		return "action"
	case CallFunction:
		return "function"
	default:
		panic("unreachable")
	}
}

// ResolvedCall is the normalized description of one call site. The
// language has no function pointers, so every call expression resolves
// to exactly one of the six kinds above; consumers branch on CallKind and
// read the bindings instead of re-deriving them from syntax.
//
// A ResolvedCall holds non-owning references into the program
// representation and must not outlive it.
type ResolvedCall interface {
	CallKind() CallKind
	// Expr returns the originating call expression.
	Expr() *ast.CallExpr
	// Object returns the declaration of the object the method is applied
	// to; nil for free functions, actions and built-ins.
	Object() ast.Declaration
	// OriginalMethodType is the callee's signature before generic
	// substitution; ActualMethodType is the signature after it.
	OriginalMethodType() *ast.TypeMethod
	ActualMethodType() *ast.TypeMethod
	// Args maps the actual parameter list, one-to-one, to the call's
	// arguments.
	Args() *ParamBindings
	// TypeArgs binds the callee's own type parameters. Total for calls
	// resolved in complete mode; incomplete mode reports its bindings on
	// PartialCall instead.
	TypeArgs() *TypeBindings

	isResolvedCall()
}

type callBase struct {
	expr     *ast.CallExpr
	object   ast.Declaration
	original *ast.TypeMethod
	actual   *ast.TypeMethod
	args     ParamBindings
	typeArgs TypeBindings
}

func (b *callBase) Expr() *ast.CallExpr                 { return b.expr }
func (b *callBase) Object() ast.Declaration             { return b.object }
func (b *callBase) OriginalMethodType() *ast.TypeMethod { return b.original }
func (b *callBase) ActualMethodType() *ast.TypeMethod   { return b.actual }
func (b *callBase) Args() *ParamBindings                { return &b.args }
func (b *callBase) TypeArgs() *TypeBindings             { return &b.typeArgs }
func (b *callBase) isResolvedCall()                     {}

func (b *callBase) bindParameters() error {
	if err := b.args.Populate(b.actual.Params, b.expr.Args); err != nil {
		return icef(ErrUnresolvableCall, b.expr.Span(), "cannot bind arguments: %v", err)
	}
	return nil
}

// ApplyCall is the invocation of the apply entry point of a table,
// parser or control.
type ApplyCall struct {
	callBase
	ApplyObject ast.Apply
}

func (*ApplyCall) CallKind() CallKind { return CallApply }

func (c *ApplyCall) IsTableApply() bool {
	_, ok := c.object.(*ast.Table)
	return ok
}

// BuiltInCall is the invocation of one of the built-in operations on a
// header, header-union or stack expression. There is no declaration;
// the signature is synthesized from the receiver's type.
type BuiltInCall struct {
	callBase
	Name      string
	AppliedTo ast.Expr
}

func (*BuiltInCall) CallKind() CallKind { return CallBuiltIn }

// ExternMethodCall is a method call on an extern object instance.
type ExternMethodCall struct {
	callBase
	Method *ast.Method
	// OriginalExternType is the receiver's extern type in declared form;
	// ActualExternType has the instance's type arguments substituted in.
	OriginalExternType *ast.TypeExtern
	ActualExternType   *ast.TypeExtern
}

func (*ExternMethodCall) CallKind() CallKind { return CallExternMethod }

// ExternFunctionCall is a call of a free extern function.
type ExternFunctionCall struct {
	callBase
	Method *ast.Method
}

func (*ExternFunctionCall) CallKind() CallKind { return CallExternFunction }

// ActionCall is a direct call of an action, including actions referenced
// from a table's actions list.
type ActionCall struct {
	callBase
	Action *ast.Action
}

func (*ActionCall) CallKind() CallKind { return CallAction }

// FunctionCall is a call of a user-defined function.
type FunctionCall struct {
	callBase
	Function *ast.Function
}

func (*FunctionCall) CallKind() CallKind { return CallFunction }

// PartialCall is the result of incomplete-mode resolution, used before
// type inference completes. The inner call's TypeArgs is intentionally
// empty; the possibly-partial bindings live here, where callers cannot
// mistake them for a total binding.
type PartialCall struct {
	Call     ResolvedCall
	TypeArgs PartialTypeBindings
}

// ResolveCall classifies a call expression and materializes its
// parameter and type-argument bindings. Failures indicate an
// earlier-pass bug, never a source-program error.
func ResolveCall(call *ast.CallExpr, decls DeclarationLookup, types TypeStore) (ResolvedCall, error) {
	rc, _, err := resolveCall(call, decls, types, false)
	return rc, err
}

// ResolveCallStmt resolves the call carried by an expression statement.
func ResolveCallStmt(stmt *ast.ExprStmt, decls DeclarationLookup, types TypeStore) (ResolvedCall, error) {
	call, ok := stmt.E.(*ast.CallExpr)
	if !ok {
		return nil, icef(ErrUnresolvableCall, stmt.Span(), "statement is not a call")
	}
	return ResolveCall(call, decls, types)
}

// ResolveCallExprType resolves using the types already recorded on the
// expression nodes, for use while the type store is unavailable.
func ResolveCallExprType(call *ast.CallExpr, decls DeclarationLookup) (ResolvedCall, error) {
	rc, _, err := resolveCall(call, decls, exprTypes{}, false)
	return rc, err
}

// ResolveCallPartial resolves in incomplete mode: type arguments may be
// missing and the resulting bindings may leave type parameters unbound.
func ResolveCallPartial(call *ast.CallExpr, decls DeclarationLookup, types TypeStore) (*PartialCall, error) {
	rc, typeParams, err := resolveCall(call, decls, types, true)
	if err != nil {
		return nil, err
	}
	pc := &PartialCall{Call: rc}
	pc.TypeArgs.bindPrefix(typeParams, call.TypeArgs)
	return pc, nil
}

func resolveCall(call *ast.CallExpr, decls DeclarationLookup, types TypeStore, incomplete bool) (ResolvedCall, *ast.TypeParams, error) {
	switch callee := call.Callee.(type) {
	case *ast.MemberExpr:
		return resolveMemberCall(call, callee, decls, types, incomplete)
	case *ast.PathExpr:
		return resolvePathCall(call, callee, decls, incomplete)
	default:
		return nil, nil, icef(ErrUnresolvableCall, call.Span(),
			"callee is a %s expression", call.Callee.Kind())
	}
}

func resolveMemberCall(call *ast.CallExpr, callee *ast.MemberExpr, decls DeclarationLookup, types TypeStore, incomplete bool) (ResolvedCall, *ast.TypeParams, error) {
	recvType := types.TypeOf(callee.Recv)

	// apply capability first: tables, parsers and controls
	if callee.Member.Raw == "apply" {
		if decl := decls.Lookup(callee.Recv); decl != nil {
			if applyObj, ok := decl.(ast.Apply); ok {
				mt := applyObj.ApplyMethodType()
				c := &ApplyCall{
					callBase:    callBase{expr: call, object: decl, original: mt, actual: mt},
					ApplyObject: applyObj,
				}
				if err := c.bindParameters(); err != nil {
					return nil, nil, err
				}
				return c, nil, nil
			}
		}
	}

	if mt := builtinMethodType(callee.Member.Raw, recvType, call.Span()); mt != nil {
		c := &BuiltInCall{
			callBase:  callBase{expr: call, original: mt, actual: mt},
			Name:      callee.Member.Raw,
			AppliedTo: callee.Recv,
		}
		if err := c.bindParameters(); err != nil {
			return nil, nil, err
		}
		return c, nil, nil
	}

	if recvType.IsExtern() {
		return resolveExternMethodCall(call, callee, recvType.Extern(), decls, types, incomplete)
	}

	return nil, nil, icef(ErrUnresolvableCall, call.Span(),
		"no member %q on receiver of type %s", callee.Member.Raw, recvType)
}

func resolveExternMethodCall(call *ast.CallExpr, callee *ast.MemberExpr, recvExt *ast.TypeExtern, decls DeclarationLookup, types TypeStore, incomplete bool) (ResolvedCall, *ast.TypeParams, error) {
	def := recvExt.Def
	method := def.Method(callee.Member.Raw)
	if method == nil {
		return nil, nil, icef(ErrUnresolvableCall, call.Span(),
			"extern %s has no method %q", def.Name.Raw, callee.Member.Raw)
	}

	// The extern's own type parameters are instantiated from the
	// receiver instance, independently of the method's type parameters.
	object := decls.Lookup(callee.Recv)
	var classBind TypeBindings
	if inst, ok := object.(*ast.Instance); ok {
		ri, err := ResolveInstantiation(inst, decls, types)
		if err != nil {
			return nil, nil, err
		}
		classBind = *ri.TypeArgs()
	} else if len(recvExt.TypeArgs) > 0 {
		if err := classBind.Bind(call, def.TypeParams, recvExt.TypeArgs); err != nil {
			return nil, nil, err
		}
	}

	originalExtern := def.Type()
	actualExtern := SubstituteExtern(originalExtern, &classBind)
	base := callBase{
		expr:     call,
		object:   object,
		original: method.Type,
		actual:   SubstituteMethodType(method.Type, &classBind),
	}
	if !incomplete {
		if err := base.typeArgs.Bind(call, method.Type.TypeParams, call.TypeArgs); err != nil {
			return nil, nil, err
		}
		base.actual = SubstituteMethodType(base.actual, &base.typeArgs)
	}

	c := &ExternMethodCall{
		callBase:           base,
		Method:             method,
		OriginalExternType: originalExtern,
		ActualExternType:   actualExtern,
	}
	if err := c.bindParameters(); err != nil {
		return nil, nil, err
	}
	return c, method.Type.TypeParams, nil
}

func resolvePathCall(call *ast.CallExpr, callee *ast.PathExpr, decls DeclarationLookup, incomplete bool) (ResolvedCall, *ast.TypeParams, error) {
	decl := decls.Lookup(callee)
	if decl == nil {
		return nil, nil, icef(ErrUnresolvableCall, call.Span(),
			"callee %q has no declaration", callee.Name.Raw)
	}
	switch d := decl.(type) {
	case *ast.Method:
		if d.Owner != nil {
			return nil, nil, icef(ErrUnresolvableCall, call.Span(),
				"extern method %q called without a receiver", d.Name.Raw)
		}
		base, err := freeCallableBase(call, d.Type, incomplete)
		if err != nil {
			return nil, nil, err
		}
		return &ExternFunctionCall{callBase: base, Method: d}, d.Type.TypeParams, nil
	case *ast.Function:
		base, err := freeCallableBase(call, d.Type, incomplete)
		if err != nil {
			return nil, nil, err
		}
		return &FunctionCall{callBase: base, Function: d}, d.Type.TypeParams, nil
	case *ast.Action:
		// actions are never generic: original and actual are the same
		// signature object
		mt := d.MethodType()
		c := &ActionCall{
			callBase: callBase{expr: call, original: mt, actual: mt},
			Action:   d,
		}
		if err := c.bindParameters(); err != nil {
			return nil, nil, err
		}
		return c, nil, nil
	default:
		return nil, nil, icef(ErrUnresolvableCall, call.Span(),
			"declaration %q is not callable", decl.DeclName().Raw)
	}
}

func freeCallableBase(call *ast.CallExpr, mt *ast.TypeMethod, incomplete bool) (callBase, error) {
	base := callBase{expr: call, original: mt, actual: mt}
	if !incomplete {
		if err := base.typeArgs.Bind(call, mt.TypeParams, call.TypeArgs); err != nil {
			return base, err
		}
		base.actual = SubstituteMethodType(mt, &base.typeArgs)
	}
	if err := base.bindParameters(); err != nil {
		return base, err
	}
	return base, nil
}
