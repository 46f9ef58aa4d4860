package ast

import (
	"fmt"
	"strings"

	"github.com/flume-lang/flume/common"
)

type TypeKind uint8

const (
	_ TypeKind = iota
	TypeVoidKind
	TypeBoolKind
	TypeBitsKind
	TypeVarKind
	TypeHeaderKind
	TypeHeaderUnionKind
	TypeStackKind
	TypeExternKind
	TypeMethodKind
	TypeContainerKind
)

func (k TypeKind) String() string {
	switch k {
	case TypeVoidKind:
		return "void"
	case TypeBoolKind:
		return "bool"
	case TypeBitsKind:
		return "bits"
	case TypeVarKind:
		return "type variable"
	case TypeHeaderKind:
		return "header"
	case TypeHeaderUnionKind:
		return "header union"
	case TypeStackKind:
		return "header stack"
	case TypeExternKind:
		return "extern"
	case TypeMethodKind:
		return "method"
	case TypeContainerKind:
		return "container"
	default:
		panic("unreachable")
	}
}

type typeData interface {
	TypeKind() TypeKind
	String() string
}

// Type is a resolved type as produced by the inference stage. The zero
// value is "no type".
type Type struct {
	data typeData
	span common.Span
}

func NewType[T typeData](data T, span common.Span) Type {
	return Type{data: data, span: span}
}

func (t Type) Data() typeData { return t.data }

func (t Type) Kind() TypeKind { return t.data.TypeKind() }

func (t Type) IsValid() bool { return t.data != nil }

func (t Type) Span() common.Span { return t.span }

func (t Type) String() string {
	if t.data == nil {
		return "<nil>"
	}
	return t.data.String()
}

func (t Type) IsVoid() bool        { return t.IsValid() && t.Kind() == TypeVoidKind }
func (t Type) IsBool() bool        { return t.IsValid() && t.Kind() == TypeBoolKind }
func (t Type) IsBits() bool        { return t.IsValid() && t.Kind() == TypeBitsKind }
func (t Type) IsVar() bool         { return t.IsValid() && t.Kind() == TypeVarKind }
func (t Type) IsHeader() bool      { return t.IsValid() && t.Kind() == TypeHeaderKind }
func (t Type) IsHeaderUnion() bool { return t.IsValid() && t.Kind() == TypeHeaderUnionKind }
func (t Type) IsStack() bool       { return t.IsValid() && t.Kind() == TypeStackKind }
func (t Type) IsExtern() bool      { return t.IsValid() && t.Kind() == TypeExternKind }
func (t Type) IsMethod() bool      { return t.IsValid() && t.Kind() == TypeMethodKind }
func (t Type) IsContainer() bool   { return t.IsValid() && t.Kind() == TypeContainerKind }

func (t Type) Bits() TypeBits {
	if t.Kind() != TypeBitsKind {
		panic("not a bits type")
	}
	return t.data.(TypeBits)
}

func (t Type) Var() TypeVar {
	if t.Kind() != TypeVarKind {
		panic("not a type variable")
	}
	return t.data.(TypeVar)
}

func (t Type) Header() TypeHeader {
	if t.Kind() != TypeHeaderKind {
		panic("not a header type")
	}
	return t.data.(TypeHeader)
}

func (t Type) HeaderUnion() TypeHeaderUnion {
	if t.Kind() != TypeHeaderUnionKind {
		panic("not a header union type")
	}
	return t.data.(TypeHeaderUnion)
}

func (t Type) Stack() TypeStack {
	if t.Kind() != TypeStackKind {
		panic("not a header stack type")
	}
	return t.data.(TypeStack)
}

func (t Type) Extern() *TypeExtern {
	if t.Kind() != TypeExternKind {
		panic("not an extern type")
	}
	return t.data.(*TypeExtern)
}

func (t Type) Method() *TypeMethod {
	if t.Kind() != TypeMethodKind {
		panic("not a method type")
	}
	return t.data.(*TypeMethod)
}

func (t Type) Container() TypeContainer {
	if t.Kind() != TypeContainerKind {
		panic("not a container type")
	}
	return t.data.(TypeContainer)
}

/* TypeVoid */

type TypeVoid struct{}

func (TypeVoid) TypeKind() TypeKind { return TypeVoidKind }
func (TypeVoid) String() string     { return "void" }

func NewVoidType(span common.Span) Type { return NewType(TypeVoid{}, span) }

/* TypeBool */

type TypeBool struct{}

func (TypeBool) TypeKind() TypeKind { return TypeBoolKind }
func (TypeBool) String() string     { return "bool" }

func NewBoolType(span common.Span) Type { return NewType(TypeBool{}, span) }

/* TypeBits */

type TypeBits struct {
	Width  int
	Signed bool
}

func (TypeBits) TypeKind() TypeKind { return TypeBitsKind }

func (t TypeBits) String() string {
	if t.Signed {
		return fmt.Sprintf("int<%d>", t.Width)
	}
	return fmt.Sprintf("bit<%d>", t.Width)
}

func NewBitsType(width int, signed bool, span common.Span) Type {
	return NewType(TypeBits{Width: width, Signed: signed}, span)
}

/* TypeVar */

// TypeVar references a declared type parameter that has not been
// substituted yet.
type TypeVar struct {
	Def *TypeParam
}

func (TypeVar) TypeKind() TypeKind { return TypeVarKind }
func (t TypeVar) String() string   { return t.Def.Name.Raw }

func NewVarType(def *TypeParam) Type {
	return NewType(TypeVar{Def: def}, def.Span())
}

/* TypeHeader */

type TypeHeader struct {
	Def *Header
}

func (TypeHeader) TypeKind() TypeKind { return TypeHeaderKind }
func (t TypeHeader) String() string   { return t.Def.Name.Raw }

/* TypeHeaderUnion */

type TypeHeaderUnion struct {
	Def *HeaderUnion
}

func (TypeHeaderUnion) TypeKind() TypeKind { return TypeHeaderUnionKind }
func (t TypeHeaderUnion) String() string   { return t.Def.Name.Raw }

/* TypeStack */

type TypeStack struct {
	Elem Type
	Size int
}

func (TypeStack) TypeKind() TypeKind { return TypeStackKind }

func (t TypeStack) String() string {
	return fmt.Sprintf("%s[%d]", t.Elem.String(), t.Size)
}

/* TypeExtern */

// TypeExtern is an extern object type. TypeArgs is empty for the declared
// generic form and holds one concrete type per declared type parameter
// for a specialized form.
type TypeExtern struct {
	Def      *Extern
	TypeArgs []Type
}

func (*TypeExtern) TypeKind() TypeKind { return TypeExternKind }

func (t *TypeExtern) String() string {
	if len(t.TypeArgs) == 0 {
		return t.Def.Name.Raw
	}
	args := make([]string, len(t.TypeArgs))
	for i, a := range t.TypeArgs {
		args[i] = a.String()
	}
	return t.Def.Name.Raw + "<" + strings.Join(args, ", ") + ">"
}

/* TypeMethod */

// TypeMethod is the signature of a callable: its type parameters, formal
// parameters and return type. Signatures that must stay identical across
// resolution (apply methods, action types) are shared by pointer.
type TypeMethod struct {
	TypeParams *TypeParams
	Params     *ParamList
	Return     Type
}

func NewMethodType(typeParams *TypeParams, params *ParamList, ret Type) *TypeMethod {
	return &TypeMethod{TypeParams: typeParams, Params: params, Return: ret}
}

func (*TypeMethod) TypeKind() TypeKind { return TypeMethodKind }

func (t *TypeMethod) String() string {
	var sb strings.Builder
	if t.TypeParams.Len() > 0 {
		sb.WriteByte('<')
		for i, tp := range t.TypeParams.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(tp.Name.Raw)
		}
		sb.WriteByte('>')
	}
	sb.WriteByte('(')
	if t.Params != nil {
		for i, p := range t.Params.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.Name.Raw)
			sb.WriteString(": ")
			sb.WriteString(p.Type.String())
		}
	}
	sb.WriteByte(')')
	if t.Return.IsValid() && !t.Return.IsVoid() {
		sb.WriteString(" -> ")
		sb.WriteString(t.Return.String())
	}
	return sb.String()
}

/* TypeContainer */

// TypeContainer is the type of a constructible container: a parser,
// control or package.
type TypeContainer struct {
	Decl Container
}

func (TypeContainer) TypeKind() TypeKind { return TypeContainerKind }
func (t TypeContainer) String() string   { return t.Decl.DeclName().Raw }
