// Package callgraph flattens resolved call sites into serializable
// one-hop edges for downstream timing and concurrency analyses.
package callgraph

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/flume-lang/flume/frontend/ast"
	"github.com/flume-lang/flume/frontend/sema"
)

// Edge is one static call edge. Kind is the resolved call kind, or
// "may-call" for the expansion of an extern method's MayCall set.
type Edge struct {
	Caller string `msgpack:"caller"`
	Callee string `msgpack:"callee"`
	Kind   string `msgpack:"kind"`
}

const KindMayCall = "may-call"

// Build resolves every call site of the program and emits its direct
// edges. Extern-method edges are expanded with the methods they may
// invoke at runtime.
func Build(prog *ast.Program, decls sema.DeclarationLookup, types sema.TypeStore) ([]Edge, error) {
	var edges []Edge
	for _, d := range prog.Decls {
		caller := d.DeclName().Raw
		for _, call := range ast.CallSites(d) {
			rc, err := sema.ResolveCall(call, decls, types)
			if err != nil {
				return nil, err
			}
			edges = append(edges, Edge{
				Caller: caller,
				Callee: calleeName(rc),
				Kind:   rc.CallKind().String(),
			})
			if emc, ok := rc.(*sema.ExternMethodCall); ok {
				for _, target := range emc.MayCall() {
					edges = append(edges, Edge{
						Caller: emc.Method.Name.Raw,
						Callee: target.DeclName().Raw,
						Kind:   KindMayCall,
					})
				}
			}
		}
	}
	return edges, nil
}

func calleeName(rc sema.ResolvedCall) string {
	switch c := rc.(type) {
	case *sema.ApplyCall:
		return c.ApplyObject.DeclName().Raw + ".apply"
	case *sema.BuiltInCall:
		return c.Name
	case *sema.ExternMethodCall:
		return c.OriginalExternType.Def.Name.Raw + "." + c.Method.Name.Raw
	case *sema.ExternFunctionCall:
		return c.Method.Name.Raw
	case *sema.ActionCall:
		return c.Action.Name.Raw
	case *sema.FunctionCall:
		return c.Function.Name.Raw
	default:
		panic("unreachable")
	}
}

// Encode writes the edge list in msgpack form.
func Encode(w io.Writer, edges []Edge) error {
	return msgpack.NewEncoder(w).Encode(edges)
}

// Decode reads an edge list written by Encode.
func Decode(r io.Reader) ([]Edge, error) {
	var edges []Edge
	if err := msgpack.NewDecoder(r).Decode(&edges); err != nil {
		return nil, err
	}
	return edges, nil
}
