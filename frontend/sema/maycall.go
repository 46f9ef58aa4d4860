package sema

import "github.com/flume-lang/flume/frontend/ast"

// MayCall returns the declarations this extern method may invoke at
// runtime: for an abstract method, the concrete implementation supplied
// by the receiver instance; otherwise the methods declared @synchronous
// with it. This is a direct one-hop relation, not a full call graph.
func (c *ExternMethodCall) MayCall() []ast.Declaration {
	if c.Method.Abstract {
		inst, ok := c.object.(*ast.Instance)
		if !ok {
			return nil
		}
		for _, fn := range inst.Init {
			if fn.Name.Raw == c.Method.Name.Raw {
				return []ast.Declaration{fn}
			}
		}
		return nil
	}
	var out []ast.Declaration
	for _, ref := range c.Method.Synchronous() {
		if peer := c.OriginalExternType.Def.Method(ref.Raw); peer != nil {
			out = append(out, peer)
		}
	}
	return out
}
