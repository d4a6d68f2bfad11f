package engine

import (
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Conditional is a compiled boolean expression over the live (`db`) and
// previous (`dbp`) variable maps. The environment carries plain values
// only — no functions and no host objects — so an expression can read
// state but never execute anything. Any compile or evaluation failure, and
// any non-boolean result, evaluates to false.
type Conditional struct {
	src  string
	once sync.Once
	prog *vm.Program
	err  error
}

// NewConditional wraps src without compiling it; compilation happens on
// first evaluation and is cached.
func NewConditional(src string) *Conditional {
	return &Conditional{src: src}
}

// Source returns the original expression text.
func (c *Conditional) Source() string { return c.src }

func (c *Conditional) compile() {
	c.prog, c.err = expr.Compile(c.src)
}

// Eval runs the conditional against the two stores. db and dbp appear as
// maps in the environment; True and False are provided as constants so
// page descriptors can use either casing.
func (c *Conditional) Eval(db, dbp *VarStore, log Logger) bool {
	if c == nil || c.src == "" {
		return true
	}
	c.once.Do(c.compile)
	if c.err != nil {
		log.Debug("conditional failed to compile", Field("expr", c.src), Field("err", c.err))
		return false
	}

	env := map[string]any{
		"True":  true,
		"False": false,
	}
	if db != nil {
		env["db"] = db.Env()
	} else {
		env["db"] = map[string]any{}
	}
	if dbp != nil {
		env["dbp"] = dbp.Env()
	} else {
		env["dbp"] = map[string]any{}
	}

	out, err := expr.Run(c.prog, env)
	if err != nil {
		log.Debug("conditional failed to evaluate", Field("expr", c.src), Field("err", err))
		return false
	}
	b, ok := out.(bool)
	if !ok {
		log.Debug("conditional did not produce a boolean", Field("expr", c.src))
		return false
	}
	return b
}
