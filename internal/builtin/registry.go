// Package builtin implements the Sass builtin function library. A Registry
// is built once with every family declared into it and is read-only
// afterwards, so one registry can serve concurrent evaluations.
package builtin

import (
	"fmt"
	"maps"
	"slices"

	"bennypowers.dev/sasseval/internal/args"
	"bennypowers.dev/sasseval/internal/log"
	"bennypowers.dev/sasseval/internal/value"
)

// Func is the uniform signature of a builtin.
type Func func(a *args.CallArgs, ctx *Context) (value.Value, error)

// Caller gives builtins access to functions defined outside the registry,
// for function-exists(), get-function() and call().
type Caller interface {
	// CallFunction invokes name with full dispatch: builtins, then user
	// functions, then plain CSS output.
	CallFunction(name string, a *args.CallArgs) (value.Value, error)
	// FunctionExists reports whether a user-defined function called name exists.
	FunctionExists(name string) bool
}

// Context is the ambient state a builtin runs with.
type Context struct {
	Registry *Registry
	Printer  value.Printer
	// Caller is optional; without it only builtins are reachable.
	Caller Caller
}

// NewContext returns a context over reg with default printing.
func NewContext(reg *Registry) *Context {
	return &Context{Registry: reg}
}

// Registry maps function names to builtins.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry returns a registry with every builtin family declared.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]Func, 128)}
	declareHSL(r)
	declareRGB(r)
	declareOpacity(r)
	declareOtherColor(r)
	declareString(r)
	declareMath(r)
	declareList(r)
	declareMap(r)
	declareMeta(r)
	log.Debug("Registered %d builtin functions", len(r.funcs))
	return r
}

// declare adds a builtin. Declaring a name twice is a programming error.
func (r *Registry) declare(name string, f Func) {
	if _, exists := r.funcs[name]; exists {
		panic(fmt.Sprintf("builtin %q declared twice", name))
	}
	r.funcs[name] = f
}

// Lookup returns the builtin called name.
func (r *Registry) Lookup(name string) (Func, bool) {
	f, ok := r.funcs[name]
	return f, ok
}

// Has reports whether a builtin called name exists.
func (r *Registry) Has(name string) bool {
	_, ok := r.funcs[name]
	return ok
}

// Names returns every builtin name, sorted.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.funcs))
}
