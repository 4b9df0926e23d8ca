package builtin

import (
	"bennypowers.dev/sasseval/internal/args"
	"bennypowers.dev/sasseval/internal/value"
)

func declareMap(r *Registry) {
	r.declare("map-get", mapGet)
	r.declare("map-merge", mapMerge)
	r.declare("map-remove", mapRemove)
	r.declare("map-keys", mapKeys)
	r.declare("map-values", mapValues)
	r.declare("map-has-key", mapHasKey)
}

func mapGet(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(2); err != nil {
		return nil, err
	}
	m, err := ctx.mapArg(a, 0, "map")
	if err != nil {
		return nil, err
	}
	key, err := a.Arg(1, "key")
	if err != nil {
		return nil, err
	}
	if v, ok := m.Get(key); ok {
		return v, nil
	}
	return value.Nil, nil
}

// mapMerge returns a new map; keys of $map2 overwrite those of $map1 in place.
func mapMerge(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(2); err != nil {
		return nil, err
	}
	m1, err := ctx.mapArg(a, 0, "map1")
	if err != nil {
		return nil, err
	}
	m2, err := ctx.mapArg(a, 1, "map2")
	if err != nil {
		return nil, err
	}
	out := m1.Clone()
	out.Merge(m2)
	return out, nil
}

func mapRemove(a *args.CallArgs, ctx *Context) (value.Value, error) {
	m, err := ctx.mapArg(a, 0, "map")
	if err != nil {
		return nil, err
	}
	keys, err := a.Rest()
	if err != nil {
		return nil, err
	}
	out := m.Clone()
	for _, k := range keys.Elems {
		out.Remove(k)
	}
	return out, nil
}

func mapKeys(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	m, err := ctx.mapArg(a, 0, "map")
	if err != nil {
		return nil, err
	}
	return value.NewList(value.Comma, m.Keys()...), nil
}

func mapValues(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	m, err := ctx.mapArg(a, 0, "map")
	if err != nil {
		return nil, err
	}
	return value.NewList(value.Comma, m.Values()...), nil
}

func mapHasKey(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(2); err != nil {
		return nil, err
	}
	m, err := ctx.mapArg(a, 0, "map")
	if err != nil {
		return nil, err
	}
	key, err := a.Arg(1, "key")
	if err != nil {
		return nil, err
	}
	return value.FromBool(m.Has(key)), nil
}
