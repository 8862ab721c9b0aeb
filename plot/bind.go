package plot

import (
	"github.com/gographics/viz/sexpr"
)

// Handler parses one property value and applies it to a caller-supplied
// configuration by side effect.
type Handler func(e *sexpr.Expr) error

// HandlerMap binds recognized property and element names to handlers.
type HandlerMap map[string]Handler

// All composes handlers run in order under one property name, used by
// composite properties like color (which sets both stroke and fill).
// The first failure short-circuits.
func All(handlers ...Handler) Handler {
	return func(e *sexpr.Expr) error {
		for _, h := range handlers {
			if err := h(e); err != nil {
				return err
			}
		}
		return nil
	}
}

// Walk dispatches an ordered expression sequence against a handler map.
//
// An atom names a property whose value is the following sibling; a list
// is an element (or wrapped property) whose head names the handler and
// which is passed whole. In strict mode an unrecognized name is a
// configuration error; in permissive mode it is skipped (a skipped
// property skips its value sibling too — used for top-level figure
// composition, where property and sub-element names share a namespace).
//
// The first handler failure aborts the walk and is returned unchanged:
// no partial application beyond what already ran.
func Walk(items []*sexpr.Expr, m HandlerMap, strict bool) error {
	for i := 0; i < len(items); {
		child := items[i]

		if child.IsList() {
			name := child.Head()
			h, ok := m[name]
			if !ok {
				if strict {
					return configErrorf("unknown property %q", name)
				}
				i++
				continue
			}
			if err := h(child); err != nil {
				return err
			}
			i++
			continue
		}

		name := child.Text()
		h, ok := m[name]
		if !ok {
			if strict {
				return configErrorf("unknown property %q", name)
			}
			i += 2
			continue
		}
		if i+1 >= len(items) {
			return configErrorf("missing value for property %q", name)
		}
		if err := h(items[i+1]); err != nil {
			return err
		}
		i += 2
	}
	return nil
}

// merge copies the entries of src into dst and returns dst, letting
// elements splice the shared scale/limit property table into their own.
func merge(dst HandlerMap, src HandlerMap) HandlerMap {
	for name, h := range src {
		dst[name] = h
	}
	return dst
}
