package calc

import (
	"github.com/pkg/errors"
)

// scope is one link of a chain of variable bindings. Extending a scope never
// modifies it, so sibling expressions can't see each other's bindings. The
// nil scope is the empty one.
type scope struct {
	p *scope

	name string
	v    int64
}

func (st *scope) With(name string, value int64) *scope {
	return &scope{
		p:    st,
		name: name,
		v:    value,
	}
}

func (st *scope) Get(name string) (int64, error) {
	for s := st; s != nil; s = s.p {
		if s.name == name {
			return s.v, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownVariable, "lookup %q", name)
}
