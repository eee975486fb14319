package rack

import "fmt"

// resolver looks up every port a module needs once, at construction, and
// records the first missing one.
type resolver struct {
	ports Ports
	slug  string
	err   error
}

func (r *resolver) param(id int) Param {
	p := r.ports.Param(id)
	if p == nil {
		r.fail("param", id)
	}
	return p
}

func (r *resolver) input(id int) Input {
	in := r.ports.Input(id)
	if in == nil {
		r.fail("input", id)
	}
	return in
}

func (r *resolver) output(id int) Output {
	out := r.ports.Output(id)
	if out == nil {
		r.fail("output", id)
	}
	return out
}

func (r *resolver) light(id int) Light {
	l := r.ports.Light(id)
	if l == nil {
		r.fail("light", id)
	}
	return l
}

func (r *resolver) fail(kind string, id int) {
	if r.err == nil {
		r.err = fmt.Errorf("rack: %s: missing %s %d", r.slug, kind, id)
	}
}

func newResolver(slug string, ctx Context, ports Ports) (*resolver, error) {
	if err := ctx.Validate(); err != nil {
		return nil, err
	}
	if ports == nil {
		return nil, fmt.Errorf("rack: %s: nil ports", slug)
	}
	return &resolver{ports: ports, slug: slug}, nil
}
