package schema

// Walk calls fn once for every node reachable from s: top-level nodes in
// declaration order, each followed depth-first by the nested types of its
// fields. Recursive types are visited once. Walk stops at the first error fn
// returns.
func Walk(s *Schema, fn func(n *Node) error) error {
	if s == nil {
		return nil
	}

	w := walker{seen: make(map[*Node]struct{}), fn: fn}
	for _, n := range s.Nodes {
		if err := w.visit(n); err != nil {
			return err
		}
	}

	return nil
}

type walker struct {
	seen map[*Node]struct{}
	fn   func(n *Node) error
}

func (w *walker) visit(n *Node) error {
	if n == nil {
		return nil
	}

	if _, ok := w.seen[n]; ok {
		return nil
	}

	w.seen[n] = struct{}{}

	if err := w.fn(n); err != nil {
		return err
	}

	if err := w.fields(n.Fields); err != nil {
		return err
	}

	for i := range n.Variants {
		if err := w.fields(n.Variants[i].Fields); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) fields(fields []Field) error {
	for _, f := range fields {
		if err := w.visit(f.Type); err != nil {
			return err
		}
	}

	return nil
}
