package schema

import (
	"crypto/sha256"
	"encoding/base32"
	"strconv"
	"strings"
)

// Sum returns a SHA-256 digest of the structure of s: kinds, names, shapes and
// references between nodes, in declaration order. Two schemas that describe
// the same graph have the same Sum regardless of node pointer identity.
func Sum(s *Schema) [sha256.Size]byte {
	ids := make(map[*Node]int)
	var order []*Node

	_ = Walk(s, func(n *Node) error {
		ids[n] = len(order)
		order = append(order, n)

		return nil
	})

	h := sha256.New()
	write := func(parts ...string) {
		for _, p := range parts {
			h.Write([]byte(p))
			h.Write([]byte{0})
		}
	}

	ref := func(n *Node) string {
		if n == nil {
			return "-"
		}

		return "#" + strconv.Itoa(ids[n])
	}

	if s != nil {
		for _, n := range s.Nodes {
			write("root", ref(n))
		}
	}

	for _, n := range order {
		write("node", n.Kind.String(), n.Name)

		for _, f := range n.Fields {
			write("field", f.Name, f.Shape.String(), ref(f.Type))
		}

		for _, v := range n.Variants {
			write("variant", v.Tag)

			for _, f := range v.Fields {
				write("field", f.Name, f.Shape.String(), ref(f.Type))
			}
		}
	}

	var sum [sha256.Size]byte
	copy(sum[:], h.Sum(nil))

	return sum
}

// Fingerprint returns a short stable identifier of s: the first 5 bytes of
// Sum, base32 encoded in lower case (8 characters).
func Fingerprint(s *Schema) string {
	sum := Sum(s)
	return strings.ToLower(base32.StdEncoding.EncodeToString(sum[:5]))
}
