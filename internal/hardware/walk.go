package hardware

// Walk visits n and every descendant in document order. The visit
// function returns false to stop the traversal early.
func (n *Node) Walk(visit func(*Node) bool) {
	n.walk(visit)
}

func (n *Node) walk(visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, child := range n.children {
		if !child.walk(visit) {
			return false
		}
	}
	return true
}

// FindClass returns every node of the given class under root, root
// included, in document order.
func FindClass(root *Node, class Class) []*Node {
	var out []*Node
	root.Walk(func(n *Node) bool {
		if n.class == class {
			out = append(out, n)
		}
		return true
	})
	return out
}

// FindAttribute returns every node under root whose raw mapping contains
// the named attribute.
func FindAttribute(root *Node, name string) []*Node {
	var out []*Node
	root.Walk(func(n *Node) bool {
		if _, ok := n.raw[name]; ok {
			out = append(out, n)
		}
		return true
	})
	return out
}

// FindAttributeValue returns every node under root carrying the named
// attribute with exactly the given scalar value.
func FindAttributeValue(root *Node, name string, value any) []*Node {
	var out []*Node
	root.Walk(func(n *Node) bool {
		if v, ok := n.raw[name]; ok && isScalar(v) && v == value {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Count returns the number of nodes in the tree rooted at n.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node) bool {
		total++
		return true
	})
	return total
}
