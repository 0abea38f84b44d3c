package codec

import "errors"

// SkipChildren can be returned by a Walk callback to skip the children of
// the current node. It is never returned by Walk itself.
var SkipChildren = errors.New("skip children")

// Node is a type-erased pointer to a value inside a traversal, paired with
// the shape that knows its children.
type Node struct {
	ptr  any
	name string
	walk func(fn func(Node) error) error
}

// NodeOf wraps v so that its children are enumerated by c.
func NodeOf[T any](v *T, c Codec[T]) Node {
	return Node{
		ptr:  v,
		name: c.Name(),
		walk: func(fn func(Node) error) error { return c.Walk(v, fn) },
	}
}

// Value returns the pointer to the underlying value, e.g. *wasm.Limits.
// Assigning through it mutates the traversed tree in place.
func (n Node) Value() any {
	return n.ptr
}

// Type returns the name of the node's codec.
func (n Node) Type() string {
	return n.name
}

// Children calls fn for each direct child of the node.
func (n Node) Children(fn func(Node) error) error {
	return n.walk(fn)
}

// Walk traverses root and all of its descendants depth-first in field,
// variant and element order, calling fn before descending into a node.
// Containers are transparent: a sequence contributes its elements, an
// optional its target. A non-nil error from fn other than SkipChildren
// stops the traversal and is returned unchanged.
func Walk[T any](root *T, c Codec[T], fn func(Node) error) error {
	return c.Nodes(root, func(n Node) error {
		return walkNode(n, fn)
	})
}

func walkNode(n Node, fn func(Node) error) error {
	if err := fn(n); err != nil {
		if err == SkipChildren {
			return nil
		}
		return err
	}
	return n.Children(func(child Node) error {
		return walkNode(child, fn)
	})
}

// Visit calls fn for every node of type U reachable from root, root
// included. The pointer handed to fn aliases the tree; replacing the
// pointed-to value is observable once Visit returns.
func Visit[U, T any](root *T, c Codec[T], fn func(*U) error) error {
	return Walk(root, c, func(n Node) error {
		if p, ok := n.ptr.(*U); ok {
			return fn(p)
		}
		return nil
	})
}

// Children returns the direct child nodes of root. It fails when root is a
// union value that matches none of its cases.
func Children[T any](root *T, c Codec[T]) ([]Node, error) {
	var nodes []Node
	err := c.Walk(root, func(n Node) error {
		nodes = append(nodes, n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return nodes, nil
}
