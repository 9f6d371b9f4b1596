package wbb

// Text collects inline text of the node and all of its descendants in document order.
func Text(node *Node) (out string) {
	out = node.Text

	for _, child := range node.Children {
		out += Text(child)
	}

	return
}

// CountNodes returns number of nodes in the tree, the root included.
func CountNodes(node *Node) int {
	count := 1
	for _, child := range node.Children {
		count += CountNodes(child)
	}

	return count
}
