package input

// Help maps a key sequence identifier string to the explanation of the action
// it triggers.
type Help = map[string]string

// GetHelp returns the help for all key sequences in this tree.
func (t *Tree) GetHelp() Help {
	return t.Root.GetHelp()
}

// GetHelp returns the help for all key sequences below this node.
func (n *Node) GetHelp() Help {
	result := Help{}

	if n.Action != nil {
		result[""] = n.Action.Explain()
	} else {
		for k, c := range n.Children {
			for partialCombo, action := range c.GetHelp() {
				result[ToConfigIdentifierString(k)+partialCombo] = action
			}
		}
	}

	return result
}
