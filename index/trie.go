package index

// trieWidth is the branching factor of the symbol trie, one slot per
// lowercase SAX letter.
const trieWidth = 'z' - 'a' + 1

// trie groups window start positions by SAX word. All words in one
// index have the same length, so positions live only at the node of a
// word's final symbol.
type trie struct {
	root *trieNode
	size int // number of distinct words
}

type trieNode struct {
	children  [trieWidth]*trieNode
	positions []int
}

func newTrie() *trie {
	return &trie{root: &trieNode{}}
}

// insert records pos under word.
func (t *trie) insert(word string, pos int) {
	node := t.root

	for i := 0; i < len(word); i++ {
		c := word[i] - 'a'
		if node.children[c] == nil {
			node.children[c] = &trieNode{}
		}

		node = node.children[c]
	}

	node.positions = append(node.positions, pos)
	if len(node.positions) == 1 {
		t.size++
	}
}

// lookup returns the positions recorded under word, in insertion
// order, or nil if the word was never inserted.
func (t *trie) lookup(word string) []int {
	node := t.root

	for i := 0; i < len(word); i++ {
		node = node.children[word[i]-'a']
		if node == nil {
			return nil
		}
	}

	return node.positions
}

// groups returns the position list of every distinct word, in
// lexicographic word order.
func (t *trie) groups() [][]int {
	out := make([][]int, 0, t.size)

	var walk func(node *trieNode)
	walk = func(node *trieNode) {
		if node.positions != nil {
			out = append(out, node.positions)
		}

		for _, child := range node.children {
			if child != nil {
				walk(child)
			}
		}
	}

	walk(t.root)

	return out
}
