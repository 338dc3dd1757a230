package rbtree

import (
	"cmp"
	"fmt"
	"io"
)

type nodeids[T cmp.Ordered] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T cmp.Ordered]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(n *node[T]) int {
	return ids.idTable[n]
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes). Node fills reflect the red-black coloring,
// labels carry key and multiplicity, absent children show as small black
// leaf circles.
func Tree2Dot[T cmp.Ordered](t *Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	var walk []*node[T]
	if t != nil && t.root != nil {
		walk = append(walk, t.root)
	}
	for len(walk) > 0 {
		n := walk[len(walk)-1]
		walk = walk[:len(walk)-1]
		ID := ids.alloc(n)
		label := fmt.Sprintf("%v", n.key)
		if n.mult > 1 {
			label = fmt.Sprintf("%v ×%d", n.key, n.mult)
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n))
		for side, child := range []*node[T]{n.left, n.right} {
			if child == nil {
				nilid := ID + (side+1)*10000
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			walk = append(walk, child)
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles[T cmp.Ordered](n *node[T]) string {
	s := ",style=filled,shape=circle"
	if n.red {
		s += ",fillcolor=\"#E05050\",fontcolor=white"
	} else {
		s += ",fillcolor=\"#404040\",fontcolor=white"
	}
	return s
}
