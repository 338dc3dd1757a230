package rbtree

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// The level-order renderer is a pure consumer of the tree: it reads keys,
// colors, multiplicities and child links, and never mutates anything.

// Dump writes a level-order rendering of the tree to w (for debugging
// purposes). Each tree level occupies one line, every node is printed as
//
//	key (r,mult)
//
// with r/b for red/black; absent children appear as "NULL (b,0)" so the
// position of every node within its level stays readable.
func (t *Tree[T]) Dump(w io.Writer) {
	t.render(w, nil, 0)
}

// DebugString returns the level-order rendering of the tree as a string.
func (t *Tree[T]) DebugString() string {
	var bf bytes.Buffer
	t.Dump(&bf)
	return bf.String()
}

// Print writes the level-order rendering to stdout. If stdout is a terminal,
// red nodes are colorized and overlong levels are cut off at the terminal
// width.
func (t *Tree[T]) Print() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		t.Dump(os.Stdout)
		return
	}
	palette := []*color.Color{
		color.New(color.FgBlue),
		color.New(color.FgRed),
	}
	t.render(os.Stdout, palette, lineWidth())
}

// lineWidth reads the width of the controlling terminal, falling back to a
// 65 en line.
func lineWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 65
	}
	switch {
	case w > 65:
		w -= 10
	case w > 30:
		w -= 5
	case w <= 10:
		w = 10
	}
	T().P("format", "console").Infof("setting line length to %d en", w)
	return w
}

// render walks the tree level by level. A nil palette renders plain
// monochrome text; a limit of 0 renders levels at full length.
func (t *Tree[T]) render(w io.Writer, palette []*color.Color, limit int) {
	queue := []*node[T]{nil}
	if t != nil {
		queue[0] = t.root
	}
	for {
		var next []*node[T]
		written, allAbsent := 0, true
		for _, n := range queue {
			var entry string
			red := false
			if n == nil {
				// keep two pseudo children per absent node so the
				// positions within the next level line up
				next = append(next, nil, nil)
				entry = "NULL (b,0) "
			} else {
				next = append(next, n.left, n.right)
				colorCode := "b"
				if n.red {
					colorCode = "r"
					red = true
				}
				entry = fmt.Sprintf("%v (%s,%d) ", n.key, colorCode, n.mult)
				allAbsent = false
			}
			if limit > 0 && written+len(entry) > limit {
				io.WriteString(w, "…")
				break
			}
			writeEntry(w, entry, red, palette)
			written += len(entry)
		}
		io.WriteString(w, "\n")
		if allAbsent {
			return
		}
		queue = next
	}
}

func writeEntry(w io.Writer, entry string, red bool, palette []*color.Color) {
	if palette == nil {
		io.WriteString(w, entry)
		return
	}
	c := palette[0]
	if red {
		c = palette[1]
	}
	c.Fprint(w, entry)
}
