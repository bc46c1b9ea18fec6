package meta

import (
	"sort"
	"strings"

	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
)

// Node is one vertex of the keyword tree: a branch holding children by
// keyword, or a leaf holding a typed value. Parse consumes tokens from
// index onward; Format renders the node back into directive form; Doc
// appends the grammar lines the node accepts.
type Node interface {
	Parse(argv []string, index int, here ldraw.Where) Rc
	Format(local, global bool) string
	Doc(out []string, preamble string) []string
	Pop()

	setPreamble(string)
	setPushed(bool)
	setGlobal(bool)
}

// abstractMeta carries what every node shares: the formatted keyword
// prefix, the active value slot, and the sticky global mark.
type abstractMeta struct {
	preamble string
	pushed   int
	global   bool
}

func (a *abstractMeta) setPreamble(p string) { a.preamble = p }

func (a *abstractMeta) setPushed(local bool) {
	if local {
		a.pushed = 1
	} else {
		a.pushed = 0
	}
}

func (a *abstractMeta) setGlobal(global bool) { a.global = global }

// Pushed reports whether the node's LOCAL slot is active.
func (a *abstractMeta) Pushed() bool { return a.pushed == 1 }

// Global reports whether the node was last assigned with GLOBAL.
func (a *abstractMeta) Global() bool { return a.global }

// fmtPrefix renders the keyword preamble plus the scope keyword, the
// common head of every formatted directive.
func (a *abstractMeta) fmtPrefix(local, global bool) string {
	if local {
		return a.preamble + "LOCAL "
	}
	if global {
		return a.preamble + "GLOBAL "
	}
	return a.preamble
}

// leaf is the two-slot value holder shared by every typed leaf node.
// Slot 0 is the document-wide value, slot 1 the step-local override
// selected while pushed.
type leaf[T any] struct {
	abstractMeta
	value [2]T
	here  [2]ldraw.Where
}

// Value returns the value of the active slot.
func (l *leaf[T]) Value() T { return l.value[l.pushed] }

// SetValue assigns the active slot.
func (l *leaf[T]) SetValue(v T) { l.value[l.pushed] = v }

// Here returns where in the source the active slot was assigned.
func (l *leaf[T]) Here() ldraw.Where { return l.here[l.pushed] }

// Pop deactivates the LOCAL slot, restoring the document-wide value.
func (l *leaf[T]) Pop() { l.pushed = 0 }

// setHere records the assignment location in the active slot.
func (l *leaf[T]) setHere(here ldraw.Where) { l.here[l.pushed] = here }

// BranchMeta routes tokens to children by keyword. Children register in
// declaration order, which fixes the fallback scan order; documentation
// emission sorts keywords instead.
type BranchMeta struct {
	abstractMeta
	list  map[string]Node
	order []string
}

// add registers a child under its keyword and stamps the child's
// format preamble.
func (b *BranchMeta) add(name string, child Node) {
	if b.list == nil {
		b.list = make(map[string]Node)
	}
	if _, dup := b.list[name]; !dup {
		b.order = append(b.order, name)
	}
	b.list[name] = child
	child.setPreamble(b.preamble + name + " ")
}

// Child returns the node registered under keyword, or nil.
func (b *BranchMeta) Child(keyword string) Node {
	return b.list[keyword]
}

// Keywords returns the child keywords in registration order.
func (b *BranchMeta) Keywords() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Parse routes argv[index:] to a child. An exact keyword match may be
// followed by LOCAL or GLOBAL, which sets the child's scope before its
// own parse runs. Without an exact match the children are scanned in
// registration order for a keyword contained in the candidate token,
// which keeps legacy lines with a leading scope keyword or a fused
// keyword routable; the child then parses from the matched token.
func (b *BranchMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	size := len(argv)
	if index < size {
		if child, ok := b.list[argv[index]]; ok {
			offset := 1
			rc := OkRc
			if size-index > 1 {
				switch argv[index+offset] {
				case "LOCAL":
					child.setPushed(true)
					offset++
				case "GLOBAL":
					child.setGlobal(true)
					offset++
				}
				if index+offset >= size {
					rc = FailureRc
				}
			}
			if rc == OkRc {
				return child.Parse(argv, index+offset, here)
			}
		} else if size-index > 1 {
			local := argv[index] == "LOCAL"
			global := argv[index] == "GLOBAL"
			offset := 0
			if local || global {
				offset = 1
			}
			if index+offset < size {
				for _, key := range b.order {
					if strings.Contains(argv[index+offset], key) {
						child := b.list[key]
						child.setPushed(local)
						child.setGlobal(global)
						return child.Parse(argv, index+offset, here)
					}
				}
			}
		}
	}
	return FailureRc
}

// Format returns ""; only leaves render to directive text.
func (b *BranchMeta) Format(_, _ bool) string { return "" }

// Doc appends one grammar line per reachable leaf, children visited in
// sorted keyword order.
func (b *BranchMeta) Doc(out []string, preamble string) []string {
	keys := make([]string, len(b.order))
	copy(keys, b.order)
	sort.Strings(keys)
	for _, key := range keys {
		out = b.list[key].Doc(out, preamble+" "+key)
	}
	return out
}

// Pop restores document-wide values throughout the subtree.
func (b *BranchMeta) Pop() {
	for _, key := range b.order {
		b.list[key].Pop()
	}
}
