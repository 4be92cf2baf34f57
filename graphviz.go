package fsm

import (
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// ToDOT generates a DOT language string representation of the transition
// table for visualization. The current state is highlighted, end states
// are double-circled and guarded transitions are dashed.
func (m *Machine) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph FSM {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	b.WriteString("  __start [shape=point, style=invis];\n")
	b.WriteString(g.Format("  __start -> \"{}\" [label=\" initial\"];\n\n", m.initial.name))

	grouped := g.NewMap[g.Pair[g.String, g.String], g.Slice[g.String]]()

	for key, response := range m.table {
		edge := g.Pair[g.String, g.String]{Key: key.Value, Value: response.To.name}

		label := g.String(key.Key)
		if response.Guard != nil {
			label += " (guarded)"
		}

		grouped.Entry(edge).
			AndModify(func(s *g.Slice[g.String]) { s.Push(label) }).
			OrInsert(g.SliceOf(label))
	}

	var names g.Slice[g.String]
	for name := range m.states {
		names.Push(name)
	}

	names.SortBy(cmp.Cmp)

	for name := range names.Iter() {
		state := m.states[name]

		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", name))

		switch {
		case state == m.current:
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		case state.end:
			attrs.Push("fillcolor=\"#d3d3d3\"", "shape=doublecircle")
		}

		var hooks g.Slice[g.String]

		if state.onEnter != nil {
			hooks.Push("OnEnter")
		}

		if state.onExit != nil {
			hooks.Push("OnExit")
		}

		if hooks.NotEmpty() {
			attrs.Push(g.Format("tooltip=\"{}\"", hooks.Join("\\n")))
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", name, attrs.Join(", ")))
	}

	b.WriteByte('\n')

	for edge, labels := range grouped.Iter() {
		from, to := edge.Key, edge.Value

		var attrs g.Slice[g.String]
		label := labels.Join("\\n")

		attrs.Push(g.Format("label=\" {} \"", label))

		if label.Contains("(guarded)") {
			attrs.Push("style=dashed", "color=red", "arrowhead=odiamond")
		}

		b.WriteString(g.Format("  \"{}\" -> \"{}\" [{}];\n", from, to, attrs.Join(", ")))
	}

	b.WriteString("}\n")

	return b.String()
}
