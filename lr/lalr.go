package lr

// MergeLALR performs the same-core state merge described in spec.md §4.4:
// pairs of canonical states whose kernels agree in (production, dot) but
// possibly differ in lookahead are coalesced whenever doing so introduces
// no conflict. The merge is conservative — a pair that would conflict on
// any column is simply left unmerged, never reported as an error, since
// unmerged states still yield a correct (merely larger) table.
func MergeLALR(t *Table) *Table {
	n := t.NumStates
	r := make([]int, n)
	for i := range r {
		r[i] = i
	}
	removed := make([]bool, n)

	for i := 0; i < n; i++ {
		if removed[i] {
			continue
		}
		for j := i + 1; j < n; j++ {
			if removed[j] {
				continue
			}
			if t.coreKeys[i] != t.coreKeys[j] {
				continue
			}
			if !mergeable(t, r, i, j) {
				continue
			}
			mergeRowInto(t, i, j)
			r[j] = r[i]
			removed[j] = true
			for k := j + 1; k < n; k++ {
				if !removed[k] {
					r[k]--
				}
			}
		}
	}

	return compact(t, r)
}

// mergeable reports whether state j's row can be folded into state i's row
// without a conflict on any column, per spec.md §4.4's per-column rules.
// Target state indices are compared through their current r[] image so
// that earlier merges are accounted for.
func mergeable(t *Table, r []int, i, j int) bool {
	for term := 0; term < t.NumTerminals; term++ {
		a, b := t.Action[i][term], t.Action[j][term]
		if a.Kind == ActionError || b.Kind == ActionError {
			continue
		}
		if a.Kind != b.Kind {
			return false
		}
		switch a.Kind {
		case ActionShift:
			if r[a.State] != r[b.State] {
				return false
			}
		case ActionReduce:
			if a.Production != b.Production {
				return false
			}
		}
	}
	for nt := 0; nt < t.NumNonterminals; nt++ {
		a, b := t.Goto[i][nt], t.Goto[j][nt]
		if a == GotoNone || b == GotoNone {
			continue
		}
		if r[a] != r[b] {
			return false
		}
	}
	return true
}

// mergeRowInto copies every non-ERROR action cell and every non-sentinel
// GOTO cell from state j into state i wherever i's cell is still empty.
// Columns where both already agree (checked by mergeable) are left as i's.
func mergeRowInto(t *Table, i, j int) {
	for term := 0; term < t.NumTerminals; term++ {
		if t.Action[i][term].Kind == ActionError && t.Action[j][term].Kind != ActionError {
			t.Action[i][term] = t.Action[j][term]
		}
	}
	for nt := 0; nt < t.NumNonterminals; nt++ {
		if t.Goto[i][nt] == GotoNone && t.Goto[j][nt] != GotoNone {
			t.Goto[i][nt] = t.Goto[j][nt]
		}
	}
}

// compact allocates the final table sized by the post-merge state count and
// copies each original state's (possibly merged-into) row to its final
// position, remapping every SHIFT/GOTO target through r.
func compact(t *Table, r []int) *Table {
	newCount := 0
	for i := 0; i < t.NumStates; i++ {
		if r[i]+1 > newCount {
			newCount = r[i] + 1
		}
	}

	out := &Table{
		NumStates:        newCount,
		NumTerminals:     t.NumTerminals,
		NumNonterminals:  t.NumNonterminals,
		Action:           make([][]Action, newCount),
		Goto:             make([][]int, newCount),
		StartState:       r[t.StartState],
		AcceptProduction: t.AcceptProduction,
	}
	for i := range out.Action {
		out.Action[i] = make([]Action, t.NumTerminals)
		out.Goto[i] = make([]int, t.NumNonterminals)
		for j := range out.Goto[i] {
			out.Goto[i][j] = GotoNone
		}
	}

	written := make([]bool, newCount)
	for i := 0; i < t.NumStates; i++ {
		dst := r[i]
		if written[dst] {
			continue
		}
		written[dst] = true
		for term := 0; term < t.NumTerminals; term++ {
			a := t.Action[i][term]
			if a.Kind == ActionShift {
				a.State = r[a.State]
			}
			out.Action[dst][term] = a
		}
		for nt := 0; nt < t.NumNonterminals; nt++ {
			g := t.Goto[i][nt]
			if g != GotoNone {
				out.Goto[dst][nt] = r[g]
			}
		}
	}
	return out
}
