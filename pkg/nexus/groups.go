// 19 Oct 2026

package nexus

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/andrew-torda/condense/pkg/labelgen"
)

// SequenceGroup is one distinct sequence and all the taxa that have it.
// Species are in the order they were first seen.
type SequenceGroup struct {
	Label   string
	Species []string
	Seq     string
}

// Groups holds every SequenceGroup from one matrix. Groups are kept in
// the order their labels were generated. Each Groups has its own label
// generator, so labels start again from "A" for every file.
type Groups struct {
	grps    []SequenceGroup
	byLabel map[string]int // label -> index in grps
	gen     labelgen.Gen
	nTaxa   int
}

// NewGroups returns an empty set of groups.
func NewGroups() *Groups {
	return &Groups{byLabel: make(map[string]int)}
}

// Add puts a taxon into the group with the identical sequence, or
// starts a new group. Comparison is exact and case sensitive.
// This is a linear scan, so n taxa in g groups costs n*g. Fine for
// the size of files we see.
func (g *Groups) Add(taxon, seq string) error {
	g.nTaxa++
	for i := range g.grps {
		if g.grps[i].Seq == seq {
			g.grps[i].Species = append(g.grps[i].Species, taxon)
			return nil
		}
	}
	label, err := g.gen.Next()
	if err != nil {
		return err
	}
	g.byLabel[label] = len(g.grps)
	g.grps = append(g.grps, SequenceGroup{Label: label, Species: []string{taxon}, Seq: seq})
	return nil
}

// Len is the number of distinct sequences.
func (g *Groups) Len() int { return len(g.grps) }

// NTaxa is the number of taxa that went in.
func (g *Groups) NTaxa() int { return g.nTaxa }

// Get returns the group with a label.
func (g *Groups) Get(label string) (SequenceGroup, bool) {
	i, ok := g.byLabel[label]
	if !ok {
		return SequenceGroup{}, false
	}
	return g.grps[i], true
}

// InOrder returns groups in the order labels were handed out.
// The slice is shared, so do not change it.
func (g *Groups) InOrder() []SequenceGroup { return g.grps }

// Sorted returns the groups sorted by label as a string, so "AB"
// comes before "B".
func (g *Groups) Sorted() []SequenceGroup {
	s := make([]SequenceGroup, len(g.grps))
	copy(s, g.grps)
	sort.Slice(s, func(i, j int) bool { return s[i].Label < s[j].Label })
	return s
}

// Mapping returns the comment block that goes into the header, like
//
//	[ MAPPING:
//	A -> T1 T2
//	B -> T3
//	]
//
// Every species name is followed by a space, including the last.
func (g *Groups) Mapping() string {
	var b strings.Builder
	b.WriteString("[ MAPPING:\n")
	for _, sg := range g.Sorted() {
		b.WriteString(sg.Label)
		b.WriteString(" -> ")
		for _, sp := range sg.Species {
			b.WriteString(sp)
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	b.WriteString("]\n")
	return b.String()
}

// WriteBody writes the new matrix, one line per group, followed by
// a line with the terminator.
func (g *Groups) WriteBody(w io.Writer) error {
	for _, sg := range g.Sorted() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", sg.Label, sg.Seq); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ";\n")
	return err
}
