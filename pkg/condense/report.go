// 19 Oct 2026
// A report on the groups: who is in each, a digest of each sequence,
// and how far apart the groups are.

package condense

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/andrew-torda/matrix"
	"github.com/zeebo/blake3"

	"github.com/andrew-torda/condense/pkg/common"
	"github.com/andrew-torda/condense/pkg/nexus"
)

const digestLen = 16 // hex characters of digest to print

// Digest returns the start of the BLAKE3 hash of a sequence. The same
// sequence gets the same digest in every run, even if its label changes.
func Digest(seq string) string {
	sum := blake3.Sum256([]byte(seq))
	return hex.EncodeToString(sum[:])[:digestLen]
}

// pDist is the fraction of differing sites between two sequences.
// We only look at sites where both have a residue, so gaps and the
// overhang of the longer sequence do not count.
func pDist(a, b string) float32 {
	n := min(len(a), len(b))
	var ndiff, nsite int
	for i := 0; i < n; i++ {
		if a[i] == common.GapChar || b[i] == common.GapChar {
			continue
		}
		nsite++
		if a[i] != b[i] {
			ndiff++
		}
	}
	if nsite == 0 {
		return 0
	}
	return float32(ndiff) / float32(nsite)
}

// Distances fills a square matrix of p-distances between groups,
// in sorted label order.
func Distances(sorted []nexus.SequenceGroup) *matrix.FMatrix2d {
	n := len(sorted)
	dist := matrix.NewFMatrix2d(n, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := pDist(sorted[i].Seq, sorted[j].Seq)
			dist.Mat[i][j] = d
			dist.Mat[j][i] = d
		}
	}
	return dist
}

// WriteReport writes a tab separated summary of the groups.
func WriteReport(w io.Writer, grps *nexus.Groups) error {
	sorted := grps.Sorted()
	var b strings.Builder
	fmt.Fprintf(&b, "# %d taxa in %d groups\n", grps.NTaxa(), grps.Len())
	b.WriteString("label\tntaxa\tlength\tblake3\tspecies\n")
	for _, sg := range sorted {
		fmt.Fprintf(&b, "%s\t%d\t%d\t%s\t%s\n", sg.Label, len(sg.Species),
			len(sg.Seq), Digest(sg.Seq), strings.Join(sg.Species, " "))
	}
	if len(sorted) > 1 {
		dist := Distances(sorted)
		b.WriteString("\n# p-distance\n")
		for _, sg := range sorted {
			b.WriteString("\t" + sg.Label)
		}
		b.WriteByte('\n')
		for i, sg := range sorted {
			b.WriteString(sg.Label)
			for _, d := range dist.Mat[i] {
				fmt.Fprintf(&b, "\t%.4f", d)
			}
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
