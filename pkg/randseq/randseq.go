// 31 July 2020
// 19 Oct 2026 write nexus matrices with deliberate duplicates

package randseq

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"
)

const nucs = "acgt-"

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed     int64     // random number seed
	Wrtr      io.Writer // where we write to
	Prefix    string    // taxon names are Prefix1, Prefix2, ...
	Ntaxa     int       // number of taxa (rows of the matrix)
	Len       int       // Length of sequences
	Ndistinct int       // number of different sequences to choose from
	NoGap     bool      // Do not put gaps in sequences
	MkErr     bool      // Add a row with a label, but no sequence
}

// Truth is what we know about a file we wrote, so tests can check
// what comes back.
type Truth struct {
	NUsed  int                 // distinct sequences actually used
	Bucket map[string][]string // sequence -> taxa, in order written
}

// getseq returns a random sequence
func getseq(seqlen int, rnd *rand.Rand, letters string) string {
	b := make([]byte, seqlen)
	for i := range b {
		b[i] = letters[rnd.Intn(len(letters))]
	}
	return string(b)
}

// addspace returns a random bit of white space to go between the
// label and the sequence. Half the time it is a single space.
func addspace(rnd *rand.Rand) string {
	if rnd.Intn(2) == 0 {
		return " "
	}
	n := 1 + rnd.Intn(4)
	var b strings.Builder
	for i := 0; i < n; i++ {
		if rnd.Intn(3) == 0 {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

type row struct {
	name, seq string
}

// writerows gets rows and writes them. We start with the header and
// finish with the terminator.
func writerows(rChan <-chan row, args *RandSeqArgs, wg *sync.WaitGroup, errp *error) {
	defer wg.Done()
	w := args.Wrtr
	spacernd := rand.New(rand.NewSource(args.Iseed + 1))
	hdr := "#NEXUS\nbegin data;\n  dimensions ntax=%d nchar=%d;\n  format datatype=dna gap=-;\nmatrix\n"
	_, err := fmt.Fprintf(w, hdr, args.Ntaxa, args.Len)
	for r := range rChan {
		if err != nil {
			continue // drain the channel
		}
		_, err = fmt.Fprint(w, r.name, addspace(spacernd), r.seq, "\n")
	}
	if err == nil && args.MkErr {
		_, err = fmt.Fprintln(w, args.Prefix+"broken")
	}
	if err == nil {
		_, err = io.WriteString(w, ";\nend;\n")
	}
	*errp = err
}

// RandSeqMain writes a random nexus file to an io.Writer.
func RandSeqMain(args *RandSeqArgs) (*Truth, error) {
	if args.Ndistinct < 1 || args.Len < 1 {
		return nil, fmt.Errorf("need at least one distinct sequence of length one, got %d, %d", args.Ndistinct, args.Len)
	}
	letters := nucs
	if args.NoGap {
		letters = nucs[:4]
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	pool := make([]string, args.Ndistinct)
	for i := range pool {
		pool[i] = getseq(args.Len, rnd, letters)
	}
	truth := &Truth{Bucket: make(map[string][]string)}
	var wg sync.WaitGroup
	var err error
	rChan := make(chan row)
	wg.Add(1)
	go writerows(rChan, args, &wg, &err)
	width := len(fmt.Sprint(args.Ntaxa))
	for i := 0; i < args.Ntaxa; i++ {
		s := pool[rnd.Intn(len(pool))]
		name := fmt.Sprintf("%s%0*d", args.Prefix, width, i+1)
		truth.Bucket[s] = append(truth.Bucket[s], name)
		rChan <- row{name, s}
	}
	close(rChan)
	wg.Wait()
	truth.NUsed = len(truth.Bucket)
	return truth, err
}
