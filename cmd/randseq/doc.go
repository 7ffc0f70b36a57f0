// 31 July 2020

/*
Randseq makes random nexus files for testing condense.
Usage:

	randseq [options] fname ntaxa length

will write a matrix of ntaxa rows, each with a sequence of length
length, to fname. A name of "-" means standard output.

Flags:

	-d ndistinct
		number of different sequences to draw from. Small numbers give
		lots of duplicates.
	-g
		no gaps in the output sequences
	-e
		provoke errors. Add a matrix row with a label, but no sequence.
	-r
		random number seed

White space between labels and sequences varies, since real files
are not tidy.
*/
package main
