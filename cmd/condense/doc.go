// 19 Oct 2026

/*
Condense merges identical sequences in a nexus file.

Every distinct sequence in the matrix block gets a short label
(A, B, ... Z, AB, AC, ...) and appears once in the output. A comment
after the #NEXUS line says which taxa went into which label and the
NTAX field is set to the new number of rows.

Usage:

	condense [flags] infile outfile

Either file name may be "-" for standard input or output. Input
compressed with gzip or xz is recognised and decompressed.

The flags are:

	-a, --any-ntax
		Rewrite NTAX= on any header line mentioning ntax, not just
		the dimensions line.
	-c, --config file
		YAML file with settings. Flags given on the command line win.
	-n, --dry-run
		Do all the work, but do not write anything.
	-r, --report file
		Write a tab separated report with the members of each group,
		a digest of each sequence and distances between groups.
	-s, --strict
		Matrix lines without a label and sequence, or a matrix without
		a terminating ";" are errors. Normally they are skipped.
	-v, --verbose
		Debugging output on standard error.

The input format is a header, ending with a line saying "matrix", then
lines of "label sequence", then a line with ";" or "end;". Anything
after that is copied as it is.
*/
package main
