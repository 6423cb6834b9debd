// Package pmf maps continuous reaction coordinates onto a discrete grid of
// free-energy (or visitation count) values: a potential of mean force.
//
// A Surface owns one tensor.Dense and the per-axis lower bound, bin width and
// upper bound that place it in reaction-coordinate (RC) space. Grid points sit
// at bin centers, lower and upper being the first and last centers:
//
//	internal[i] = int((rc[i] - lower[i] + ε) / width[i])
//	rc[i]       = internal[i]*width[i] + lower[i]
//
// The conversion truncates toward zero, so for rc on the grid a round trip
// never moves rc up and moves it down by less than one width.
// ε (WithTolerance, default 1e-8) absorbs floating-point noise at bin edges.
//
// Two on-disk layouts are supported:
//
//   - NAMD (self-describing): a "# D" header, then D lines
//     "# origin width count periodic", then "rc_1 … rc_D value" rows.
//     ReadNAMD / WriteNAMD / LoadNAMD / SaveNAMD.
//   - Plain: "rc_1 … rc_D value" rows, '#' comments; bounds come from the
//     caller. ReadPlain / LoadPlain.
//
// Periodicity markers in NAMD headers are not interpreted; periodicity is a
// property of the search, not of the surface, and is written back as 0.
package pmf
