// Package libdiff compares formulas and truth tables.
//
// # Usage
//
//	// Where do two formulas disagree?
//	report, err := libdiff.Formulas(oldNode, newNode)
//
//	// Render the textual difference between two tables
//	text, same := libdiff.Tables(oldTable, newTable)
//
// [Formulas] compares semantically, over the union of the two
// formulas' variables.  [Tables] compares renderings line by line.
package libdiff
