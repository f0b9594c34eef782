// Package token provides tokenization support for propositional
// formulas.
//
// [Tokenize] is a function for tokenizing bytes.  [Variables] scans
// bytes for the single letter variables referenced by a formula
// without requiring that the input parse.
package token
