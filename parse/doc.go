// Package parse turns formula text into [ast.Node] trees.
//
// [Parse] is the entry point.  The grammar, loosest first:
//
//	equiv   <- implies ('<->' implies)*
//	implies <- xor ('->' xor)*
//	xor     <- or ('XOR' or)*
//	or      <- and ('OR' and)*
//	and     <- not ('AND' not)*
//	not     <- 'NOT' not / atom
//	atom    <- VAR / 'TRUE' / 'FALSE' / '(' equiv ')'
//	         / ('NAND' / 'NOR') '(' equiv ',' equiv ')'
//
// All binary connectives associate to the left.
package parse
