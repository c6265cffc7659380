/*
Package prefixtree provides a prefix tree (trie) holding a set of strings.
Strings are indexed one rune per level, which makes prefix lookups
independent of the number of strings stored. Case folding and accent
normalisation can be switched on for the whole tree.
*/
package prefixtree
