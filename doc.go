/*
Package trie provides a character indexed tree mapping string keys to sets of
values, built for autocompletion.

An Index supports three kinds of lookup: exact (GetAll), prefix (GetAny) and
fuzzy (GetMatches). Fuzzy lookup walks the tree together with an Automaton,
pruning every branch the automaton rejects; the levenshtein sub-package
provides a bounded edit distance automaton.

Index is not synchronised.
*/
package trie
