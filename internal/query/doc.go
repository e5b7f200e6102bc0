// Package query implements the stateless read operations over a
// collection snapshot: search classification, multi-key sorting,
// filtering, statistics, and the random pick.
//
// Every function takes the snapshot as input and never touches the store;
// callers re-read a fresh snapshot per operation. All orderings use
// explicit tie-breaks so repeated runs over the same data produce
// identical output.
package query
