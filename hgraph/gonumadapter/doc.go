// Package gonumadapter — see gonumadapter.go. Exists for callers who already
// build their graphs with gonum (e.g. a k-nearest-neighbor graph assembled
// with gonum/graph/simple) and want to run BPT or QFZ construction over it
// without re-expressing it as an EdgeList by hand.
package gonumadapter
