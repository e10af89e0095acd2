// Package coreadapter — see coreadapter.go. NamedGraph exists for callers
// whose vertices have natural names ("sensor-3", "pixel-12-44") rather than
// dense indices; Snapshot bridges such a graph into the index space every
// other morphotree package operates on.
package coreadapter
