// Package qfz — see qfz.go.
package qfz
