// Package saliency — see saliency.go.
package saliency
