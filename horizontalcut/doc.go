// Package horizontalcut — see horizontalcut.go.
package horizontalcut
