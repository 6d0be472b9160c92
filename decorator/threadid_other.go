//go:build !linux

package decorator

// threadID is not available outside Linux
func threadID() int {
	return 0
}
