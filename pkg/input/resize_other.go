//go:build !unix

package input

import "os"

// notifyResize is a no-op on platforms without a resize signal. The Windows
// console reports resizes through the input stream, which this reader does
// not decode.
func notifyResize(ch chan<- os.Signal) {}
