package condense

import "io"

var MarkAccess = markAccess

// SetOpenInput swaps the input opener and returns a function to put
// the old one back.
func SetOpenInput(f func(string) (io.ReadCloser, error)) (restore func()) {
	old := openInputFn
	openInputFn = f
	return func() { openInputFn = old }
}
