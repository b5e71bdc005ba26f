package orion

import "fmt"

// Handle panics if err is not nil. Use it for errors a game can not recover from,
// like a failure to set up the window or the gpu.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		panic(text + ": " + err.Error())
	}
}
