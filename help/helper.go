package help

import (
	"fmt"
	"os"
)

// Debug gates Dbg output; set once from the -debug flag.
var Debug bool

func Dbg(format string, a ...any) {
	if !Debug {
		return
	}
	fmt.Fprintf(os.Stderr, "[DBG] "+format+"\n", a...)
}
