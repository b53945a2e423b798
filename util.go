package properties

import "fmt"

func fmtArgs(args ...any) string {
	if len(args) == 0 {
		return ""
	}
	format := args[0].(string)
	if len(args) == 1 {
		return format
	}
	return fmt.Sprintf(format, args[1:]...)
}

func panicIf(cond bool, args ...any) {
	if !cond {
		return
	}
	s := fmtArgs(args...)
	if s == "" {
		s = "condition failed"
	}
	panic(s)
}
