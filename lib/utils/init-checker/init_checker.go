package initchecker

import "fmt"

// CheckInit panics when one of the named dependencies is still nil.
// Arguments are name/value pairs.
func CheckInit(pairs ...any) {
	if len(pairs)%2 != 0 {
		panic("CheckInit: odd number of arguments")
	}
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("CheckInit: argument %d must be a dependency name", i))
		}
		if pairs[i+1] == nil {
			panic(fmt.Sprintf("%s must be initialized before use", name))
		}
	}
}
