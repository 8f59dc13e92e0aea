package lint

import "strings"

// builtinNames is the static allow-list for the undefined-variable check:
// Python builtins plus conventional data-science aliases. It is a fixed
// constant, never derived from the document.
var builtinNames = map[string]struct{}{
	"print": {}, "len": {}, "range": {}, "str": {}, "int": {}, "float": {},
	"bool": {}, "list": {}, "dict": {}, "set": {}, "tuple": {}, "abs": {},
	"all": {}, "any": {}, "bin": {}, "callable": {}, "chr": {}, "dir": {},
	"enumerate": {}, "eval": {}, "exec": {}, "filter": {}, "format": {},
	"getattr": {}, "globals": {}, "hasattr": {}, "hash": {}, "help": {},
	"hex": {}, "id": {}, "input": {}, "isinstance": {}, "issubclass": {},
	"iter": {}, "locals": {}, "map": {}, "max": {}, "min": {}, "next": {},
	"oct": {}, "open": {}, "ord": {}, "pow": {}, "repr": {}, "reversed": {},
	"round": {}, "setattr": {}, "sorted": {}, "sum": {}, "type": {},
	"vars": {}, "zip": {}, "True": {}, "False": {}, "None": {},
	"Exception": {}, "ValueError": {}, "TypeError": {}, "KeyError": {},

	// Common data-science aliases injected by notebook runtimes.
	"pd": {}, "np": {}, "plt": {}, "sns": {},
}

// isBuiltin reports whether a name is on the allow-list. Dunder names are
// always allowed.
func isBuiltin(name string) bool {
	if strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__") {
		return true
	}
	_, ok := builtinNames[name]
	return ok
}
