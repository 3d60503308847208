package dialog

import (
	"runtime"
	"strings"
)

// CallerInfo attributes a message to the function that emitted it and,
// when that function is a method, to the receiver's type name. Recomputed
// per message call, never cached.
type CallerInfo struct {
	Function string
	Class    string
}

// noClass is the class column value for plain functions.
const noClass = "None"

// inspectCaller resolves the frame skip levels above this call. The
// receiver type, when present, is encoded in the function symbol, so no
// cooperation from the caller is needed.
func inspectCaller(skip int) CallerInfo {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{Function: "?", Class: noClass}
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return CallerInfo{Function: "?", Class: noClass}
	}
	return parseFuncName(fn.Name())
}

// parseFuncName splits a symbol like
// "github.com/x/y/pkg.(*Surface).Describe" into function "Describe" and
// class "Surface". Plain functions and function literals report no class.
func parseFuncName(symbol string) CallerInfo {
	if i := strings.LastIndexByte(symbol, '/'); i >= 0 {
		symbol = symbol[i+1:]
	}
	parts := strings.Split(symbol, ".")

	ci := CallerInfo{
		Function: parts[len(parts)-1],
		Class:    noClass,
	}
	if len(parts) < 3 || isAnonymous(ci.Function) {
		return ci
	}

	recv := parts[len(parts)-2]
	recv = strings.TrimPrefix(recv, "(*")
	recv = strings.TrimSuffix(recv, ")")
	if i := strings.IndexByte(recv, '['); i >= 0 {
		recv = recv[:i] // drop generic type arguments
	}
	if recv != "" && !isAnonymous(recv) {
		ci.Class = recv
	}
	return ci
}

// isAnonymous reports whether name is a compiler-assigned function
// literal name like "func1".
func isAnonymous(name string) bool {
	rest, ok := strings.CutPrefix(name, "func")
	if !ok || rest == "" {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
