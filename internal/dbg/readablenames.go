package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary comparable keys (vertex indexes, edges) into random
// readable names. It flagrantly leaks memory but generates the names lazily,
// so it's not a problem unless you're actually using it. A name like
// "BraveLlama" is a lot easier to follow through a sweep trace than "#137".

var (
	memo   = make(map[interface{}]string)
	memoMu sync.Mutex
)

func init() {
	// Names are handed out in order of demand, so the same name won't refer to
	// the same thing between runs. Random names make that obvious.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	switch v := reflect.ValueOf(obj); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		if v.IsNil() {
			return "Ø"
		}
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
