package dbg

import "github.com/davecgh/go-spew/spew"

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Deep dump of sweep state for debugging. Map keys are sorted so that dumps of
// the same state compare equal.
func Dump(values ...interface{}) string {
	return dumpConfig.Sdump(values...)
}
