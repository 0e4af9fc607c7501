package base

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// FlagSet wraps flag.FlagSet with help rendering.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps f. Parse errors are returned rather than exiting.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.Init(f.Name(), flag.ContinueOnError)
	f.Usage = func() {}
	f.SetOutput(io.Discard)
	return &FlagSet{FlagSet: f}
}

// StringSliceVar defines a repeatable flag. Each occurrence may also carry
// a comma-separated list.
func (f *FlagSet) StringSliceVar(p *[]string, name, usage string) {
	*p = nil
	f.Var((*stringSlice)(p), name, usage)
}

// Help renders the flags for inclusion in command help text.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "\n  -%s", fl.Name)
		if fl.DefValue != "" && fl.DefValue != "[]" {
			fmt.Fprintf(&b, "=%s", fl.DefValue)
		}
		fmt.Fprintf(&b, "\n    %s\n", fl.Usage)
	})
	return b.String()
}

type stringSlice []string

func (s *stringSlice) String() string {
	if s == nil {
		return "[]"
	}
	return "[" + strings.Join(*s, ",") + "]"
}

func (s *stringSlice) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*s = append(*s, part)
		}
	}
	return nil
}
