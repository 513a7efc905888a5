// Package catalog holds the static tables driving wrapper generation:
// the known tool names, the blacklist, the per-tool safety
// classifications and the architecture table. Tables are plain data
// passed explicitly into the components that consume them, and may be
// extended from a YAML override file.
package catalog

import (
	"strings"

	"github.com/o11c/toolchain-arch-wrappers/pkg/arch"
	"github.com/o11c/toolchain-arch-wrappers/pkg/safety"
)

// GCCFlags names the flag set holding gcc-style multilib flags.
const GCCFlags = "gcc_flags"

// Tables is the full immutable configuration for one generation run.
type Tables struct {
	Tools     []string
	Blacklist map[string]bool
	Safety    map[string]safety.Classification
	Arches    map[string]arch.Info
}

// Blacklisted reports whether the canonical tool name must never
// receive a wrapper.
func (t Tables) Blacklisted(canonicalTool string) bool {
	return t.Blacklist[canonicalTool]
}

var defaultTools = strings.Fields(`
accel-nvptx-none-gcc
addr2line
ar
as
c++filt
cpp
dwp
elfedit
g++
gappletviewer
gc-analyze
gcc
gcc-ar
gcc-nm
gcc-ranlib
gccbrig
gccgo
gcj
gcj-dbtool
gcj-wrapper
gcjh
gcov
gcov-dump
gcov-tool
gdc
gfortran
gij
gjar
gjarsigner
gjavah
gjdoc
gkeytool
gnat
gnatbind
gnatchop
gnatclean
gnatfind
gnatgcc
gnathtml
gnative2ascii
gnatkr
gnatlink
gnatls
gnatmake
gnatname
gnatprep
gnatxref
go
gofmt
gold
gorbd
gprof
grmic
grmid
grmiregistry
gserialver
gtnameserv
jcf-dump
jv-convert
ld
ld.bfd
ld.gold
nm
objcopy
objdump
pkg-config
ranlib
readelf
size
strings
strip
`)

// Default returns the built-in tables. Tools absent from the safety
// table are untested and classified Unknown; that deliberately covers
// "as" and "ld" (flag injection there is known to break builds, and
// linking should go through the compiler driver anyway) as well as
// objcopy, whose -B option makes it arch-sensitive.
func Default() Tables {
	return Tables{
		Tools: defaultTools,
		Blacklist: map[string]bool{
			"accel-nvptx-none-gcc": true,
			"pkg-config":           true,
		},
		Safety: map[string]safety.Classification{
			"addr2line":  safety.NoFlags(),
			"ar":         safety.NoFlags(),
			"c++filt":    safety.NoFlags(),
			"cpp":        safety.NamedFlags(GCCFlags),
			"dwp":        safety.NoFlags(),
			"elfedit":    safety.NoFlags(),
			"g++":        safety.NamedFlags(GCCFlags),
			"gcc":        safety.NamedFlags(GCCFlags),
			"gcc-ar":     safety.NoFlags(),
			"gcc-nm":     safety.NoFlags(),
			"gcc-ranlib": safety.NoFlags(),
			"gdc":        safety.NamedFlags(GCCFlags),
			"gfortran":   safety.NamedFlags(GCCFlags),
			"nm":         safety.NoFlags(),
			"objdump":    safety.NoFlags(),
			"ranlib":     safety.NoFlags(),
			"readelf":    safety.NoFlags(),
			"size":       safety.NoFlags(),
			"strings":    safety.NoFlags(),
			"strip":      safety.NoFlags(),
		},
		Arches: map[string]arch.Info{
			"i386-linux-gnu": {
				Wraps:    "x86_64-linux-gnu",
				FlagSets: map[string]string{GCCFlags: "-m32"},
			},
			"x86_64-linux-gnux32": {
				Wraps:    "x86_64-linux-gnu",
				FlagSets: map[string]string{GCCFlags: "-mx32"},
			},
		},
	}
}
