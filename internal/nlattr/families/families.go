// Package families holds the compiled-in schemas of the generic netlink
// families nldump understands out of the box.
package families

import (
	"golang.org/x/sys/unix"

	"nldump/internal/genl"
)

// Builtin returns fresh descriptors of the built-in families. nl80211 has
// no id until it is bound from the kernel, nlctrl or configuration.
func Builtin() []genl.Family {
	return []genl.Family{
		{
			Name:     ctrl,
			ID:       unix.GENL_ID_CTRL,
			Version:  2,
			Commands: ctrlCommands,
			Attrs:    ctrlAttrs,
		},
		{
			Name:     nl80211,
			Version:  1,
			Commands: nl80211Commands,
			Attrs:    nl80211Attrs,
		},
	}
}

// Register adds every built-in family to r.
func Register(r *genl.Registry) {
	for _, f := range Builtin() {
		r.Register(f)
	}
}
