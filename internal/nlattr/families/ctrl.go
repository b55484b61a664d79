package families

import (
	"golang.org/x/sys/unix"

	"nldump/internal/nlattr"
)

const ctrl = "nlctrl"

var ctrlCommands = map[uint8]string{
	unix.CTRL_CMD_UNSPEC:       "UNSPEC",
	unix.CTRL_CMD_NEWFAMILY:    "NEWFAMILY",
	unix.CTRL_CMD_DELFAMILY:    "DELFAMILY",
	unix.CTRL_CMD_GETFAMILY:    "GETFAMILY",
	unix.CTRL_CMD_NEWOPS:       "NEWOPS",
	unix.CTRL_CMD_DELOPS:       "DELOPS",
	unix.CTRL_CMD_GETOPS:       "GETOPS",
	unix.CTRL_CMD_NEWMCAST_GRP: "NEWMCAST_GRP",
	unix.CTRL_CMD_DELMCAST_GRP: "DELMCAST_GRP",
	unix.CTRL_CMD_GETMCAST_GRP: "GETMCAST_GRP",
	unix.CTRL_CMD_GETPOLICY:    "GETPOLICY",
}

var ctrlAttrs = nlattr.Map{
	unix.CTRL_ATTR_FAMILY_ID:   {Name: "FAMILY_ID", Type: nlattr.Uint},
	unix.CTRL_ATTR_FAMILY_NAME: {Name: "FAMILY_NAME", Type: nlattr.StringNul},
	unix.CTRL_ATTR_VERSION:     {Name: "VERSION", Type: nlattr.Uint},
	unix.CTRL_ATTR_HDRSIZE:     {Name: "HDRSIZE", Type: nlattr.Uint},
	unix.CTRL_ATTR_MAXATTR:     {Name: "MAXATTR", Type: nlattr.Uint},
	unix.CTRL_ATTR_OPS: {Name: "OPS", Type: nlattr.Nested, Nested: nlattr.Map{
		nlattr.Wildcard: {Name: "OP", Type: nlattr.Nested, Nested: nlattr.Map{
			unix.CTRL_ATTR_OP_ID:    {Name: "ID", Type: nlattr.Uint},
			unix.CTRL_ATTR_OP_FLAGS: {Name: "FLAGS", Type: nlattr.Uint},
		}},
	}},
	unix.CTRL_ATTR_MCAST_GROUPS: {Name: "MCAST_GROUPS", Type: nlattr.Nested, Nested: nlattr.Map{
		nlattr.Wildcard: {Name: "GRP", Type: nlattr.Nested, Nested: nlattr.Map{
			unix.CTRL_ATTR_MCAST_GRP_NAME: {Name: "NAME", Type: nlattr.StringNul},
			unix.CTRL_ATTR_MCAST_GRP_ID:   {Name: "ID", Type: nlattr.Uint},
		}},
	}},
	unix.CTRL_ATTR_POLICY:    {Name: "POLICY", Type: nlattr.Nested, Verbose: true},
	unix.CTRL_ATTR_OP_POLICY: {Name: "OP_POLICY", Type: nlattr.Nested, Verbose: true},
	unix.CTRL_ATTR_OP:        {Name: "OP", Type: nlattr.Uint},
}
