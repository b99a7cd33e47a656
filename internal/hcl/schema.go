package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// pathBlock is a `path "<direction>" { ... }` block. Its attributes are path
// entries, so they are read with JustAttributes rather than a fixed schema.
type pathBlock struct {
	Direction string   `hcl:"direction,label"`
	Body      hcl.Body `hcl:",remain"`
}

// extBlock is an `ext { label = "ext" }` block.
type extBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// optionBlock is an `option "<name>" { ... }` block.
type optionBlock struct {
	Name    string    `hcl:"name,label"`
	Replace bool      `hcl:"replace,optional"`
	Params  cty.Value `hcl:"params,optional"`
}

// statusBlock is the `status { ... }` block.
type statusBlock struct {
	MainTask *string `hcl:"main_task,optional"`
	Watching *bool   `hcl:"watching,optional"`
}

// fileRoot decodes every top-level block a file may contain.
type fileRoot struct {
	Paths   []*pathBlock   `hcl:"path,block"`
	Ext     []*extBlock    `hcl:"ext,block"`
	Options []*optionBlock `hcl:"option,block"`
	Status  *statusBlock   `hcl:"status,block"`
}
