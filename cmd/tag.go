package cmd

import (
	"github.com/urfave/cli/v2"
	"github.com/zfh521/lakeFS/constants"
	"github.com/zfh521/lakeFS/lib/console"
	"github.com/zfh521/lakeFS/models"
)

// Print the request body for creating a tag.
func Tag(c *cli.Context) error {
	// Extract args
	if c.NArg() < 2 {
		return console.Error("%w: please specify tag id and ref", constants.ErrMissingArgs)
	}
	id := c.Args().Get(0)
	ref := c.Args().Get(1)

	tag := models.NewTagCreation(id, ref)
	if c.IsSet("force") {
		tag.SetForce(c.Bool("force"))
	}

	console.Verbose("Tag %s -> %s", id, ref)
	return printPayload(c, "TagCreation", tag)
}
