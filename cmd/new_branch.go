package cmd

import (
	"github.com/urfave/cli/v2"
	"github.com/zfh521/lakeFS/constants"
	"github.com/zfh521/lakeFS/lib/console"
	"github.com/zfh521/lakeFS/models"
)

// Print the request body for creating a branch from a source ref.
func NewBranch(c *cli.Context) error {
	// Get branch name and source from args
	if c.NArg() < 2 {
		return console.Error("%w: please specify branch name and source ref", constants.ErrMissingArgs)
	}

	branch := models.NewBranchCreation(c.Args().Get(0), c.Args().Get(1))

	if c.IsSet("force") {
		branch.SetForce(c.Bool("force"))
	}

	if c.IsSet("hidden") {
		branch.SetHidden(c.Bool("hidden"))
	}

	return printPayload(c, "BranchCreation", branch)
}
