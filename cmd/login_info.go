package cmd

import (
	"github.com/urfave/cli/v2"
	"github.com/zfh521/lakeFS/constants"
	"github.com/zfh521/lakeFS/lib/console"
	"github.com/zfh521/lakeFS/models"
)

// Print the request body for logging in with an access key pair.
func LoginInfo(c *cli.Context) error {
	if c.NArg() < 2 {
		return console.Error("%w: please specify access key id and secret access key", constants.ErrMissingArgs)
	}

	return printPayload(c, "LoginInformation", models.NewLoginInformation(c.Args().Get(0), c.Args().Get(1)))
}
