package cmd

import (
	"github.com/urfave/cli/v2"
	"github.com/zfh521/lakeFS/constants"
	"github.com/zfh521/lakeFS/lib/console"
	"github.com/zfh521/lakeFS/models"
)

// Print the request body for committing a branch.
func Commit(c *cli.Context) error {
	if c.NArg() < 1 {
		return console.Error("%w: please specify a commit message", constants.ErrMissingArgs)
	}

	commit := models.NewCommitCreation(c.Args().First())

	if c.IsSet("meta") {
		metadata, err := parseMetadata(c.StringSlice("meta"))
		if err != nil {
			return err
		}
		commit.SetMetadata(metadata)
	}

	if c.IsSet("date") {
		commit.SetDate(c.Int64("date"))
	}

	if c.IsSet("allow-empty") {
		commit.SetAllowEmpty(c.Bool("allow-empty"))
	}

	if c.IsSet("force") {
		commit.SetForce(c.Bool("force"))
	}

	return printPayload(c, "CommitCreation", commit)
}
