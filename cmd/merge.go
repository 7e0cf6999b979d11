package cmd

import (
	"github.com/urfave/cli/v2"
	"github.com/zfh521/lakeFS/lib/console"
	"github.com/zfh521/lakeFS/models"
)

// Print the request body for merging a source ref into a destination branch.
//
// Only flags given on the command line are set; everything else stays absent
// so the server applies its own defaults.
func Merge(c *cli.Context) error {
	merge := models.NewMerge()

	if c.IsSet("message") {
		merge.SetMessage(c.String("message"))
	}

	if c.IsSet("meta") {
		metadata, err := parseMetadata(c.StringSlice("meta"))
		if err != nil {
			return err
		}
		merge.SetMetadata(metadata)
	}

	if c.IsSet("strategy") {
		strategy := c.String("strategy")
		if strategy != models.MergeStrategyDestWins && strategy != models.MergeStrategySourceWins {
			console.Warning("Unknown merge strategy \"%s\", sending as-is", strategy)
		}
		merge.SetStrategy(strategy)
	}

	if c.IsSet("force") {
		merge.SetForce(c.Bool("force"))
	}

	return printPayload(c, "Merge", merge)
}
