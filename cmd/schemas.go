package cmd

import (
	"fmt"

	"github.com/TwiN/go-color"
	"github.com/urfave/cli/v2"
	"github.com/zfh521/lakeFS/models"
)

// Print every known schema with its wire fields.
func PrintSchemas(c *cli.Context) error {
	for _, s := range models.Schemas() {
		fmt.Fprintf(c.App.Writer, color.InBold(color.InCyan("%s"))+" (%s)\n", s.Name, s.Alias)

		for _, f := range s.Fields {
			presence := color.InGray("optional")
			if f.Required {
				presence = color.InYellow("required")
			}
			fmt.Fprintf(c.App.Writer, "  %-20s %s\n", f.Wire, presence)
		}
	}

	return nil
}
