package cmd

import "github.com/urfave/cli/v2"

// Flags available to every command.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "validate",
			Usage: "Validate payloads against their JSON Schema before printing",
		},
	}
}

// All CLI commands.
func Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:    "merge",
			Usage:   "Print a merge request body",
			Aliases: []string{"m"},
			Action:  Merge,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "message",
					Usage: "Merge commit message",
				},
				&cli.StringSliceFlag{
					Name:  "meta",
					Usage: "Merge commit metadata as key=value (repeatable)",
				},
				&cli.StringFlag{
					Name:  "strategy",
					Usage: "Conflict resolution strategy (dest-wins or source-wins)",
				},
				&cli.BoolFlag{
					Name:  "force",
					Usage: "Bypass safety checks",
				},
			},
		},
		{
			Name:      "tag",
			Usage:     "Print a tag creation request body",
			ArgsUsage: "<id> <ref>",
			Aliases:   []string{"t"},
			Action:    Tag,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "force",
					Usage: "Overwrite an existing tag with the same id",
				},
			},
		},
		{
			Name:      "commit",
			Usage:     "Print a commit creation request body",
			ArgsUsage: "<message>",
			Aliases:   []string{"c"},
			Action:    Commit,
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name:  "meta",
					Usage: "Commit metadata as key=value (repeatable)",
				},
				&cli.Int64Flag{
					Name:  "date",
					Usage: "Override the commit creation date (Unix epoch seconds)",
				},
				&cli.BoolFlag{
					Name:  "allow-empty",
					Usage: "Allow a commit without changes",
				},
				&cli.BoolFlag{
					Name:  "force",
					Usage: "Bypass safety checks",
				},
			},
		},
		{
			Name:      "branch",
			Usage:     "Print a branch creation request body",
			ArgsUsage: "<name> <source>",
			Aliases:   []string{"b"},
			Action:    NewBranch,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "force",
					Usage: "Bypass safety checks",
				},
				&cli.BoolFlag{
					Name:  "hidden",
					Usage: "Hide the branch from default listings",
				},
			},
		},
		{
			Name:      "login-info",
			Usage:     "Print a login request body",
			ArgsUsage: "<access-key-id> <secret-access-key>",
			Action:    LoginInfo,
		},
		{
			Name:      "decode",
			Usage:     "Decode a JSON or YAML payload into a model and print its canonical JSON",
			ArgsUsage: "<schema> [file|-]",
			Aliases:   []string{"d"},
			Action:    Decode,
		},
		{
			Name:      "validate",
			Usage:     "Validate a JSON or YAML payload against a model's JSON Schema",
			ArgsUsage: "<schema> [file|-]",
			Aliases:   []string{"v"},
			Action:    Validate,
		},
		{
			Name:   "schemas",
			Usage:  "List known schemas and their wire fields",
			Action: PrintSchemas,
		},
	}
}
