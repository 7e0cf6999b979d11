package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/zfh521/lakeFS/constants"
	"github.com/zfh521/lakeFS/lib/console"
	"github.com/zfh521/lakeFS/lib/payload"
	"github.com/zfh521/lakeFS/lib/validation"
	"github.com/zfh521/lakeFS/models"
)

// Validate a payload against the JSON Schema of a model.
func Validate(c *cli.Context) error {
	schemaName := c.Args().First()
	if schemaName == "" {
		return console.Error("%w: please specify a schema", constants.ErrMissingArgs)
	}

	s, ok := models.Lookup(schemaName)
	if !ok {
		return console.Error(constants.ErrMsgUnknownSchema, schemaName)
	}

	data, err := readInput(c, 1)
	if err != nil {
		return err
	}

	raw, err := payload.ToJSON(data)
	if err != nil {
		return err
	}

	if err := validation.Validate(s.Name, raw); err != nil {
		return console.Error("Invalid %s payload: %v", s.Name, err)
	}

	fmt.Fprintf(c.App.Writer, "%s: valid\n", s.Name)
	return nil
}
