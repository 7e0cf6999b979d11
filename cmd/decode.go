package cmd

import (
	"errors"

	"github.com/urfave/cli/v2"
	"github.com/zfh521/lakeFS/constants"
	"github.com/zfh521/lakeFS/lib/console"
	"github.com/zfh521/lakeFS/lib/payload"
	"github.com/zfh521/lakeFS/models"
)

// Decode a payload into its model and print the canonical JSON.
// Unknown fields are dropped, absent optional fields stay absent.
func Decode(c *cli.Context) error {
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

	v, err := payload.DecodeYAML(s.Name, data)
	if err != nil {
		if errors.Is(err, models.ErrMissingRequiredField) {
			return console.Error("Invalid %s payload: %v", s.Name, err)
		}
		return err
	}

	return printPayload(c, s.Name, v)
}
