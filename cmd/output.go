package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/zfh521/lakeFS/config"
	"github.com/zfh521/lakeFS/constants"
	"github.com/zfh521/lakeFS/lib/console"
	"github.com/zfh521/lakeFS/lib/payload"
	"github.com/zfh521/lakeFS/lib/validation"
)

// Encode a model, optionally validate it, and print it to the app writer.
func printPayload(c *cli.Context, schema string, v any) error {
	if c.Bool("validate") || config.I.Output.Validate {
		console.Verbose("Validating %s payload...", schema)
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		if err := validation.Validate(schema, raw); err != nil {
			return console.Error("Invalid %s payload: %v", schema, err)
		}
	}

	out, err := payload.Encode(v, config.I.Output.Indent)
	if err != nil {
		return console.Error(constants.ErrMsgInternal)
	}

	fmt.Fprintln(c.App.Writer, string(out))
	return nil
}

// Parse repeated key=value flags into a metadata map.
func parseMetadata(pairs []string) (map[string]string, error) {
	metadata := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidMetadata, pair)
		}
		metadata[k] = v
	}
	return metadata, nil
}

// Read command input from the file named by the argument at `idx`, or from
// the app reader when the argument is absent or `-`.
func readInput(c *cli.Context, idx int) ([]byte, error) {
	path := c.Args().Get(idx)
	if path == "" || path == constants.StdinArg {
		console.Verbose("Reading payload from stdin...")
		return io.ReadAll(c.App.Reader)
	}

	console.Verbose("Reading payload from %s", path)
	return os.ReadFile(path)
}
