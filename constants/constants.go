package constants

import "errors"

// Config
const ConfigDirName = ".lakefs"
const ConfigFileName = "models.yml"
const EnvFileName = ".env"
const EnvPrefix = "LAKEFS_MODELS_"
const DefaultIndent = "  "

// Input
const StdinArg = "-"

// Errors
var ErrUnknownSchema = errors.New("unknown schema")
var ErrMissingArgs = errors.New("missing arguments")
var ErrInvalidMetadata = errors.New("invalid metadata, expected key=value")

// Error messages
const ErrMsgInternal = "An internal error occurred. If the issue persists, please file an issue."
const ErrMsgUnknownSchema = "Unknown schema \"%s\". Use `lakefs-models schemas` to list known schemas."
