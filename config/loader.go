package config

import (
	"context"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/tapiab/open-space-toolkit-physics/errors"
)

// Load reads the configuration file at path from filesystem.
//
// The function performs the following steps:
//  1. Reads and compiles the CUE file
//  2. Unifies it with the embedded #Config schema and validates the result
//  3. Decodes the concrete value into a Config
//  4. Checks the declared version against SchemaVersion
//
// Read and compile failures carry errors.CodeCUELoadFailed, decode failures
// errors.CodeCUEDecodeFailed, and schema or version violations
// errors.CodeInvalidConfig. Every error has the path in its context.
func Load(ctx context.Context, filesystem billy.Filesystem, path string) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeTimeout, "configuration loading cancelled")
	}

	errCtx := map[string]interface{}{"path": path}

	data, err := util.ReadFile(filesystem, path)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeCUELoadFailed, "failed to read configuration", errCtx)
	}

	value, err := compile(data, path)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeCUELoadFailed, "failed to load configuration", errCtx)
	}

	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig, "configuration does not match schema", errCtx)
	}

	var cfg Config
	if err := value.Decode(&cfg); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeCUEDecodeFailed, "failed to decode configuration", errCtx)
	}

	ok, err := IsCompatible(cfg.Version)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig, "invalid configuration version", errCtx)
	}
	if !ok {
		return nil, errors.NewWithContext(
			errors.CodeInvalidConfig,
			"configuration version is not supported",
			map[string]interface{}{"path": path, "version": cfg.Version, "supported": "^" + SchemaVersion},
		)
	}

	return &cfg, nil
}

// compile builds the CUE value of a configuration file unified with the schema.
func compile(data []byte, path string) (cue.Value, error) {
	cueCtx := cuecontext.New()

	schema := cueCtx.CompileBytes(Schema, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return cue.Value{}, errors.Wrap(err, errors.CodeInternal, "embedded schema does not compile")
	}
	definition := schema.LookupPath(cue.ParsePath(schemaDefinition))
	if err := definition.Err(); err != nil {
		return cue.Value{}, errors.Wrap(err, errors.CodeInternal, "embedded schema has no "+schemaDefinition)
	}

	file := cueCtx.CompileBytes(data, cue.Filename(path))
	if err := file.Err(); err != nil {
		return cue.Value{}, err
	}

	return definition.Unify(file), nil
}
