// SPDX-License-Identifier: MIT

package cadio

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned by Import and Export for a value of a type
// with no conversion.
var ErrUnsupported = errors.New("cadio: unsupported type")

const (
	opImport    = "Import"
	opExport    = "Export"
	opSolid     = "Solid"
	opTransform = "TransformPoints"
	opApply     = "ApplyMatrix"
	opM44       = "M44FromMatrix"
	opWriteDXF  = "WriteDXF"
)

func cadioErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
