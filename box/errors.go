// SPDX-License-Identifier: MIT

package box

import "errors"

// ErrEmpty is returned by FromPoints when no points are given.
var ErrEmpty = errors.New("box: no points")
