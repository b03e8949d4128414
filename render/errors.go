package render

import "errors"

// ErrExists indicates SaveFile found the target path already taken.
var ErrExists = errors.New("render: path already exists")
