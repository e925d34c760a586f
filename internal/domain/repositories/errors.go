package repositories

import "errors"

// ErrDuplicate é retornado quando uma restrição de unicidade é violada
var ErrDuplicate = errors.New("duplicate record")
