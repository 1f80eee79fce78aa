package types

import "slices"

var VALID_KINDS = []Kind{KindInt, KindFloat, KindText}

// Kind is the storage type of a record field.
type Kind string

const (
	KindInt   Kind = "Int"
	KindFloat Kind = "Float"
	KindText  Kind = "Text"
)

func (k Kind) IsValid() bool {
	return slices.Contains(VALID_KINDS, k)
}

func (k Kind) IsNumeric() bool {
	return k == KindInt || k == KindFloat
}
