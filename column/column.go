// Package column describes the one fixed row schema this database knows
// about: id (uint32), username (text, 32 bytes of content) and email
// (text, 255 bytes of content). Multi-table, multi-schema support is out
// of scope, so unlike a general-purpose schema builder this package is
// just the flat constants the row codec and the `.constants` command
// need: field widths and the total on-disk row size.
package column

const (
	IDSize = 4

	UsernameMaxLength = 32
	UsernameByteSize  = UsernameMaxLength + 1 // + NUL terminator

	EmailMaxLength = 255
	EmailByteSize  = EmailMaxLength + 1 // + NUL terminator

	// RowSize is the on-disk size of one serialized row: 4 + 33 + 256.
	RowSize = IDSize + UsernameByteSize + EmailByteSize
)
