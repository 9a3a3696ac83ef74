package table

import (
	"encoding/binary"

	"simpledb/column"
	"simpledb/errs"
)

// Row is the unit value stored by key. Username and Email keep their
// full on-disk width (including the NUL terminator and whatever padding
// follows it) rather than a trimmed Go string, so that Serialize and
// Deserialize are exact inverses of each other down to the byte: a row
// deserialized from some page bytes, then reserialized, reproduces those
// bytes exactly, padding included.
type Row struct {
	ID       uint32
	Username [column.UsernameByteSize]byte
	Email    [column.EmailByteSize]byte
}

// NewRow builds a Row from plain strings, rejecting ones that don't fit.
// The NUL terminator is always written right after the string content;
// bytes between it and the end of the field are zeroed.
func NewRow(id uint32, username, email string) (Row, error) {
	var row Row
	row.ID = id

	if len(username) > column.UsernameMaxLength {
		return Row{}, errs.New(errs.KindStringTooLong, "username too long")
	}
	if len(email) > column.EmailMaxLength {
		return Row{}, errs.New(errs.KindStringTooLong, "email too long")
	}

	copy(row.Username[:], username)
	copy(row.Email[:], email)
	return row, nil
}

// UsernameString trims the on-disk buffer at its first NUL byte.
func (r Row) UsernameString() string { return cString(r.Username[:]) }

// EmailString trims the on-disk buffer at its first NUL byte.
func (r Row) EmailString() string { return cString(r.Email[:]) }

func cString(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

// SerializeRow blits a row to its fixed offsets in dst, which must be
// exactly column.RowSize bytes. No endian conversion is applied to the
// text fields; the id is written little-endian.
func SerializeRow(row Row, dst []byte) {
	_ = dst[column.RowSize-1] // bounds check hint, mirrors the fixed-offset memcpy style
	binary.LittleEndian.PutUint32(dst[0:4], row.ID)
	copy(dst[4:4+column.UsernameByteSize], row.Username[:])
	copy(dst[4+column.UsernameByteSize:column.RowSize], row.Email[:])
}

// DeserializeRow is the inverse of SerializeRow.
func DeserializeRow(src []byte) Row {
	var row Row
	row.ID = binary.LittleEndian.Uint32(src[0:4])
	copy(row.Username[:], src[4:4+column.UsernameByteSize])
	copy(row.Email[:], src[4+column.UsernameByteSize:column.RowSize])
	return row
}
