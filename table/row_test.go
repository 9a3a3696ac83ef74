package table

import (
	"testing"

	"github.com/stretchr/testify/require"

	"simpledb/column"
	"simpledb/errs"
)

func TestNewRowRejectsOverLongFields(t *testing.T) {
	_, err := NewRow(1, "this username is definitely far too long for the column", "a@b.com")
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.KindStringTooLong))
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	row, err := NewRow(42, "alice", "alice@example.com")
	require.NoError(t, err)

	buf := make([]byte, column.RowSize)
	SerializeRow(row, buf)
	got := DeserializeRow(buf)

	require.Equal(t, row, got)
	require.Equal(t, "alice", got.UsernameString())
	require.Equal(t, "alice@example.com", got.EmailString())
}

func TestSerializeDeserializeByteExact(t *testing.T) {
	row, err := NewRow(7, "bob", "bob@x.com")
	require.NoError(t, err)

	buf := make([]byte, column.RowSize)
	SerializeRow(row, buf)

	roundTripped := DeserializeRow(buf)
	buf2 := make([]byte, column.RowSize)
	SerializeRow(roundTripped, buf2)

	require.Equal(t, buf, buf2)
}
