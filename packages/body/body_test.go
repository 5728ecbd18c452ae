package body

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payload.bin")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestValue_ZeroIsEmptyInMemory(t *testing.T) {
	var v Value
	assert.True(t, v.IsInMemory())
	n, err := v.ContentLength()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestValue_ContentLength(t *testing.T) {
	mem := InMemory([]byte("hello"))
	n, err := mem.ContentLength()
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	file := AtLocation(writeFile(t, bytes.Repeat([]byte("x"), 1234)))
	n, err = file.ContentLength()
	require.NoError(t, err)
	assert.Equal(t, int64(1234), n)
	assert.Equal(t, KindAtLocation, file.Kind())
	assert.Nil(t, file.Bytes())
}

func TestValue_ContentLength_MissingFile(t *testing.T) {
	v := AtLocation(filepath.Join(t.TempDir(), "missing"))
	_, err := v.ContentLength()
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValue_Materialize(t *testing.T) {
	data := []byte("0123456789")

	testcases := []struct {
		desc    string
		value   Value
		max     int64
		wantErr error
	}{
		{desc: "in memory within limit", value: InMemory(data), max: 10},
		{desc: "in memory over limit", value: InMemory(data), max: 9, wantErr: ErrTooLarge},
		{desc: "file within limit", value: AtLocation(writeFile(t, data)), max: 10},
		{desc: "file over limit", value: AtLocation(writeFile(t, data)), max: 3, wantErr: ErrTooLarge},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := tc.value.Materialize(tc.max)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, data, got)
		})
	}
}

func TestValue_Stream(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefg"), 100)

	for _, v := range []Value{InMemory(data), AtLocation(writeFile(t, data))} {
		t.Run(v.Kind().String(), func(t *testing.T) {
			var got bytes.Buffer
			chunks := 0
			err := v.Stream(64, func(chunk []byte) error {
				assert.LessOrEqual(t, len(chunk), 64)
				chunks++
				got.Write(chunk)
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, data, got.Bytes())
			assert.GreaterOrEqual(t, chunks, len(data)/64)
		})
	}
}

func TestValue_Stream_StopsOnCallbackError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := InMemory(make([]byte, 100)).Stream(10, func([]byte) error {
		calls++
		if calls == 3 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, calls)
}

func TestValue_Open(t *testing.T) {
	for _, v := range []Value{InMemory([]byte("payload")), AtLocation(writeFile(t, []byte("payload")))} {
		rc, err := v.Open()
		require.NoError(t, err)
		got, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		assert.Equal(t, "payload", string(got))
	}
}

func TestValue_Cleanup(t *testing.T) {
	path := writeFile(t, []byte("spooled"))
	kept := AtLocation(path)
	require.NoError(t, kept.Cleanup())
	_, err := os.Stat(path)
	require.NoError(t, err, "non-temporary file must survive Cleanup")

	spooled := Spooled(path)
	assert.True(t, spooled.IsTemporary())
	require.NoError(t, spooled.Cleanup())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// second cleanup is a no-op
	assert.NoError(t, spooled.Cleanup())
}
