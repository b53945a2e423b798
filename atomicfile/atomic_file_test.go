package atomicfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kjk/properties/assert"
	"github.com/kjk/properties/require"
)

func assertFileExists(t *testing.T, path string) {
	st, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file '%s' doesn't exist, os.Stat() failed with '%s'", path, err)
	}
	if !st.Mode().IsRegular() {
		t.Fatalf("path '%s' exists but is not a file (mode: %d)", path, int(st.Mode()))
	}
}

func assertFileNotExists(t *testing.T, path string) {
	_, err := os.Stat(path)
	if err == nil {
		t.Fatalf("file '%s' exists, expected to not exist", path)
	}
}

func assertFileSizeEqual(t *testing.T, path string, n int64) {
	st, err := os.Stat(path)
	if err != nil {
		t.Fatalf("os.Stat('%s') failed with '%s'", path, err)
	}
	if st.Size() != n {
		t.Fatalf("path: '%s', expected size: %d, got: %d", path, n, st.Size())
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "out.properties")
	{
		f, err := New(dst)
		require.NoError(t, err)
		assertFileExists(t, f.tmpPath)
		_ = f.Close()
		assertFileExists(t, dst)
		assertFileSizeEqual(t, dst, 0)
		assertFileNotExists(t, f.tmpPath)
	}

	d := []byte("key=value\nother=thing\n")

	{
		f, err := New(dst)
		require.NoError(t, err)
		assertFileExists(t, f.tmpPath)
		n, err := f.Write(d)
		require.NoError(t, err)
		require.Equal(t, len(d), n)
		assertFileExists(t, f.tmpPath)
		err = f.Close()
		require.NoError(t, err)
		assertFileNotExists(t, f.tmpPath)
		assertFileSizeEqual(t, dst, int64(len(d)))
		// calling Close twice is a no-op
		err = f.Close()
		assert.NoError(t, err)
	}

	{
		// RemoveIfNotClosed before Close puts the file in an error state
		f, err := New(dst)
		require.NoError(t, err)
		f.RemoveIfNotClosed()
		_, err = f.Write(d)
		assert.ErrorIs(t, err, ErrCancelled)
		err = f.Close()
		assert.ErrorIs(t, err, ErrCancelled)
		err = f.Close()
		assert.ErrorIs(t, err, ErrCancelled)
	}

	// we can't create files in directories that don't exist
	// so verify we do an early check (no point writing to a file
	// if it couldn't be created at the end)
	{
		f, err := New(filepath.Join(dir, "missing", "out.properties"))
		require.Error(t, err)
		assert.Nil(t, f)
	}
}

func TestWriteString(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.properties")
	f, err := New(dst)
	require.NoError(t, err)
	n, err := f.WriteString("a=1\n")
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.NoError(t, f.Close())
	d, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "a=1\n", string(d))
}

func TestSimulateError(t *testing.T) {
	// test cleanup after write
	dst := filepath.Join(t.TempDir(), "out.properties")
	f, err := New(dst)
	require.NoError(t, err)
	assertFileExists(t, f.tmpPath)
	_, err = f.Write([]byte("foo"))
	require.NoError(t, err)
	// simulate an error
	errSimulated := errors.New("simulated")
	f.err = errSimulated
	err = f.Close()
	assert.ErrorIs(t, err, errSimulated)
	assertFileNotExists(t, f.tmpPath)
	assertFileNotExists(t, dst)
	// on second Close() should get the same error
	err = f.Close()
	assert.ErrorIs(t, err, errSimulated)
}

func writeWithPanicClose(t *testing.T, f *File) {
	defer f.Close()

	_, err := f.Write([]byte("foo"))
	require.NoError(t, err)
	panic("simulating a crash")
}

func recoverWritePanic(t *testing.T, f *File) {
	defer func() {
		err := recover()
		if err == nil {
			t.Fatalf("expected to panic")
		}
	}()

	writeWithPanicClose(t, f)
}

func TestWriteWithPanic(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.properties")
	f, err := New(dst)
	require.NoError(t, err)
	assertFileExists(t, f.tmpPath)
	recoverWritePanic(t, f)
	// deferred Close finished the write
	assertFileExists(t, dst)
}

func writeWithPanicCancel(t *testing.T, f *File) {
	defer f.RemoveIfNotClosed()

	_, err := f.Write([]byte("foo"))
	require.NoError(t, err)
	panic("simulating a crash")
}

func recoverCancelPanic(t *testing.T, f *File) {
	defer func() {
		err := recover()
		if err == nil {
			t.Fatalf("expected to panic")
		}
	}()

	writeWithPanicCancel(t, f)
}

func TestCancel(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.properties")
	f, err := New(dst)
	require.NoError(t, err)
	assertFileExists(t, f.tmpPath)
	recoverCancelPanic(t, f)
	assertFileNotExists(t, f.tmpPath)
	assertFileNotExists(t, dst)
}

func TestWriteFile(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.properties")
	err := WriteFile(dst, []byte("a=1\n"))
	require.NoError(t, err)
	d, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "a=1\n", string(d))

	// overwrites an existing file
	err = WriteFile(dst, []byte("b=2\n"))
	require.NoError(t, err)
	d, err = os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "b=2\n", string(d))
}
