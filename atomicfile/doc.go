/*
Replacing a config file in place is how configs get corrupted: a crash
between the first byte and the last leaves a torn file.

Package atomicfile writes to a temp file in the same directory and only
renames it over the destination in Close, after a successful sync. Any
error along the way deletes the temp file and leaves the destination
untouched:

	func save(path string, data []byte) error {
		f, err := atomicfile.New(path)
		if err != nil {
			return err
		}
		// no-op after a successful Close
		defer f.RemoveIfNotClosed()

		if _, err = f.Write(data); err != nil {
			return err
		}
		return f.Close()
	}

or the same in one call:

	err := atomicfile.WriteFile(path, data)
*/
package atomicfile
