// Command libfastio builds the loader as a C shared library:
//
//	go build -buildmode=c-shared -o libfastio.so ./cmd/libfastio
//
// It exports
//
//	char *fastio_read_file_direct(const char *path, size_t *size_out);
//	char *fastio_read_text(const char *path, size_t *size_out);
//	void fastio_free_direct(char *buf);
//	const char *fastio_version(void);
//
// fastio_read_file_direct returns a malloc'd copy of the file, or NULL on
// any failure. The copy carries one trailing NUL for convenience, but the
// content may itself contain NUL bytes: *size_out is the only reliable
// length. Every non-NULL result must be passed to fastio_free_direct exactly
// once. fastio_read_text behaves the same but also returns NULL when the
// content is not valid UTF-8, for hosts that build strings from it.
//
// Settings are read from the FASTIO_* environment variables when the
// library loads.
package main
