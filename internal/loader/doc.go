// Package loader reads whole files into owned, length-tracked buffers.
//
// Load probes the file size, copies the file out of a private read-only
// memory mapping when the size is at or below the mapping ceiling, and
// otherwise (or when mapping fails) reads it through a bounded chunk buffer
// into a single allocation sized from the probe:
//
//	buf, err := loader.Load("data.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer buf.Release()
//	process(buf.Bytes())
//
// Every call opens its own descriptor and allocates a fresh buffer; there is
// no cache and no state shared between calls, so a Loader is safe for
// concurrent use. The descriptor and any mapping are released before Load
// returns on every path.
//
// Failures carry one of the Kind* error codes (see KindOf). A failed mapping
// is never reported: it only switches the load to the chunked path. A file
// that shrinks between the size probe and the read yields a shorter buffer
// rather than an error.
package loader
