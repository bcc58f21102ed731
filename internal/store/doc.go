// Package store persists the journal working set as a single encrypted file.
//
// # File format
//
// The backing file holds the codec output for an indented JSON array of
// entries:
//
//	[
//	  {
//	    "Id": 1,
//	    "Content": "hello",
//	    "Timestamp": "2024-03-01T10:00:00Z"
//	  }
//	]
//
// Every Save rewrites the whole file, so the cost of a save grows with the
// number of entries. The rewrite goes through a temporary file and a rename.
//
// # Failure handling
//
// Load and Save never return errors. A missing file is a normal first run. A
// file that cannot be read, decrypted or parsed is logged as a *LoadError and
// loads as empty. A failed write is logged as a *SaveError and Save reports
// false. The most recent outcome of each is available from Status.
//
// # Replica
//
// WithReplica attaches a Replica that receives the encrypted bytes after each
// successful local save. S3Replica uploads them to an S3-compatible bucket.
package store
