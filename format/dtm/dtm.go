// Package dtm decodes the fixed 256-byte header of Dolphin movie (.dtm) files.
//
// The header has no self-describing schema: every field is positional, so the
// decoder walks an ordered layout table with a single cursor. Multi-byte
// integers are little-endian.
package dtm

// Magic is the 4-byte signature every movie file starts with: "DTM" + 0x1A.
var Magic = [MagicSize]byte{'D', 'T', 'M', 0x1A}

const (
	// MagicSize is the width of the signature at offset 0.
	MagicSize = 4
	// HeaderSize is the total length of the header region, reserved gaps included.
	HeaderSize = 256

	md5Size         = 16
	gitRevisionSize = 20
)
