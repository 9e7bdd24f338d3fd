package spl

import "fmt"

// The SPL mint account is a fixed 82-byte layout; every field lives at a
// constant offset. The table below is the single source of truth for the
// offsets the decoder reads.
type field struct {
	name   string
	offset int
	width  int
}

var mintLayout = struct {
	mintAuthorityOption   field
	mintAuthority         field
	supply                field
	decimals              field
	isInitialized         field
	freezeAuthorityOption field
	freezeAuthority       field
	size                  int
}{
	mintAuthorityOption:   field{"mintAuthorityOption", 0, 4},
	mintAuthority:         field{"mintAuthority", 4, 32},
	supply:                field{"supply", 36, 8},
	decimals:              field{"decimals", 44, 1},
	isInitialized:         field{"isInitialized", 45, 1},
	freezeAuthorityOption: field{"freezeAuthorityOption", 46, 4},
	freezeAuthority:       field{"freezeAuthority", 50, 32},
	size:                  82,
}

// byteReader reads little-endian fields out of a raw account payload with
// bounds checks on every access.
type byteReader struct {
	data []byte
}

func (r byteReader) check(f field) error {
	if f.offset+f.width > len(r.data) {
		return fmt.Errorf("field %s at [%d..%d) exceeds %d bytes", f.name, f.offset, f.offset+f.width, len(r.data))
	}
	return nil
}

func (r byteReader) u8(f field) (uint8, error) {
	if err := r.check(f); err != nil {
		return 0, err
	}
	return r.data[f.offset], nil
}

func (r byteReader) u32le(f field) (uint32, error) {
	if err := r.check(f); err != nil {
		return 0, err
	}
	b := r.data[f.offset:]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, nil
}

// u32leAt reads a 4-byte little-endian word at an absolute offset inside f.
func (r byteReader) u32leAt(f field, rel int) (uint32, error) {
	sub := field{f.name, f.offset + rel, 4}
	if sub.offset+sub.width > f.offset+f.width {
		return 0, fmt.Errorf("field %s: relative read [%d..%d) exceeds width %d", f.name, rel, rel+4, f.width)
	}
	return r.u32le(sub)
}
