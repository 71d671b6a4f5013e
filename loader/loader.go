// Package loader parses machine-code images into a form that can be
// written into a bus: a small "ADDR: bytes..." hex-dump mini-format, plus
// raw binaries loaded at a fixed base address.
package loader

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Segment is a contiguous run of bytes destined for a fixed address.
type Segment struct {
	Addr uint16
	Data []byte
}

// Image is a parsed program: zero or more segments, each independently
// addressed. Segments may be non-contiguous (e.g. code plus a reset
// vector far away in the address space).
type Image struct {
	Segments []Segment
}

// Writer is the narrow interface an Image is copied into.
type Writer interface {
	Write(addr uint16, val uint8)
}

// WriteTo copies every segment's bytes into w at their recorded addresses.
func (img *Image) WriteTo(w Writer) {
	for _, seg := range img.Segments {
		for i, b := range seg.Data {
			w.Write(seg.Addr+uint16(i), b)
		}
	}
}

// ParseDump parses the "ADDR: b0 b1 b2 ..." hex-dump mini-format: one
// segment per non-blank, non-comment line, hex address and hex bytes
// separated by a colon. Lines starting with '#' are comments.
//
//	0600: a9 05 8d 00 02
//	FFFC: 00 06
func ParseDump(text string) (*Image, error) {
	img := &Image{}
	scan := bufio.NewScanner(strings.NewReader(text))
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		addrStr, octets, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("loader: malformed line %q: missing ':'", line)
		}

		addr, err := strconv.ParseUint(strings.TrimSpace(addrStr), 16, 16)
		if err != nil {
			return nil, fmt.Errorf("loader: bad address %q: %w", addrStr, err)
		}

		fields := strings.Fields(octets)
		data := make([]byte, len(fields))
		for i, f := range fields {
			b, err := hex.DecodeString(f)
			if err != nil || len(b) != 1 {
				return nil, fmt.Errorf("loader: bad byte %q on line %q: %w", f, line, err)
			}
			data[i] = b[0]
		}

		img.Segments = append(img.Segments, Segment{Addr: uint16(addr), Data: data})
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	return img, nil
}

// LoadRaw wraps a raw binary as a single segment at base.
func LoadRaw(bin []byte, base uint16) *Image {
	return &Image{Segments: []Segment{{Addr: base, Data: bin}}}
}
