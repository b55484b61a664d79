package nlattr

import "fmt"

// elementSSID is the 802.11 element id carrying the network name.
const elementSSID = 0

// DecodeElements renders a sequence of 802.11 information elements (1-byte
// id, 1-byte length, value). The SSID element is always shown as text. In
// compact mode the other elements are summarized once by total length and
// checksum; otherwise each is listed as id:length/checksum.
func DecodeElements(b Buffer, compact bool) string {
	a := newAssembler()
	if compact {
		a.add(fmt.Sprintf("len=%d", b.Len()))
		a.add(fmt.Sprintf("crc=%04x", CRC16(b.Bytes())))
	}

	data := b.Bytes()
	for off := 0; len(data)-off >= 2; {
		id, n := data[off], int(data[off+1])
		val, ok := b.Slice(off+2, n)
		if !ok {
			a.add(ErrToken)
			break
		}
		switch {
		case id == elementSSID:
			a.add("SSID=" + quote(val.Bytes()))
		case !compact:
			a.add(fmt.Sprintf("%d:%d/%04x", id, n, CRC16(val.Bytes())))
		}
		off += 2 + n
	}
	return a.close()
}

// ElementsDecoder is DecodeElements as a DecodeFunc: compact unless verbose.
func ElementsDecoder(b Buffer, verbose bool) string {
	return DecodeElements(b, !verbose)
}
