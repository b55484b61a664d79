package nlattr

// CRC-16/ARC (reflected poly=0xA001, init=0x0000, xorout=0x0000)

var crc16Table [256]uint16

func init() {
	const poly = 0xA001
	for i := 0; i < 256; i++ {
		crc := uint16(i)
		for bit := 0; bit < 8; bit++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ poly
			} else {
				crc >>= 1
			}
		}
		crc16Table[i] = crc
	}
}

// CRC16 is the checksum used to fingerprint opaque payloads.
func CRC16(data []byte) uint16 {
	crc := uint16(0x0000)
	for _, b := range data {
		crc = (crc >> 8) ^ crc16Table[(crc^uint16(b))&0xFF]
	}
	return crc
}
