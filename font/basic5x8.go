package font

// Basic5x8 is the classic 5x7 dot-matrix ASCII font in 8-pixel columns.
var Basic5x8 Reader[uint8] = &Packed[uint8]{
	Width:  5,
	Height: 8,
	Data: "" +
		"\x00\x00\x00\x00\x00" + // space
		"\x00\x00\x5f\x00\x00" + // !
		"\x00\x07\x00\x07\x00" + // "
		"\x14\x7f\x14\x7f\x14" + // #
		"\x24\x2a\x7f\x2a\x12" + // $
		"\x23\x13\x08\x64\x62" + // %
		"\x36\x49\x55\x22\x50" + // &
		"\x00\x05\x03\x00\x00" + // '
		"\x00\x1c\x22\x41\x00" + // (
		"\x00\x41\x22\x1c\x00" + // )
		"\x14\x08\x3e\x08\x14" + // *
		"\x08\x08\x3e\x08\x08" + // +
		"\x00\x50\x30\x00\x00" + // ,
		"\x08\x08\x08\x08\x08" + // -
		"\x00\x60\x60\x00\x00" + // .
		"\x20\x10\x08\x04\x02" + // /
		"\x3e\x51\x49\x45\x3e" + // 0
		"\x00\x42\x7f\x40\x00" + // 1
		"\x42\x61\x51\x49\x46" + // 2
		"\x21\x41\x45\x4b\x31" + // 3
		"\x18\x14\x12\x7f\x10" + // 4
		"\x27\x45\x45\x45\x39" + // 5
		"\x3c\x4a\x49\x49\x30" + // 6
		"\x01\x71\x09\x05\x03" + // 7
		"\x36\x49\x49\x49\x36" + // 8
		"\x06\x49\x49\x29\x1e" + // 9
		"\x00\x36\x36\x00\x00" + // :
		"\x00\x56\x36\x00\x00" + // ;
		"\x08\x14\x22\x41\x00" + // <
		"\x14\x14\x14\x14\x14" + // =
		"\x00\x41\x22\x14\x08" + // >
		"\x02\x01\x51\x09\x06" + // ?
		"\x32\x49\x79\x41\x3e" + // @
		"\x7e\x11\x11\x11\x7e" + // A
		"\x7f\x49\x49\x49\x36" + // B
		"\x3e\x41\x41\x41\x22" + // C
		"\x7f\x41\x41\x22\x1c" + // D
		"\x7f\x49\x49\x49\x41" + // E
		"\x7f\x09\x09\x01\x01" + // F
		"\x3e\x41\x41\x51\x32" + // G
		"\x7f\x08\x08\x08\x7f" + // H
		"\x00\x41\x7f\x41\x00" + // I
		"\x20\x40\x41\x3f\x01" + // J
		"\x7f\x08\x14\x22\x41" + // K
		"\x7f\x40\x40\x40\x40" + // L
		"\x7f\x02\x04\x02\x7f" + // M
		"\x7f\x04\x08\x10\x7f" + // N
		"\x3e\x41\x41\x41\x3e" + // O
		"\x7f\x09\x09\x09\x06" + // P
		"\x3e\x41\x51\x21\x5e" + // Q
		"\x7f\x09\x19\x29\x46" + // R
		"\x46\x49\x49\x49\x31" + // S
		"\x01\x01\x7f\x01\x01" + // T
		"\x3f\x40\x40\x40\x3f" + // U
		"\x1f\x20\x40\x20\x1f" + // V
		"\x7f\x20\x18\x20\x7f" + // W
		"\x63\x14\x08\x14\x63" + // X
		"\x03\x04\x78\x04\x03" + // Y
		"\x61\x51\x49\x45\x43" + // Z
		"\x00\x00\x7f\x41\x41" + // [
		"\x02\x04\x08\x10\x20" + // \
		"\x41\x41\x7f\x00\x00" + // ]
		"\x04\x02\x01\x02\x04" + // ^
		"\x40\x40\x40\x40\x40" + // _
		"\x00\x01\x02\x04\x00" + // `
		"\x20\x54\x54\x54\x78" + // a
		"\x7f\x48\x44\x44\x38" + // b
		"\x38\x44\x44\x44\x20" + // c
		"\x38\x44\x44\x48\x7f" + // d
		"\x38\x54\x54\x54\x18" + // e
		"\x08\x7e\x09\x01\x02" + // f
		"\x08\x14\x54\x54\x3c" + // g
		"\x7f\x08\x04\x04\x78" + // h
		"\x00\x44\x7d\x40\x00" + // i
		"\x20\x40\x44\x3d\x00" + // j
		"\x00\x7f\x10\x28\x44" + // k
		"\x00\x41\x7f\x40\x00" + // l
		"\x7c\x04\x18\x04\x78" + // m
		"\x7c\x08\x04\x04\x78" + // n
		"\x38\x44\x44\x44\x38" + // o
		"\x7c\x14\x14\x14\x08" + // p
		"\x08\x14\x14\x18\x7c" + // q
		"\x7c\x08\x04\x04\x08" + // r
		"\x48\x54\x54\x54\x20" + // s
		"\x04\x3f\x44\x40\x20" + // t
		"\x3c\x40\x40\x20\x7c" + // u
		"\x1c\x20\x40\x20\x1c" + // v
		"\x3c\x40\x30\x40\x3c" + // w
		"\x44\x28\x10\x28\x44" + // x
		"\x0c\x50\x50\x50\x3c" + // y
		"\x44\x64\x54\x4c\x44" + // z
		"\x00\x08\x36\x41\x00" + // {
		"\x00\x00\x7f\x00\x00" + // |
		"\x00\x41\x36\x08\x00" + // }
		"\x08\x04\x08\x10\x08", // ~
}
