package bigint

const (
	MinRadix = 2
	MaxRadix = 36
)

// bitsPerDigit is the number of bits needed to represent one digit in each
// radix, multiplied by 1024 and rounded up.
var bitsPerDigit = [MaxRadix + 1]int{0, 0,
	1024, 1624, 2048, 2378, 2648, 2875, 3072, 3247, 3402, 3543, 3672,
	3790, 3899, 4001, 4096, 4186, 4271, 4350, 4426, 4498, 4567, 4633,
	4696, 4756, 4814, 4870, 4923, 4975, 5025, 5074, 5120, 5166, 5210,
	5253, 5295,
}

// digitsPerInt is the number of digits of a given radix that can fit in a
// 32-bit word without "going negative", i.e. the highest x such that
// radix**x < 2**31.
var digitsPerInt = [MaxRadix + 1]int{0, 0,
	30, 19, 15, 13, 11, 11, 10, 9, 9, 8, 8, 8, 8, 7, 7, 7, 7, 7, 7, 7,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 5,
}

// intRadix is the super radix for each radix: radix**digitsPerInt[radix].
var intRadix = [MaxRadix + 1]uint32{0, 0,
	0x40000000, 0x4546b3db, 0x40000000, 0x48c27395, 0x159fd800,
	0x75db9c97, 0x40000000, 0x17179149, 0x3b9aca00, 0xcc6db61,
	0x19a10000, 0x309f1021, 0x57f6c100, 0xa2f1b6f, 0x10000000,
	0x18754571, 0x247dbc80, 0x3547667b, 0x4c4b4000, 0x6b5a6e1d,
	0x6c20a40, 0x8d2d931, 0xb640000, 0xe8d4a51, 0x1269ae40,
	0x17179149, 0x1cb91000, 0x23744899, 0x2b73a840, 0x34e63b41,
	0x40000000, 0x4cfa3cc1, 0x5c13d840, 0x6d91b519, 0x39aa400,
}

// digitsPerLong is the number of digits of a given radix that can fit in a
// double word without "going negative", i.e. the highest x such that
// radix**x < 2**63.
var digitsPerLong = [MaxRadix + 1]int{0, 0,
	62, 39, 31, 27, 24, 22, 20, 19, 18, 18, 17, 17, 16, 16, 15, 15, 15, 14,
	14, 14, 14, 13, 13, 13, 13, 13, 13, 12, 12, 12, 12, 12, 12, 12, 12,
}

// longRadix is radix**digitsPerLong[radix]; toString peels one group of
// digitsPerLong[radix] digits off per division by this value.
var longRadix = [MaxRadix + 1]uint64{0, 0,
	0x4000000000000000, 0x383d9170b85ff80b, 0x4000000000000000, 0x6765c793fa10079d,
	0x41c21cb8e1000000, 0x3642798750226111, 0x1000000000000000, 0x12bf307ae81ffd59,
	0x0de0b6b3a7640000, 0x4d28cb56c33fa539, 0x1eca170c00000000, 0x780c7372621bd74d,
	0x1e39a5057d810000, 0x5b27ac993df97701, 0x1000000000000000, 0x27b95e997e21d9f1,
	0x5da0e1e53c5c8000, 0x0b16a458ef403f19, 0x16bcc41e90000000, 0x2d04b7fdd9c0ef49,
	0x5658597bcaa24000, 0x06feb266931a75b7, 0x0c29e98000000000, 0x14adf4b7320334b9,
	0x226ed36478bfa000, 0x383d9170b85ff80b, 0x5a3c23e39c000000, 0x04e900abb53e6b71,
	0x07600ec618141000, 0x0aee5720ee830681, 0x1000000000000000, 0x172588ad4f5f0981,
	0x211e44f7d02c1000, 0x2ee56725f06e5c71, 0x41c21cb8e1000000,
}

// zeros is a run of '0' characters long enough to pad any digit group.
const zeros = "000000000000000000000000000000000000000000000000000000000000000"

func validRadix(radix int) bool {
	return radix >= MinRadix && radix <= MaxRadix
}
