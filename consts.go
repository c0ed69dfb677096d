package bigint

const intSize = 32 << (^uint(0) >> 63)
