// Package decimal provides an arbitrary-precision signed decimal number with
// exact addition, subtraction and multiplication.
//
// The equation for a decimal number is:
//
//  number = sign * magnitude * 1000 ^ -scale
//
// Where magnitude is an unsigned integer stored as base 1000 limbs (three
// decimal digits per limb, least significant limb first) and scale is the
// number of limbs after the decimal point. For example:
//
//  123.456 = +1 * [456, 123] * 1000^-1
//  1000    = +1 * [1]        * 1000^1    (scale -1)
//  -0.0005 = -1 * [500]      * 1000^-2
//
// Values are kept normalized: neither end of the magnitude holds a zero limb
// unless the magnitude is the single limb 0, and zero is always sign 0,
// magnitude [0], scale 0.
//
// Text
//
// Parse accepts plain and scientific notation and ignores grouping
// separators:
//
//  1,234.5  1_000  .5  5.  -2.5e-3  e6  1E+9
//
// String renders plain base 10 text with no exponent, no grouping and no
// trailing zeros. Other bases are not supported.
//
// Arithmetic
//
// Add, Sub and Mul are exact and take any number of operands, applied left
// to right. Without operands they add one, subtract one and double. Division
// is not provided: Quo always fails.
//
// Operations never modify their receiver or arguments:
//
//  total := price.Mul(quantity).Add(shipping)
//
// Encoding
//
// A decimal is encoded as one BSV data block. The data is a big-endian
// integer laid out first by the unscaled coefficient (the limbs read in base
// 1000, with sign bit), then the scale in limbs (with sign bit), and finally
// the last 2 bits are the scale size. All integers in the format use a
// trailing sign bit (zigzag).
//
// Decoding reads the full block, takes the scale size from the last two
// bits, extracts the scale and treats the remaining bits as the
// coefficient. Encoding picks the smallest scale size for the scale and
// then the smallest control block for the packed data.
//
// The scale size is encoded as two bits:
//
//  | 0 | 1 | Available Scale |
//  |-------|-----------------|
//  | 0 . 0 | No Scale        | no scale bits
//  | 0 . 1 | ±2^5 Scale      | 6 scale bits
//  | 1 . 0 | ±2^13 Scale     | 14 scale bits
//  | 1 . 1 | ±2^21 Scale     | 22 scale bits
//  |-------|-----------------|
//  | 0 | 1 |
//
// The scale may be up to ±2^21 limbs (approximately a decimal number with 6
// million zeros); larger scales fail to encode.
//
// Small Values No Scale (1 byte)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 1 | 0 . 1 . 0 . 1 . 0 | 0 . 0 | Data Control Block with value of +5.
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// USD 0.001 (2 bytes)
//
//  0.001 = 1 * 1000^-1
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 0 . 1 | 0 . 0 . 0 . 1 . 0 | Data + 1 Control Block with value of +1.
//  |-------------------------------|
//  | 0 . 0 . 0 . 0 . 1 . 0 | 0 . 1 | ±2^5 Scale with scale of +1.
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// USD 20.47 (4 bytes)
//
//  20.47 = 20470 * 1000^-1
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 1 | 0 . 0 . 0 . 0 . 1 . 0 | Data Size Control Block, 3 bytes.
//  |-------------------------------|
//  | 1 . 0 . 0 . 1 . 1 . 1 . 1 . 1 | Value of +20470
//  | 1 . 1 . 1 . 0 . 1 . 1 . 0 | 0 |
//  |-------------------------------|
//  | 0 . 0 . 0 . 0 . 1 . 0 | 0 . 1 | ±2^5 Scale with scale of +1.
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// A nullable field holds a Null block in place of the data block.
//
// Fixed Scale
//
// A Schema with Fixed set shares one scale across the field. Each value is
// then a plain signed integer field (see package integer) holding the
// coefficient at that scale, and values with more fractional limbs than the
// schema allows fail to encode.
package decimal
