// Package control reads and writes BSV control blocks, the framing layer
// under integer and decimal fields.
//
// The first byte of a field is its control block. A prefix code in the high
// bits names the block type and the remaining bits carry data or a size:
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type           | Payload                          |
//  |---------------|---------------||----------------|----------------------------------|
//  | 1 |                           || Data           | 7 bits in the block              |
//  | 0 . 1 |                       || Data Size      | 1-64 bytes following             |
//  | 0 . 0 . 1 |                   || Data + 1       | 5 bits in the block + 1 byte     |
//  | 0 . 0 . 0 . 1 |               || Data + 2       | 4 bits in the block + 2 bytes    |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size | 1-8 size bytes, then the data    |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty          | none                             |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null           | none                             |
//  |---------------|---------------||----------------|----------------------------------|
//
// Sizes count from one: a Data Size block holding 5 in its low bits is
// followed by 6 bytes. The encoder always picks the shortest block for the
// data it is given.
//
// The remaining prefixes (0b0000_01xx and 0b0000_001x) belong to container
// and skip blocks. Decimal streams never contain them and the decoder
// rejects them as unexpected bytes.
//
// Null marks a missing value in a nullable field. Empty carries no data and
// is never valid where a number is expected, so the encoder never writes it;
// the decoder still recognizes it to reject it by name.
package control
