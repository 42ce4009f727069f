// File: sized/room.go
// Package sized
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package sized

// Room is a phantom marker carrying a guaranteed byte count in a type
// signature. Two handles parameterized with different Room types are
// distinct types, so a layer's headroom requirement is part of every
// signature it appears in.
type Room interface {
	RoomBytes() int
}

// Common room sizes. Protocol layers needing an uncovered size declare
// their own marker next to the layer.
type (
	// R0 declares no reserved bytes.
	R0 struct{}
	R1 struct{}
	R2 struct{}
	R4 struct{}
	R6 struct{}
	R8 struct{}
	// R14 fits an Ethernet header.
	R14 struct{}
	R16 struct{}
	R32 struct{}
	R64 struct{}
)

func (R0) RoomBytes() int  { return 0 }
func (R1) RoomBytes() int  { return 1 }
func (R2) RoomBytes() int  { return 2 }
func (R4) RoomBytes() int  { return 4 }
func (R6) RoomBytes() int  { return 6 }
func (R8) RoomBytes() int  { return 8 }
func (R14) RoomBytes() int { return 14 }
func (R16) RoomBytes() int { return 16 }
func (R32) RoomBytes() int { return 32 }
func (R64) RoomBytes() int { return 64 }

// Bytes returns the byte count a Room type declares.
func Bytes[R Room]() int {
	var r R
	return r.RoomBytes()
}
