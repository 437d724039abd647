package images

import "github.com/google/uuid"

// Allocate returns a process-scope image id for a Kitty graphics
// placement. Ids are derived from a UUID's low 32 bits rather than a
// counter, so two engines in the same process (or two runs racing a
// shared terminal) don't collide on small sequential values; a collision
// within one process is tolerated since ids are only meaningful for the
// lifetime of the image they name; a fresh placement simply overwrites
// whatever quietly dies a prior one with the same id.
func Allocate() uint32 {
	for {
		id := uuid.New()
		v := uint32(id[12])<<24 | uint32(id[13])<<16 | uint32(id[14])<<8 | uint32(id[15])
		if v != 0 {
			return v
		}
	}
}
