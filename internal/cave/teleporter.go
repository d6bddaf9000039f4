package cave

// findTeleportDestination implements the teleporter scan of spec.md
// §4.5.2: starting just past the player in row-major reading order and
// wrapping around the whole map, find the first TELEPORTER whose
// neighbor in the player's movement direction is space. The player
// emerges in that neighbor cell.
func (cr *CaveRendered) findTeleportDestination(move Direction) (x, y int, ok bool) {
	w, h := cr.Map.W, cr.Map.H
	total := w * h
	start := cr.PlayerY*w + cr.PlayerX

	dx, dy := move.Delta()
	for i := 1; i <= total; i++ {
		idx := (start + i) % total
		tx, ty := idx%w, idx/w
		if cr.Map.At(tx, ty).Unscanned() != Teleporter {
			continue
		}
		nx, ny := tx+dx, ty+dy
		if cr.Map.IsSpace(nx, ny) {
			return nx, ny, true
		}
	}
	return 0, 0, false
}
