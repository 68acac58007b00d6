package collision

import "github.com/automoto/collide/shared/gamemath"

// MoveResult summarises a Move.
type MoveResult struct {
	Distance   int32  // total distance travelled
	Iterations int    // passes run
	Hit        Handle // last obstruction, if any
	Blocked    bool   // a closed portal was hit
	Capped     bool   // stopped by MaxIterations
}

// Move runs passes until the desired displacement is used up, sliding along
// whatever stops the actor in between. dt is Q16.16 and scales the first
// attempt. Two consecutive passes without progress end the move, as does
// the iteration cap; neither is an error.
func (r *Resolver) Move(c *Context, dt int64, ignoreEthereal bool) MoveResult {
	var res MoveResult
	if c.Prepare(dt) {
		return res
	}

	stalls := 0
	for {
		if res.Iterations >= r.Settings.MaxIterations {
			res.Capped = true
			break
		}
		res.Iterations++

		r.Pass(c, ignoreEthereal)
		hit, blocked := c.Hit, c.Blocked
		moved := c.Advance()
		res.Distance += moved

		if hit.IsNone() {
			break
		}
		res.Hit = hit
		res.Blocked = res.Blocked || blocked

		if moved == 0 {
			stalls++
			if stalls >= 2 {
				break
			}
		} else {
			stalls = 0
		}
		if !c.Slide() {
			break
		}
		if c.Prepare(gamemath.One) {
			break
		}
	}
	return res
}
