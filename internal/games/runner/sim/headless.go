package sim

// Simulate starts a run from the menu or game over screen and drives it
// with the autopilot at a fixed dt until the run ends or maxTicks ticks have
// passed. observe, when non-nil, sees every event in order. It returns the
// final snapshot.
func Simulate(s *Session, pilot Autopilot, dt float64, maxTicks int, observe func(Event)) Snapshot {
	s.StartOrReset()
	for i := 0; i < maxTicks && s.state == StatePlaying; i++ {
		pilot.Decide(s.Snapshot()).Apply(s)
		s.Advance(dt)
		if observe == nil {
			continue
		}
		for _, e := range s.events {
			observe(e)
		}
	}
	return s.Snapshot()
}
