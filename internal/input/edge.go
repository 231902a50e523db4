package input

// EdgeDetector turns "is down" samples into "newly pressed" events.
type EdgeDetector struct {
	previous map[string]bool
}

// Update takes the keys down this frame and returns those that were not down last frame.
func (d *EdgeDetector) Update(down map[string]bool) map[string]bool {
	pressed := map[string]bool{}
	for key, isDown := range down {
		if isDown && !d.previous[key] {
			pressed[key] = true
		}
	}
	current := make(map[string]bool, len(down))
	for key, isDown := range down {
		if isDown {
			current[key] = true
		}
	}
	d.previous = current
	return pressed
}
