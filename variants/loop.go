package variants

// basicLoop runs body until it returns false.
func basicLoop(body func() bool) {
	for body() {
	}
}

// forLoop is a for statement with cond, body, and post as closures: it stops
// when cond is false or body returns false, and runs post after every body.
func forLoop(cond func() bool, body func() bool, post func()) {
	basicLoop(func() bool {
		if !cond() {
			return false
		}
		if !body() {
			return false
		}
		post()
		return true
	})
}
