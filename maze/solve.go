package maze

// Solve finds the shortest passage path from start to end with BFS.
// The path includes both endpoints; nil means unreachable or out of bounds.
func Solve(v View, start, end Position) []Position {
	if !v.InBounds(start) || !v.InBounds(end) {
		return nil
	}

	queue := []Position{start}
	cameFrom := make(map[Position]Position)
	visited := map[Position]bool{start: true}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			path := []Position{}
			for curr != start {
				path = append(path, curr)
				curr = cameFrom[curr]
			}
			path = append(path, start)
			reverse(path)
			return path
		}

		for _, d := range neighborDirs {
			next, ok := Move(v, curr, d)
			if ok && !visited[next] {
				visited[next] = true
				cameFrom[next] = curr
				queue = append(queue, next)
			}
		}
	}
	return nil
}

// Reachable returns every cell connected to start through open passages
func Reachable(v View, start Position) map[Position]bool {
	seen := make(map[Position]bool)
	if !v.InBounds(start) {
		return seen
	}

	stack := []Position{start}
	seen[start] = true
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range neighborDirs {
			if next, ok := Move(v, curr, d); ok && !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return seen
}

// OpenPassages counts adjacent cell pairs with the shared wall removed
func OpenPassages(v View) int {
	n := 0
	for y := 0; y < v.Rows(); y++ {
		for x := 0; x < v.Cols(); x++ {
			// Count each pair once, from its left or top member
			if x+1 < v.Cols() && !v.HasWall(x, y, SideRight) {
				n++
			}
			if y+1 < v.Rows() && !v.HasWall(x, y, SideBottom) {
				n++
			}
		}
	}
	return n
}

func reverse(p []Position) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
