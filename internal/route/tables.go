package route

// One background grid block is about 0.0333 of the width and 0.0526 of the
// height. The last checkpoint of every route is off-screen, so enemies
// despawn before reaching it.
var defaultRoutes = map[SpawnPoint]Route{
	TopLeft: {
		Checkpoints: []Point{
			{-0.31, 0.5},
			{-0.31, 0.31578},
			{0.0, 0.31778},
			{0.0, -0.31178},
			{0.20899, -0.31178},
			{0.20899, -1.0},
		},
		Turns: []Direction{DirDown, DirRight, DirDown, DirRight, DirDown, DirDown},
	},
	BottomRight: {
		Checkpoints: []Point{
			{0.20899, -0.5},
			{0.20899, -0.31178},
			{0.0, -0.31178},
			{0.0, 0.31778},
			{-0.31, 0.31578},
			{-0.31, 1.0},
		},
		Turns: []Direction{DirUp, DirLeft, DirUp, DirLeft, DirUp, DirUp},
	},
	TopRight: {
		Checkpoints: []Point{
			{0.27664, 0.5},
			{0.27664, 0.20252},
			{0.10299, 0.20252},
			{0.10299, 0.31778},
			{0.0, 0.31778},
			{0.0, -0.18552},
			{-0.20698, -0.18552},
			{-0.20698, -0.36841},
			{-1.0, -0.36841},
		},
		Turns: []Direction{DirDown, DirLeft, DirUp, DirLeft, DirDown, DirLeft, DirDown, DirLeft, DirLeft},
	},
	BottomLeft: {
		Checkpoints: []Point{
			{-0.5, -0.36841},
			{-0.20698, -0.36841},
			{-0.20698, -0.18552},
			{0.0, -0.18552},
			{0.0, 0.31778},
			{0.10299, 0.31778},
			{0.10299, 0.20252},
			{0.27664, 0.20252},
			{0.27664, 1.0},
		},
		Turns: []Direction{DirRight, DirUp, DirRight, DirUp, DirRight, DirDown, DirRight, DirUp, DirUp},
	},
	Left: {
		Checkpoints: []Point{{-0.5, 0.01}, {1.0, 0.01}},
		Turns:       []Direction{DirRight, DirRight},
	},
	Right: {
		Checkpoints: []Point{{0.5, 0.01}, {-1.0, 0.01}},
		Turns:       []Direction{DirLeft, DirLeft},
	},
}
