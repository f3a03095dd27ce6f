package catalog

// Builtin returns the levels shipped with the game.
// Coordinates are in a 550x700 world.
func Builtin() Catalog {
	return Catalog{Levels: []Level{
		{
			Name: "Meadow",
			Platforms: []RectDef{
				{X: 50, Y: 550, W: 150, H: 20},
				{X: 350, Y: 550, W: 150, H: 20},
				{X: 200, Y: 420, W: 150, H: 20},
				{X: 40, Y: 290, W: 130, H: 20},
				{X: 380, Y: 290, W: 130, H: 20},
				{X: 210, Y: 160, W: 130, H: 20},
			},
			Coins: []Point{
				{X: 125, Y: 520},
				{X: 425, Y: 520},
				{X: 275, Y: 390},
				{X: 105, Y: 260},
				{X: 445, Y: 260},
				{X: 275, Y: 130},
			},
			Enemies: []EnemyDef{
				{Sprite: "enemy1", Platform: 2},
			},
		},
		{
			Name: "Caverns",
			Platforms: []RectDef{
				{X: 30, Y: 600, W: 120, H: 20},
				{X: 400, Y: 600, W: 120, H: 20},
				{X: 180, Y: 480, W: 190, H: 20},
				{X: 20, Y: 360, W: 140, H: 20},
				{X: 390, Y: 360, W: 140, H: 20},
				{X: 200, Y: 240, W: 150, H: 20},
				{X: 60, Y: 120, W: 100, H: 20},
				{X: 390, Y: 120, W: 100, H: 20},
			},
			Coins: []Point{
				{X: 90, Y: 570},
				{X: 460, Y: 570},
				{X: 275, Y: 450},
				{X: 90, Y: 330},
				{X: 460, Y: 330},
				{X: 275, Y: 210},
				{X: 110, Y: 90},
				{X: 440, Y: 90},
			},
			Enemies: []EnemyDef{
				{Sprite: "enemy1", Platform: 2},
				{Sprite: "enemy2", Platform: 3},
				{Sprite: "enemy1", Platform: 5},
			},
		},
		{
			Name: "Summit",
			Platforms: []RectDef{
				{X: 60, Y: 580, W: 160, H: 20},
				{X: 330, Y: 580, W: 160, H: 20},
				{X: 225, Y: 470, W: 50, H: 20},
				{X: 40, Y: 350, W: 200, H: 20},
				{X: 310, Y: 350, W: 200, H: 20},
				{X: 150, Y: 230, W: 250, H: 20},
				{X: 240, Y: 110, W: 70, H: 20},
			},
			Coins: []Point{
				{X: 140, Y: 550},
				{X: 410, Y: 550},
				{X: 250, Y: 440},
				{X: 140, Y: 320},
				{X: 410, Y: 320},
				{X: 275, Y: 200},
				{X: 275, Y: 80},
			},
			Enemies: []EnemyDef{
				{Sprite: "enemy2", Platform: 0},
				{Sprite: "enemy1", Platform: 2},
				{Sprite: "enemy2", Platform: 3},
				{Sprite: "enemy1", Platform: 4},
				{Sprite: "enemy2", Platform: 5},
			},
		},
	}}
}
