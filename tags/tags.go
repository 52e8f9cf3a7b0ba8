package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Wall   = donburi.NewTag().SetName("Wall")
	Ground = donburi.NewTag().SetName("Ground")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvGround    = "ground"
	ResolvCharacter = "character"
	ResolvPlayer    = "Player"
	ResolvEnemy     = "Enemy"
)
