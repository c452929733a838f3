package sim

// Kill records an enemy removed by damage.
type Kill struct {
	ID     EnemyID
	Type   string
	Score  int
	Source string // Weapon or scroll type that landed the final hit
}

// StepEvents lists what happened during one Update call. The shell
// uses it for logging and run statistics; the simulation never reads it.
type StepEvents struct {
	Kills          []Kill
	Spawned        int  // Enemies added by trickle spawning
	SwarmSpawned   int  // Enemies added by a swarm
	Swarm          bool // A swarm fired, even if every slot was blocked
	UpgradeOffered bool
	GameOver       bool
	KilledBy       string // Monster type that touched the player
}

// Score returns the score earned from kills in this step.
func (e StepEvents) Score() int {
	total := 0
	for _, k := range e.Kills {
		total += k.Score
	}
	return total
}
