package gameserver

import (
	"math"

	"github.com/soyroberto/roblox/internal/registry"
	"github.com/soyroberto/roblox/pkg/catalog"
	"github.com/soyroberto/roblox/pkg/formula"
)

// Ensure Formula implements the formula.Formula interface.
var _ formula.Formula = (*Formula)(nil)

// init registers the formula with the central registry.
func init() {
	registry.Register(&Formula{})
}

// Per-server sizing constants for the fleet projection.
const (
	coresPerServer    = 4
	memoryGBPerServer = 8
	gbpsPerServer     = 0.1
)

// Formula projects the game server fleet needed for a player population.
type Formula struct{}

func (f *Formula) ComponentType() catalog.ComponentType {
	return catalog.GameServer
}

func (f *Formula) Inputs() []formula.InputSpec {
	return []formula.InputSpec{
		{Name: "concurrent_players", Default: 26000000},
		{Name: "players_per_server", Default: 100},
	}
}

func (f *Formula) Calculate(inputs map[string]float64) (map[string]float64, string) {
	players := inputs["concurrent_players"]
	perServer := inputs["players_per_server"]

	// Capacity planning never under-provisions: always round up.
	servers := math.Ceil(players / perServer)

	result := map[string]float64{
		"servers_needed":  servers,
		"cpu_cores_total": servers * coresPerServer,
		"memory_gb_total": servers * memoryGBPerServer,
		"network_gbps":    servers * gbpsPerServer,
	}
	explanation := "For " + formula.Comma(players) + " concurrent players with " +
		formula.Comma(perServer) + " players per server, you need " +
		formula.Comma(servers) + " game servers."
	return result, explanation
}
