package database

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

// Capacity constants per database building block.
const (
	opsPerShard     = 50000
	readsPerReplica = 10000
	writesPerMaster = 5000
	storageTBPerOp  = 0.001
)

// Formula sizes the sharded database tier from read and write load.
type Formula struct{}

func (f *Formula) ComponentType() catalog.ComponentType {
	return catalog.Database
}

func (f *Formula) Inputs() []formula.InputSpec {
	return []formula.InputSpec{
		{Name: "reads_per_second", Default: 2000000},
		{Name: "writes_per_second", Default: 500000},
	}
}

func (f *Formula) Calculate(inputs map[string]float64) (map[string]float64, string) {
	reads := inputs["reads_per_second"]
	writes := inputs["writes_per_second"]
	total := reads + writes

	result := map[string]float64{
		"total_ops_per_second": total,
		"shards_needed":        math.Ceil(total / opsPerShard),
		"read_replicas_needed": math.Ceil(reads / readsPerReplica),
		"write_masters_needed": math.Ceil(writes / writesPerMaster),
		"storage_tb_needed":    total * storageTBPerOp,
	}
	explanation := "For " + formula.Comma(reads) + " reads/sec and " +
		formula.Comma(writes) + " writes/sec, you need " +
		formula.Comma(result["read_replicas_needed"]) + " read replicas and " +
		formula.Comma(result["shards_needed"]) + " shards."
	return result, explanation
}
