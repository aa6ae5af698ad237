package memory_test

import (
	"testing"

	"github.com/aretw0/dentsim/pkg/adapters/memory"
	"github.com/aretw0/dentsim/pkg/ports"
)

func TestStore_Contract(t *testing.T) {
	ports.RunSnapshotStoreContract(t, memory.NewStore())
}
