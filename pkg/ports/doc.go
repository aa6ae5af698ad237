/*
Package ports defines the driven ports of the simulator.

These interfaces decouple session hosting from concrete backends, so a
session can live in process memory for a single trainee or in Redis behind
several HTTP replicas.

# Key Interfaces

  - SnapshotStore: keeps the latest state of each hosted session.
  - DistributedLocker: serializes dispatches to one session across replicas.
  - Dispatcher: the operation surface that transports (HTTP, CLI replay) drive.
*/
package ports
